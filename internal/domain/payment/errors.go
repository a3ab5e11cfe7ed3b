package payment

import "errors"

// errLostRace rolls back a settlement another callback already applied.
var errLostRace = errors.New("payment already transitioned")
