package main

import (
	"fmt"
	"os"

	"StorefrontPayments/config"
	"StorefrontPayments/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	app.Run(cfg)
}
