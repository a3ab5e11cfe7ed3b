package health

import (
	"context"
	"time"
)

// DefaultTimeout is the default timeout for health checks.
const DefaultTimeout = 5 * time.Second

// Status represents the health status of a component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
	// StatusDegraded means an optional dependency is down.
	StatusDegraded Status = "degraded"
)

// Result is the outcome of a single health check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker is the interface for health check implementations.
type Checker interface {
	// Name returns the name of the component being checked.
	Name() string
	// Check performs the health check and returns the result.
	Check(ctx context.Context) Result
}

type funcChecker struct {
	name string
	fn   func(ctx context.Context) Result
}

// NewCheck builds a Checker from a function.
func NewCheck(name string, fn func(ctx context.Context) Result) Checker {
	return funcChecker{name: name, fn: fn}
}

func (c funcChecker) Name() string                     { return c.name }
func (c funcChecker) Check(ctx context.Context) Result { return c.fn(ctx) }

type optionalChecker struct {
	Checker
}

// Optional marks a checker whose failure degrades the service without taking it out of rotation.
func Optional(c Checker) Checker {
	return optionalChecker{Checker: c}
}

func isOptional(c Checker) bool {
	_, ok := c.(optionalChecker)
	return ok
}
