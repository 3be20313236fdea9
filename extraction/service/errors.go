package service

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var ErrNoExecutionContexts = errors.New("no execution contexts configured")

// AttemptsExhaustedError is returned when every execution context failed the query.
type AttemptsExhaustedError struct {
	Label    string
	Attempts *multierror.Error
}

func (e *AttemptsExhaustedError) Error() string {
	return fmt.Sprintf("query %s failed in every execution context: %v", e.Label, e.Attempts)
}

func (e *AttemptsExhaustedError) Unwrap() error {
	return e.Attempts
}
