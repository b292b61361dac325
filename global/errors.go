package global

import (
	"fmt"

	"github.com/kbukum/deferred/errors"
)

// Sentinels for errors.Is. They match any error with the same code.
var (
	ErrAlreadyInitialized = &errors.AppError{Code: errors.ErrCodeAlreadyInitialized}
	ErrPoisoned           = &errors.AppError{Code: errors.ErrCodePoisoned}
	ErrWouldBlock         = &errors.AppError{Code: errors.ErrCodeWouldBlock}
	ErrUninitialized      = &errors.AppError{Code: errors.ErrCodeUninitialized}
)

// UninitializedError is the panic value raised when a Var is accessed before
// Set. It is a fault, not a condition to handle.
type UninitializedError struct {
	Name string
	Type string
}

func (e *UninitializedError) Error() string {
	return fmt.Sprintf("global: %s (type %s)", e.Unwrap().Error(), e.Type)
}

// Unwrap exposes the underlying AppError so a recovered value can still be
// matched with errors.Is(err, ErrUninitialized).
func (e *UninitializedError) Unwrap() error {
	return errors.Uninitialized(e.Name)
}
