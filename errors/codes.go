package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Initialization lifecycle errors
const (
	// ErrCodeUninitialized indicates a global was accessed before its value was installed.
	ErrCodeUninitialized ErrorCode = "UNINITIALIZED"
	// ErrCodeAlreadyInitialized indicates a second attempt to install a global's value.
	ErrCodeAlreadyInitialized ErrorCode = "ALREADY_INITIALIZED"
)

// Lock errors
const (
	// ErrCodePoisoned indicates a previous lock holder panicked while holding the lock.
	ErrCodePoisoned ErrorCode = "POISONED"
	// ErrCodeWouldBlock indicates the lock is currently held by someone else.
	ErrCodeWouldBlock ErrorCode = "WOULD_BLOCK"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates configuration could not be loaded or failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeWouldBlock:         true,
	ErrCodePoisoned:           false,
	ErrCodeAlreadyInitialized: false,
	ErrCodeUninitialized:      false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
