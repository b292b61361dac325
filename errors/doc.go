// Package errors provides the structured error type shared by the deferred
// module. Every recoverable condition (double initialization, lock poisoning,
// lock contention, invalid configuration) is an *AppError carrying a
// machine-readable code, so callers can branch with errors.Is against the
// exported sentinels or with HasCode.
package errors
