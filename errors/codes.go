package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors: raised at the call that violated a precondition.
const (
	// ErrCodeInvalidInput indicates an argument is invalid (nil function, negative count).
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates a configuration value is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Iteration errors: raised while a pipeline is being drained.
const (
	// ErrCodeGeneratorFailed indicates a seed generator returned an error.
	ErrCodeGeneratorFailed ErrorCode = "GENERATOR_FAILED"
	// ErrCodeCanceled indicates iteration stopped because the context was done.
	ErrCodeCanceled ErrorCode = "CANCELED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeGeneratorFailed: true,
	ErrCodeCanceled:        false,
	ErrCodeInternal:        false,
}

// IsRetryableCode returns true if running the same operation again may succeed.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
