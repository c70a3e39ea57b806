package domain

import "errors"

// Messages returned to API clients verbatim
const (
	// MsgEmptyTitle is reported when a todo title is empty or whitespace-only
	MsgEmptyTitle = "O título da tarefa não pode ser vazio."
	// MsgDivisionByZero is reported by the math endpoints
	MsgDivisionByZero = "Não é possível dividir por zero."
)

var (
	// ErrDivisionByZero indicates a division with a zero divisor
	ErrDivisionByZero = errors.New(MsgDivisionByZero)

	// ErrSensorUnavailable indicates the sensor device could not be reached or answered badly
	ErrSensorUnavailable = errors.New("sensor device unavailable")

	// ErrUnknownStoreDriver indicates the configured store driver is not supported
	ErrUnknownStoreDriver = errors.New("unknown store driver")
)

// ValidationError struct - Raised when input breaks a domain invariant.
// Check for it with errors.As.
type ValidationError struct {
	Field   string
	Message string
}

// Error func
func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
