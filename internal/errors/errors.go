package errors

import "errors"

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// Error kinds surfaced by the quote, forecast and prediction services.
// Callers wrap them with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrConfiguration marks a missing or invalid setting discovered at first use.
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstream marks a failed call to an external collaborator.
	ErrUpstream = errors.New("upstream error")
	// ErrParse marks an upstream payload that could not be decoded.
	ErrParse = errors.New("parse error")
	// ErrNotFound is only used at the HTTP edge; services report absence with nil results.
	ErrNotFound = errors.New("not found")
)

// NewValidation is a shorthand for &ErrValidation{...}.
func NewValidation(field, message string) error {
	return &ErrValidation{Field: field, Message: message}
}

// IsValidation reports whether err wraps an *ErrValidation.
func IsValidation(err error) bool {
	var v *ErrValidation
	return errors.As(err, &v)
}
