package services

import "errors"

// Typed errors let every handler map failures to the response taxonomy
// uniformly instead of inspecting message strings per endpoint.
var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so the response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
)

// ValidationError marks a request rejected before any store write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a request-validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
