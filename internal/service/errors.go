package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPersistence        = errors.New("persistence failure")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrLLMUnavailable     = errors.New("llm client not initialized")
)

// InputError is a validation failure whose message can be shown to the caller.
// It matches ErrInvalidInput with errors.Is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(msg string) error {
	return &InputError{Message: msg}
}

// UserMessage returns the message of an InputError wrapped in err, or fallback.
func UserMessage(err error, fallback string) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Message
	}
	return fallback
}
