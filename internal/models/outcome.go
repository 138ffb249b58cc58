package models

import (
	"errors"
	"net/http"
)

// Sentinel errors for every way a registration can be rejected.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("weak password")
	ErrDuplicateAccount = errors.New("email or username already exists")
	ErrPersistence      = errors.New("persistence error")
)

// Outcome is the single user-visible result of handling a registration request.
type Outcome int

const (
	// OutcomeNone means no submission was processed (the form awaits input).
	OutcomeNone Outcome = iota
	OutcomeMissingField
	OutcomeInvalidUsername
	OutcomeInvalidEmail
	OutcomeWeakPassword
	OutcomeDuplicateAccount
	OutcomePersistenceError
	OutcomeSuccess
)

var outcomeKinds = map[Outcome]string{
	OutcomeNone:             "none",
	OutcomeMissingField:     "missing-field",
	OutcomeInvalidUsername:  "invalid-username",
	OutcomeInvalidEmail:     "invalid-email",
	OutcomeWeakPassword:     "weak-password",
	OutcomeDuplicateAccount: "duplicate-account",
	OutcomePersistenceError: "persistence-error",
	OutcomeSuccess:          "success",
}

var outcomeMessages = map[Outcome]string{
	OutcomeMissingField:     "All fields are required.",
	OutcomeInvalidUsername:  "Username must be 3-20 characters and contain only letters, numbers, and underscores.",
	OutcomeInvalidEmail:     "Please enter a valid email address.",
	OutcomeWeakPassword:     "Password must be at least 8 characters long and contain at least one uppercase letter and one number.",
	OutcomeDuplicateAccount: "Email or username already exists.",
	OutcomePersistenceError: "Registration failed. Please try again.",
	OutcomeSuccess:          "Registration successful!",
}

// String returns the stable marker of the outcome, e.g. "duplicate-account".
func (o Outcome) String() string {
	if kind, ok := outcomeKinds[o]; ok {
		return kind
	}
	return "unknown"
}

// Message returns the text shown to the user. OutcomeNone has no message.
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// Level returns the banner style for the outcome.
func (o Outcome) Level() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "danger"
}

// StatusCode returns the HTTP status that accompanies the outcome.
func (o Outcome) StatusCode() int {
	switch o {
	case OutcomeNone:
		return http.StatusOK
	case OutcomeSuccess:
		return http.StatusCreated
	case OutcomeDuplicateAccount:
		return http.StatusConflict
	case OutcomeMissingField, OutcomeInvalidUsername, OutcomeInvalidEmail, OutcomeWeakPassword:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// OutcomeOf maps the error returned by a registration attempt to its outcome.
// A nil error is a success; unrecognized errors are treated as persistence failures.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrMissingField):
		return OutcomeMissingField
	case errors.Is(err, ErrInvalidUsername):
		return OutcomeInvalidUsername
	case errors.Is(err, ErrInvalidEmail):
		return OutcomeInvalidEmail
	case errors.Is(err, ErrWeakPassword):
		return OutcomeWeakPassword
	case errors.Is(err, ErrDuplicateAccount):
		return OutcomeDuplicateAccount
	default:
		return OutcomePersistenceError
	}
}
