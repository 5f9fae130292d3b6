package services

import "errors"

// Error kinds for rule failures. Handlers map these to HTTP statuses; the
// message on the wrapping RuleError is shown to the user as-is.
var (
	ErrValidation   = errors.New("validation")
	ErrPrecondition = errors.New("precondition")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// RuleError carries a user-facing message plus one of the kinds above so
// callers can match with errors.Is. Anything that is not a RuleError is a
// store failure and must be propagated, never swallowed.
type RuleError struct {
	Kind    error
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func (e *RuleError) Unwrap() error { return e.Kind }

func validationErr(msg string) error {
	return &RuleError{Kind: ErrValidation, Message: msg}
}

func preconditionErr(msg string) error {
	return &RuleError{Kind: ErrPrecondition, Message: msg}
}

func notFoundErr(msg string) error {
	return &RuleError{Kind: ErrNotFound, Message: msg}
}

func conflictErr(msg string) error {
	return &RuleError{Kind: ErrConflict, Message: msg}
}
