package wizard

import (
	"errors"
	"fmt"
)

var (
	ErrNextID     = errors.New("get next id from generator")
	ErrSubmission = errors.New("submission rejected by sink")
)

// ValidationError carries the missing/invalid fields of a failed submit.
// The draft is left intact so the user can correct and retry.
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{
		fields: make(map[string][]string),
	}
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError

	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

func (ve *ValidationError) fieldsCount() int {
	return len(ve.fields)
}

func (ve *ValidationError) addError(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%+v", ve.fields)
}

func (ve *ValidationError) Fields() map[string][]string {
	return ve.fields
}

// SubmissionError relays a sink failure without resetting the draft.
type SubmissionError struct {
	reason error
}

func IsSubmissionError(err error) *SubmissionError {
	if err == nil {
		return nil
	}

	var submissionError *SubmissionError

	if errors.As(err, &submissionError) {
		return submissionError
	}

	return nil
}

func (se *SubmissionError) Error() string {
	return fmt.Sprintf("%v: %v", ErrSubmission, se.reason)
}

func (se *SubmissionError) Unwrap() error {
	return se.reason
}

func (se *SubmissionError) Reason() string {
	return se.reason.Error()
}
