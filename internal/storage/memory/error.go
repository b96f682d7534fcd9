package memory

import "errors"

var (
	ErrSessionKeyNotFoundInCtx = errors.New("no session key found in ctx")
	ErrDuplicateBooking        = errors.New("booking already recorded")
)
