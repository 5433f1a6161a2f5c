package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrEmptyPrompt        = errors.New("empty prompt")
	ErrInvalidTimeFormat  = errors.New("invalid time format")
	ErrUnknownModule      = errors.New("unknown module")
	ErrNoSession          = errors.New("no active session")
	ErrLimitReached       = errors.New("usage limit reached")
	ErrHandlerPanicked    = errors.New("command handler panicked")
)
