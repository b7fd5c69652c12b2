package contract

import "errors"

var (
	ErrAgentFailure     = errors.New("agent call failed")
	ErrAgentUnavailable = errors.New("agent unavailable")
	ErrValidation       = errors.New("validation failed")
)
