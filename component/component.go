package component

import "errors"

var (
	ErrInvalidEnergyMax = errors.New("component: energy max must be positive")
	ErrInvalidConfig    = errors.New("component: invalid player config")
	ErrNilContext       = errors.New("component: state context is nil")
	ErrNotInitialized   = errors.New("component: state machine not initialized")
	ErrAlreadyBound     = errors.New("component: state machine bound to another context")
	ErrUnknownState     = errors.New("component: unknown player state")
	ErrDuplicateState   = errors.New("component: duplicate player state")
)
