package channel

import "errors"

// Sentinel errors for adapter operations.
var (
	// ErrNoAdapter indicates the outbound message targets an adapter that is
	// not registered in the dispatcher.
	ErrNoAdapter = errors.New("channel: unknown adapter")

	// ErrDuplicateAdapter indicates an adapter with the same name is already
	// registered in the dispatcher.
	ErrDuplicateAdapter = errors.New("channel: duplicate adapter name")

	// ErrNoInbox indicates an adapter's inbox callback has not been set.
	ErrNoInbox = errors.New("channel: inbox not set")
)
