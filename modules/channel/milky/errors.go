package milky

import "errors"

// Sentinel errors for adapter operations.
var (
	// ErrMalformedChannelID indicates a channel identifier that matches none
	// of the three encoding forms, or one whose peer segment is not numeric.
	ErrMalformedChannelID = errors.New("milky: malformed channel id")

	// ErrUnsupportedDirection indicates a history listing direction the wire
	// protocol cannot serve. Only messages older than the cursor can be
	// listed.
	ErrUnsupportedDirection = errors.New("milky: unsupported history direction")

	// ErrMalformedToken indicates a request token that does not round-trip
	// into the fields its accept/reject call requires.
	ErrMalformedToken = errors.New("milky: malformed request token")

	// ErrNotConnected indicates the event stream is not online.
	ErrNotConnected = errors.New("milky: event stream not connected")
)
