// Package channel defines the bridge between protocol adapters and the
// host. It provides the Channel interface, outbound dispatch, and
// allow-list filtering.
package channel

import (
	"context"

	"github.com/flemzord/milkybridge/internal/core"
	"github.com/flemzord/milkybridge/pkg/message"
)

// Channel is the contract every protocol adapter implements.
//
// An adapter consumes its platform's event stream, decodes events into
// universal sessions, and pushes them to the host via the inbox callback.
// It receives outbound messages from the host via Send().
type Channel interface {
	core.Module

	// Send encodes and delivers an outbound message, returning the messages
	// created on the platform (one per flush).
	Send(ctx context.Context, msg message.Outbound) ([]message.Message, error)

	// SetInbox gives the adapter a function to push host-bound sessions to.
	// The host calls this during wiring, before Start().
	SetInbox(fn func(s message.Session) error)
}

// StatusReporter is implemented by adapters that expose a connection state
// for the status surface.
type StatusReporter interface {
	State() string
}
