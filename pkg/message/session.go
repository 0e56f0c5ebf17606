package message

import (
	"encoding/json"
	"time"
)

// SessionType classifies a host-bound event produced by an adapter.
type SessionType string

// Session types emitted by adapters.
const (
	// SessionMessage is a fully decoded inbound message.
	SessionMessage SessionType = "message"
	// SessionSend is a locally synthesized echo of an outbound send.
	SessionSend SessionType = "send"
	// SessionMessageDeleted reports a recalled message.
	SessionMessageDeleted SessionType = "message-deleted"
	// SessionFriendRequest reports a pending friend request.
	SessionFriendRequest SessionType = "friend-request"
	// SessionGuildRequest reports an invitation for the bot to join a guild.
	SessionGuildRequest SessionType = "guild-request"
	// SessionGuildMemberRequest reports a pending membership request.
	SessionGuildMemberRequest SessionType = "guild-member-request"
	// SessionGuildMemberAdded reports a member joining a guild.
	SessionGuildMemberAdded SessionType = "guild-member-added"
	// SessionGuildMemberRemoved reports a member leaving a guild.
	SessionGuildMemberRemoved SessionType = "guild-member-removed"
	// SessionInternal is the untyped raw passthrough of a wire event. Every
	// inbound wire event produces exactly one internal session, regardless
	// of whether a classified session follows.
	SessionInternal SessionType = "internal"
)

// Session is an immutable host-bound event payload. Adapters construct one
// per decoded event and hand it to the host through their inbox callback;
// the host decides how to dispatch it.
type Session struct {
	Type SessionType `json:"type"`

	// Adapter names the adapter module that produced the session.
	Adapter string `json:"adapter"`

	// SelfID is the bot account the event was delivered to.
	SelfID string `json:"self_id,omitempty"`

	Timestamp time.Time `json:"timestamp,omitzero"`

	UserID    string `json:"user_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	GuildID   string `json:"guild_id,omitempty"`

	// MessageID is the message sequence number for message sessions, or an
	// opaque request token for request sessions. Request tokens round-trip
	// through the corresponding approve/reject operations.
	MessageID string `json:"message_id,omitempty"`

	// Content is the plain-text content, where the event carries one
	// (message content, request comment).
	Content string `json:"content,omitempty"`

	// Message is set for SessionMessage and SessionSend.
	Message *Message `json:"message,omitempty"`

	// InternalType is the raw passthrough discriminator for SessionInternal,
	// e.g. "milky/message-receive".
	InternalType string `json:"internal_type,omitempty"`

	// Data is the undecoded wire payload for SessionInternal.
	Data json.RawMessage `json:"data,omitempty"`
}

// IsDirect reports whether the session happened outside any guild.
func (s *Session) IsDirect() bool {
	return s.GuildID == ""
}
