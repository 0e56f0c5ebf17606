// Package message defines the platform-agnostic data contract between
// protocol adapters and the bridge. It models rich-content messages as
// ordered element trees plus the channel, guild, user, and member entities
// that anchor them.
package message

import "time"

// Message is the universal representation of one chat message.
//
// Content is the flattened textual rendering of Elements. Elements never
// contains a quote element: adapters hoist back-references into Quote during
// decoding.
type Message struct {
	ID        string    `json:"id"`
	Elements  []Element `json:"elements"`
	Content   string    `json:"content"`
	Quote     *Message  `json:"quote,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`

	Channel *Channel     `json:"channel,omitempty"`
	Guild   *Guild       `json:"guild,omitempty"`
	User    *User        `json:"user,omitempty"`
	Member  *GuildMember `json:"member,omitempty"`
}

// Outbound is a message to be sent through an adapter.
type Outbound struct {
	// Adapter names the adapter module that must deliver the message
	// (e.g. "channel.milky").
	Adapter string `json:"adapter"`

	// ChannelID is the adapter-specific channel identifier.
	ChannelID string `json:"channel_id"`

	// Elements is the ordered rich-content tree to deliver.
	Elements []Element `json:"elements"`
}

// NewTextOutbound creates an outbound message with a single text element.
func NewTextOutbound(adapter, channelID, text string) Outbound {
	return Outbound{
		Adapter:   adapter,
		ChannelID: channelID,
		Elements:  []Element{NewTextElement(text)},
	}
}

// TextContent returns the flattened textual rendering of the message.
func (m *Message) TextContent() string {
	return Flatten(m.Elements)
}
