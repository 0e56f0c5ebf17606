package message

import "time"

// ChannelType indicates the kind of conversation a channel represents.
type ChannelType string

const (
	// ChannelText is a persistent multi-participant text channel.
	ChannelText ChannelType = "text"
	// ChannelDirect is a one-to-one conversation.
	ChannelDirect ChannelType = "direct"
)

// Channel identifies the conversation a message belongs to.
type Channel struct {
	ID   string      `json:"id"`
	Type ChannelType `json:"type"`
	Name string      `json:"name,omitempty"`
}

// Guild is a persistent community the platform groups channels under.
type Guild struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// User identifies a platform account.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// GuildMember describes a user's membership inside a guild.
type GuildMember struct {
	User      *User     `json:"user,omitempty"`
	Nick      string    `json:"nick,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	JoinedAt  time.Time `json:"joined_at,omitzero"`
	Roles     []string  `json:"roles,omitempty"`
}
