package channel

import (
	"strings"

	"github.com/flemzord/milkybridge/pkg/message"
)

// AllowList controls which users and guilds an adapter forwards sessions
// for. An empty AllowList permits everyone: the bridge relays the whole
// account by default and filtering is opt-in.
type AllowList struct {
	users  map[string]struct{}
	guilds map[string]struct{}
}

// NewAllowList creates an AllowList with O(1) lookups. Keys are trimmed at
// construction time.
func NewAllowList(users, guilds []string) *AllowList {
	a := &AllowList{
		users:  make(map[string]struct{}, len(users)),
		guilds: make(map[string]struct{}, len(guilds)),
	}
	for _, u := range users {
		a.users[normalize(u)] = struct{}{}
	}
	for _, g := range guilds {
		a.guilds[normalize(g)] = struct{}{}
	}
	return a
}

// IsAllowed reports whether the session's user or guild is permitted.
//
// Rules:
//   - If both lists are empty → allow everything.
//   - If the session's user ID matches a user entry → allow.
//   - If the session's guild ID matches a guild entry → allow.
//   - Otherwise → deny.
func (a *AllowList) IsAllowed(s message.Session) bool {
	if a == nil || (len(a.users) == 0 && len(a.guilds) == 0) {
		return true
	}

	if _, ok := a.users[normalize(s.UserID)]; ok {
		return true
	}
	if s.GuildID != "" {
		if _, ok := a.guilds[normalize(s.GuildID)]; ok {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.TrimSpace(s)
}
