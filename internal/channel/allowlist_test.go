package channel

import (
	"testing"

	"github.com/flemzord/milkybridge/pkg/message"
)

func directSession(userID string) message.Session {
	return message.Session{
		Type:      message.SessionMessage,
		UserID:    userID,
		ChannelID: "private:" + userID,
	}
}

func guildSession(userID, guildID string) message.Session {
	return message.Session{
		Type:      message.SessionMessage,
		UserID:    userID,
		ChannelID: guildID,
		GuildID:   guildID,
	}
}

func TestAllowList_NilAllowsAll(t *testing.T) {
	t.Parallel()
	var a *AllowList
	if !a.IsAllowed(directSession("42")) {
		t.Error("nil AllowList should allow everyone")
	}
}

func TestAllowList_EmptyAllowsAll(t *testing.T) {
	t.Parallel()
	a := NewAllowList(nil, nil)
	if !a.IsAllowed(directSession("42")) {
		t.Error("empty AllowList should allow everyone")
	}
	if !a.IsAllowed(guildSession("42", "100")) {
		t.Error("empty AllowList should allow guild sessions")
	}
}

func TestAllowList_Users(t *testing.T) {
	t.Parallel()
	a := NewAllowList([]string{"42", "43"}, nil)

	tests := []struct {
		name    string
		userID  string
		allowed bool
	}{
		{"allowed user", "42", true},
		{"allowed user 2", "43", true},
		{"unknown user", "99", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := a.IsAllowed(directSession(tc.userID))
			if got != tc.allowed {
				t.Errorf("IsAllowed(%q) = %v, want %v", tc.userID, got, tc.allowed)
			}
		})
	}
}

func TestAllowList_Guilds(t *testing.T) {
	t.Parallel()
	a := NewAllowList(nil, []string{"100", "200"})

	tests := []struct {
		name    string
		guildID string
		allowed bool
	}{
		{"allowed guild", "100", true},
		{"allowed guild 2", "200", true},
		{"unknown guild", "300", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := a.IsAllowed(guildSession("anyone", tc.guildID))
			if got != tc.allowed {
				t.Errorf("IsAllowed(guild %q) = %v, want %v", tc.guildID, got, tc.allowed)
			}
		})
	}
}

func TestAllowList_NormalizesKeys(t *testing.T) {
	t.Parallel()
	a := NewAllowList([]string{" 42 "}, []string{" 100 "})

	if !a.IsAllowed(directSession("42")) {
		t.Error("should allow trimmed match for user")
	}
	if !a.IsAllowed(guildSession("anyone", "100")) {
		t.Error("should allow trimmed match for guild")
	}
}

func TestAllowList_UserMatchInGuild(t *testing.T) {
	t.Parallel()
	// Users are checked first, so an allowed user passes even in a guild
	// that is not listed.
	a := NewAllowList([]string{"42"}, nil)
	if !a.IsAllowed(guildSession("42", "100")) {
		t.Error("allowed user should pass in any guild")
	}
	if a.IsAllowed(guildSession("99", "100")) {
		t.Error("unknown user in unlisted guild should be denied")
	}
}

func TestAllowList_BothUsersAndGuilds(t *testing.T) {
	t.Parallel()
	a := NewAllowList([]string{"42"}, []string{"100"})

	if !a.IsAllowed(directSession("42")) {
		t.Error("direct session from allowed user should pass")
	}
	if a.IsAllowed(directSession("99")) {
		t.Error("direct session from unknown user should be denied")
	}
	if !a.IsAllowed(guildSession("99", "100")) {
		t.Error("session in allowed guild should pass")
	}
	if a.IsAllowed(guildSession("99", "200")) {
		t.Error("session in unknown guild from unknown user should be denied")
	}
}
