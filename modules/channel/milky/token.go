package milky

import (
	"fmt"
	"strconv"
	"strings"
)

// Request tokens pack the fields a later approve or reject call needs into
// the single opaque message-id string the universal model gives us for a
// pending request. Each kind has its own struct; the composite string form
// exists only at the host boundary.

const (
	requestKindJoin        = "join_request"
	requestKindInvitedJoin = "invited_join_request"
)

// FriendRequestToken identifies a pending friend request.
type FriendRequestToken struct {
	InitiatorUID string
	IsFiltered   bool
}

func (t FriendRequestToken) String() string {
	return t.InitiatorUID + "|" + boolFlag(t.IsFiltered)
}

// ParseFriendRequestToken parses the "<initiator-uid>|<filtered>" form.
func ParseFriendRequestToken(s string) (FriendRequestToken, error) {
	uid, flag, ok := strings.Cut(s, "|")
	if !ok || uid == "" {
		return FriendRequestToken{}, fmt.Errorf("milky: friend request token %q: %w", s, ErrMalformedToken)
	}
	filtered, err := parseFlag(flag)
	if err != nil {
		return FriendRequestToken{}, fmt.Errorf("milky: friend request token %q: %w", s, ErrMalformedToken)
	}
	return FriendRequestToken{InitiatorUID: uid, IsFiltered: filtered}, nil
}

// GroupRequestToken identifies a pending group join or invited-join request.
type GroupRequestToken struct {
	NotificationSeq int64
	Kind            string // requestKindJoin or requestKindInvitedJoin
	GroupID         int64
	IsFiltered      bool
}

func (t GroupRequestToken) String() string {
	return fmt.Sprintf("%d|%s|%d|%s", t.NotificationSeq, t.Kind, t.GroupID, boolFlag(t.IsFiltered))
}

// ParseGroupRequestToken parses the "<seq>|<kind>|<group-id>|<filtered>" form.
func ParseGroupRequestToken(s string) (GroupRequestToken, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 {
		return GroupRequestToken{}, fmt.Errorf("milky: group request token %q: %w", s, ErrMalformedToken)
	}
	seq, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return GroupRequestToken{}, fmt.Errorf("milky: group request token %q: %w", s, ErrMalformedToken)
	}
	kind := parts[1]
	if kind != requestKindJoin && kind != requestKindInvitedJoin {
		return GroupRequestToken{}, fmt.Errorf("milky: group request token %q: %w", s, ErrMalformedToken)
	}
	groupID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return GroupRequestToken{}, fmt.Errorf("milky: group request token %q: %w", s, ErrMalformedToken)
	}
	filtered, err := parseFlag(parts[3])
	if err != nil {
		return GroupRequestToken{}, fmt.Errorf("milky: group request token %q: %w", s, ErrMalformedToken)
	}
	return GroupRequestToken{NotificationSeq: seq, Kind: kind, GroupID: groupID, IsFiltered: filtered}, nil
}

// GroupInvitationToken identifies an invitation for the bot itself to join a
// group. The invitation event does not carry a filtered flag, so it is
// always encoded as unfiltered.
type GroupInvitationToken struct {
	InvitationSeq int64
}

func (t GroupInvitationToken) String() string {
	return strconv.FormatInt(t.InvitationSeq, 10) + "|0"
}

// ParseGroupInvitationToken parses the "<invitation-seq>|0" form.
func ParseGroupInvitationToken(s string) (GroupInvitationToken, error) {
	seqStr, flag, ok := strings.Cut(s, "|")
	if !ok {
		return GroupInvitationToken{}, fmt.Errorf("milky: group invitation token %q: %w", s, ErrMalformedToken)
	}
	seq, err := strconv.ParseInt(seqStr, 10, 64)
	if err != nil {
		return GroupInvitationToken{}, fmt.Errorf("milky: group invitation token %q: %w", s, ErrMalformedToken)
	}
	if _, err := parseFlag(flag); err != nil {
		return GroupInvitationToken{}, fmt.Errorf("milky: group invitation token %q: %w", s, ErrMalformedToken)
	}
	return GroupInvitationToken{InvitationSeq: seq}, nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, ErrMalformedToken
}
