package milky

import "encoding/json"

// Segment type tags used by the wire protocol, both directions.
const (
	segText       = "text"
	segMention    = "mention"
	segMentionAll = "mention_all"
	segImage      = "image"
	segRecord     = "record"
	segVideo      = "video"
	segFile       = "file"
	segReply      = "reply"
)

// IncomingSegment is one atomic content unit of an incoming message. Data is
// decoded lazily by segment type.
type IncomingSegment struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Per-type incoming segment payloads.
type (
	textSegmentData struct {
		Text string `json:"text"`
	}

	mentionSegmentData struct {
		UserID int64 `json:"user_id"`
	}

	imageSegmentData struct {
		ResourceID string `json:"resource_id"`
		TempURL    string `json:"temp_url"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		SubType    string `json:"sub_type"`
	}

	recordSegmentData struct {
		ResourceID string `json:"resource_id"`
		TempURL    string `json:"temp_url"`
		Duration   int    `json:"duration"`
	}

	videoSegmentData struct {
		ResourceID string `json:"resource_id"`
		TempURL    string `json:"temp_url"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		Duration   int    `json:"duration"`
	}

	fileSegmentData struct {
		FileID   string `json:"file_id"`
		FileName string `json:"file_name"`
		FileSize int64  `json:"file_size"`
		FileHash string `json:"file_hash,omitempty"`
	}

	replySegmentData struct {
		MessageSeq int64 `json:"message_seq"`
	}
)

// OutgoingSegment is one atomic content unit of an outgoing message.
type OutgoingSegment struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func textSegment(text string) OutgoingSegment {
	return OutgoingSegment{Type: segText, Data: textSegmentData{Text: text}}
}

func mentionSegment(userID int64) OutgoingSegment {
	return OutgoingSegment{Type: segMention, Data: mentionSegmentData{UserID: userID}}
}

func mentionAllSegment() OutgoingSegment {
	return OutgoingSegment{Type: segMentionAll, Data: struct{}{}}
}

func imageSegment(uri string) OutgoingSegment {
	return OutgoingSegment{Type: segImage, Data: struct {
		URI     string `json:"uri"`
		SubType string `json:"sub_type"`
	}{uri, "normal"}}
}

func recordSegment(uri string) OutgoingSegment {
	return OutgoingSegment{Type: segRecord, Data: struct {
		URI string `json:"uri"`
	}{uri}}
}

func replySegment(messageSeq int64) OutgoingSegment {
	return OutgoingSegment{Type: segReply, Data: replySegmentData{MessageSeq: messageSeq}}
}

// FriendCategory is the friend-list grouping a friend belongs to.
type FriendCategory struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// Friend is the wire representation of a friend account.
type Friend struct {
	UserID   int64           `json:"user_id"`
	QID      string          `json:"qid,omitempty"`
	Nickname string          `json:"nickname"`
	Sex      string          `json:"sex"`
	Remark   string          `json:"remark"`
	Category *FriendCategory `json:"category,omitempty"`
}

// Group is the wire representation of a group.
type Group struct {
	GroupID        int64  `json:"group_id"`
	GroupName      string `json:"group_name"`
	MemberCount    int    `json:"member_count"`
	MaxMemberCount int    `json:"max_member_count"`
}

// GroupMember is the wire representation of a group membership.
type GroupMember struct {
	GroupID      int64  `json:"group_id"`
	UserID       int64  `json:"user_id"`
	Nickname     string `json:"nickname"`
	Card         string `json:"card"`
	Title        string `json:"title,omitempty"`
	Sex          string `json:"sex"`
	Level        int    `json:"level"`
	Role         string `json:"role"`
	JoinTime     int64  `json:"join_time"`
	LastSentTime int64  `json:"last_sent_time"`
}

// IncomingMessage is a message as delivered by the wire protocol, either
// inside a message_receive event or from the get_message family of actions.
type IncomingMessage struct {
	PeerID       int64             `json:"peer_id"`
	MessageSeq   int64             `json:"message_seq"`
	SenderID     int64             `json:"sender_id"`
	Time         int64             `json:"time"`
	Segments     []IncomingSegment `json:"segments"`
	MessageScene Scene             `json:"message_scene"`
	ClientSeq    int64             `json:"client_seq,omitempty"`
	Friend       *Friend           `json:"friend,omitempty"`
	Group        *Group            `json:"group,omitempty"`
	GroupMember  *GroupMember      `json:"group_member,omitempty"`
}

// Event type tags pushed over the event stream.
const (
	eventMessageReceive          = "message_receive"
	eventMessageRecall           = "message_recall"
	eventFriendRequest           = "friend_request"
	eventGroupJoinRequest        = "group_join_request"
	eventGroupInvitedJoinRequest = "group_invited_join_request"
	eventGroupInvitation         = "group_invitation"
	eventGroupMemberIncrease     = "group_member_increase"
	eventGroupMemberDecrease     = "group_member_decrease"
	eventBotOffline              = "bot_offline"
)

// Event is one frame of the push event stream. Data is decoded by EventType.
type Event struct {
	Time      int64           `json:"time"`
	SelfID    int64           `json:"self_id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// Per-type event payloads.
type (
	messageRecallData struct {
		MessageScene Scene `json:"message_scene"`
		PeerID       int64 `json:"peer_id"`
		MessageSeq   int64 `json:"message_seq"`
		SenderID     int64 `json:"sender_id"`
		OperatorID   int64 `json:"operator_id"`
	}

	friendRequestData struct {
		InitiatorID  int64  `json:"initiator_id"`
		InitiatorUID string `json:"initiator_uid"`
		Comment      string `json:"comment"`
		Via          string `json:"via,omitempty"`
	}

	groupJoinRequestData struct {
		GroupID         int64  `json:"group_id"`
		NotificationSeq int64  `json:"notification_seq"`
		InitiatorID     int64  `json:"initiator_id"`
		Comment         string `json:"comment"`
		IsFiltered      bool   `json:"is_filtered"`
	}

	groupInvitedJoinRequestData struct {
		GroupID         int64 `json:"group_id"`
		NotificationSeq int64 `json:"notification_seq"`
		InitiatorID     int64 `json:"initiator_id"`
		TargetUserID    int64 `json:"target_user_id"`
	}

	groupInvitationData struct {
		GroupID       int64 `json:"group_id"`
		InvitationSeq int64 `json:"invitation_seq"`
		InitiatorID   int64 `json:"initiator_id"`
	}

	groupMemberChangeData struct {
		GroupID    int64 `json:"group_id"`
		UserID     int64 `json:"user_id"`
		OperatorID int64 `json:"operator_id,omitempty"`
	}

	botOfflineData struct {
		Reason string `json:"reason"`
	}
)
