package milky

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/flemzord/milkybridge/pkg/message"
)

// dispatcher turns wire events into host sessions. Every event yields a raw
// passthrough session first; understood events additionally yield a
// classified session. Ordering is preserved end to end.
type dispatcher struct {
	adapter string
	decoder *decoder
	logger  *slog.Logger
	emit    func(message.Session) error
	offline func(reason string)
}

func (dp *dispatcher) handleEvent(ctx context.Context, ev *Event) {
	dp.emitSession(dp.rawSession(ev))

	switch ev.EventType {
	case eventMessageReceive:
		dp.handleMessageReceive(ctx, ev)
	case eventMessageRecall:
		dp.handleMessageRecall(ev)
	case eventFriendRequest:
		dp.handleFriendRequest(ev)
	case eventGroupJoinRequest:
		dp.handleGroupJoinRequest(ev)
	case eventGroupInvitedJoinRequest:
		dp.handleGroupInvitedJoinRequest(ev)
	case eventGroupInvitation:
		dp.handleGroupInvitation(ev)
	case eventGroupMemberIncrease:
		dp.handleMemberChange(ev, message.SessionGuildMemberAdded)
	case eventGroupMemberDecrease:
		dp.handleMemberChange(ev, message.SessionGuildMemberRemoved)
	case eventBotOffline:
		dp.handleBotOffline(ev)
	default:
		dp.logger.Debug("no classification for event type", "type", ev.EventType)
	}
}

// rawSession is the unconditional passthrough: the event's own payload under
// a hyphenated discriminator, emitted whether or not the event is understood.
func (dp *dispatcher) rawSession(ev *Event) message.Session {
	s := dp.baseSession(ev, message.SessionInternal)
	s.InternalType = "milky/" + strings.ReplaceAll(ev.EventType, "_", "-")
	s.Data = ev.Data
	return s
}

func (dp *dispatcher) baseSession(ev *Event, typ message.SessionType) message.Session {
	return message.Session{
		Type:      typ,
		Adapter:   dp.adapter,
		SelfID:    strconv.FormatInt(ev.SelfID, 10),
		Timestamp: time.Unix(ev.Time, 0),
	}
}

func (dp *dispatcher) emitSession(s message.Session) {
	if err := dp.emit(s); err != nil {
		dp.logger.Error("session delivery failed", "type", string(s.Type), "error", err)
	}
}

func (dp *dispatcher) handleMessageReceive(ctx context.Context, ev *Event) {
	var in IncomingMessage
	if err := json.Unmarshal(ev.Data, &in); err != nil {
		dp.logger.Error("malformed message_receive payload", "error", err)
		return
	}
	msg, err := dp.decoder.decodeMessage(ctx, &in)
	if err != nil {
		dp.logger.Error("message decode failed",
			"scene", string(in.MessageScene),
			"peer_id", in.PeerID,
			"message_seq", in.MessageSeq,
			"error", err)
		return
	}

	s := dp.baseSession(ev, message.SessionMessage)
	s.MessageID = msg.ID
	s.Content = msg.Content
	s.Message = &msg
	if msg.User != nil {
		s.UserID = msg.User.ID
	}
	if msg.Channel != nil {
		s.ChannelID = msg.Channel.ID
	}
	if msg.Guild != nil {
		s.GuildID = msg.Guild.ID
	}
	dp.emitSession(s)
}

func (dp *dispatcher) handleMessageRecall(ev *Event) {
	var data messageRecallData
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		dp.logger.Error("malformed message_recall payload", "error", err)
		return
	}
	guildID, channelID := guildChannelID(data.MessageScene, data.PeerID)

	s := dp.baseSession(ev, message.SessionMessageDeleted)
	s.UserID = strconv.FormatInt(data.OperatorID, 10)
	s.ChannelID = channelID
	s.GuildID = guildID
	s.MessageID = strconv.FormatInt(data.MessageSeq, 10)
	dp.emitSession(s)
}

func (dp *dispatcher) handleFriendRequest(ev *Event) {
	var data friendRequestData
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		dp.logger.Error("malformed friend_request payload", "error", err)
		return
	}
	s := dp.baseSession(ev, message.SessionFriendRequest)
	s.UserID = strconv.FormatInt(data.InitiatorID, 10)
	s.ChannelID = EncodeChannelID(SceneFriend, data.InitiatorID)
	s.MessageID = FriendRequestToken{InitiatorUID: data.InitiatorUID}.String()
	s.Content = data.Comment
	dp.emitSession(s)
}

func (dp *dispatcher) handleGroupJoinRequest(ev *Event) {
	var data groupJoinRequestData
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		dp.logger.Error("malformed group_join_request payload", "error", err)
		return
	}
	token := GroupRequestToken{
		NotificationSeq: data.NotificationSeq,
		Kind:            requestKindJoin,
		GroupID:         data.GroupID,
		IsFiltered:      data.IsFiltered,
	}
	groupID := strconv.FormatInt(data.GroupID, 10)

	s := dp.baseSession(ev, message.SessionGuildMemberRequest)
	s.UserID = strconv.FormatInt(data.InitiatorID, 10)
	s.ChannelID = groupID
	s.GuildID = groupID
	s.MessageID = token.String()
	s.Content = data.Comment
	dp.emitSession(s)
}

func (dp *dispatcher) handleGroupInvitedJoinRequest(ev *Event) {
	var data groupInvitedJoinRequestData
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		dp.logger.Error("malformed group_invited_join_request payload", "error", err)
		return
	}
	// Invited joins are never filtered.
	token := GroupRequestToken{
		NotificationSeq: data.NotificationSeq,
		Kind:            requestKindInvitedJoin,
		GroupID:         data.GroupID,
	}
	groupID := strconv.FormatInt(data.GroupID, 10)

	s := dp.baseSession(ev, message.SessionGuildMemberRequest)
	s.UserID = strconv.FormatInt(data.TargetUserID, 10)
	s.ChannelID = groupID
	s.GuildID = groupID
	s.MessageID = token.String()
	dp.emitSession(s)
}

func (dp *dispatcher) handleGroupInvitation(ev *Event) {
	var data groupInvitationData
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		dp.logger.Error("malformed group_invitation payload", "error", err)
		return
	}
	groupID := strconv.FormatInt(data.GroupID, 10)

	s := dp.baseSession(ev, message.SessionGuildRequest)
	s.UserID = strconv.FormatInt(data.InitiatorID, 10)
	s.ChannelID = groupID
	s.GuildID = groupID
	s.MessageID = GroupInvitationToken{InvitationSeq: data.InvitationSeq}.String()
	dp.emitSession(s)
}

func (dp *dispatcher) handleMemberChange(ev *Event, typ message.SessionType) {
	var data groupMemberChangeData
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		dp.logger.Error("malformed member change payload", "type", ev.EventType, "error", err)
		return
	}
	groupID := strconv.FormatInt(data.GroupID, 10)

	s := dp.baseSession(ev, typ)
	s.UserID = strconv.FormatInt(data.UserID, 10)
	s.ChannelID = groupID
	s.GuildID = groupID
	dp.emitSession(s)
}

// handleBotOffline only updates connection state; the raw passthrough has
// already carried the payload to the host.
func (dp *dispatcher) handleBotOffline(ev *Event) {
	var data botOfflineData
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		dp.logger.Error("malformed bot_offline payload", "error", err)
		return
	}
	dp.logger.Warn("bot reported offline", "reason", data.Reason)
	if dp.offline != nil {
		dp.offline(data.Reason)
	}
}
