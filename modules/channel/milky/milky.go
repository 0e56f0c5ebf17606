package milky

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/flemzord/milkybridge/internal/channel"
	"github.com/flemzord/milkybridge/internal/core"
	"github.com/flemzord/milkybridge/internal/security"
	"github.com/flemzord/milkybridge/pkg/message"
	"gopkg.in/yaml.v3"
)

func init() {
	core.RegisterModule(&Milky{})
}

// Compile-time interface guards.
var (
	_ channel.Channel   = (*Milky)(nil)
	_ core.Configurable = (*Milky)(nil)
	_ core.Provisioner  = (*Milky)(nil)
	_ core.Validator    = (*Milky)(nil)
	_ core.Starter      = (*Milky)(nil)
	_ core.Stopper      = (*Milky)(nil)
)

// Milky bridges a Milky protocol endpoint to the universal messaging model.
type Milky struct {
	config    Config
	client    *Client
	logger    *slog.Logger
	allowList *channel.AllowList
	inbox     func(message.Session) error
	decoder   *decoder
	socket    *socket

	mu   sync.Mutex
	self LoginInfo
}

// ModuleInfo implements core.Module.
func (m *Milky) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "channel.milky",
		New: func() core.Module { return &Milky{} },
	}
}

// Configure implements core.Configurable.
func (m *Milky) Configure(node *yaml.Node) error {
	if err := node.Decode(&m.config); err != nil {
		return fmt.Errorf("milky: decode config: %w", err)
	}
	m.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (m *Milky) Provision(ctx *core.AppContext) error {
	m.logger = ctx.Logger
	m.config.defaults()
	m.client = NewClient(m.config.Endpoint, m.config.Token)
	m.allowList = channel.NewAllowList(m.config.AllowUsers, m.config.AllowGuilds)
	m.decoder = &decoder{client: m.client, logger: m.logger}

	if m.config.Token != "" {
		if svc, ok := ctx.Service("security.credentials"); ok {
			if store, ok := svc.(*security.CredentialStore); ok {
				store.Set("milky.token", m.config.Token)
			}
		}
	}
	return nil
}

// Validate implements core.Validator.
func (m *Milky) Validate() error {
	return m.config.validate()
}

// Start implements core.Starter. It launches the event stream; the bot only
// reports online once the stream's login identity fetch succeeds.
func (m *Milky) Start() error {
	if m.inbox == nil {
		return fmt.Errorf("milky: %w", channel.ErrNoInbox)
	}

	eventURL, err := eventStreamURL(m.config.Endpoint, m.config.Token)
	if err != nil {
		return fmt.Errorf("milky: derive event stream url: %w", err)
	}

	dp := &dispatcher{
		adapter: string(m.ModuleInfo().ID),
		decoder: m.decoder,
		logger:  m.logger,
		emit:    m.deliver,
	}
	m.socket = newSocket(m.client, eventURL, dp, m.logger, m.setSelf)
	m.socket.errorLimit = m.config.ReconnectErrorLimit
	m.socket.pause = m.config.ReconnectPause
	dp.offline = func(string) { m.socket.setState(stateDisconnected) }

	m.socket.Start()
	m.logger.Info("milky channel started", "endpoint", m.config.Endpoint)
	return nil
}

// Stop implements core.Stopper.
func (m *Milky) Stop(ctx context.Context) error {
	m.logger.Info("milky channel stopping")
	if m.socket != nil {
		m.socket.Stop()
	}
	return nil
}

// SetInbox implements channel.Channel.
func (m *Milky) SetInbox(fn func(s message.Session) error) {
	m.inbox = fn
}

// State returns the event stream connection state.
func (m *Milky) State() string {
	if m.socket == nil {
		return string(stateDisconnected)
	}
	return string(m.socket.State())
}

func (m *Milky) setSelf(info LoginInfo) {
	m.mu.Lock()
	m.self = info
	m.mu.Unlock()
}

func (m *Milky) selfInfo() LoginInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.self
}

// deliver pushes one session to the host, applying the allow list to
// classified sessions. Raw passthrough sessions bypass filtering: they are
// diagnostic and carry no routable user context.
func (m *Milky) deliver(s message.Session) error {
	if s.Type != message.SessionInternal && !m.allowList.IsAllowed(s) {
		m.logger.Debug("session denied by allow list",
			"type", string(s.Type),
			"user", s.UserID,
			"guild", s.GuildID,
		)
		return nil
	}
	return m.inbox(s)
}

// Send implements channel.Channel. Each call owns an independent encoder;
// concurrent sends never share a segment buffer. Sends are rejected while
// the event stream is not online.
func (m *Milky) Send(ctx context.Context, out message.Outbound) ([]message.Message, error) {
	if m.socket == nil || m.socket.State() != stateOnline {
		return nil, ErrNotConnected
	}
	enc, err := newMessageEncoder(m.client, out.ChannelID, m.selfInfo())
	if err != nil {
		return nil, err
	}
	results, err := enc.encode(ctx, out.Elements)
	if err != nil {
		return nil, err
	}

	for i := range results {
		echo := &results[i]
		s := message.Session{
			Type:      message.SessionSend,
			Adapter:   out.Adapter,
			SelfID:    echo.User.ID,
			Timestamp: echo.Timestamp,
			UserID:    echo.User.ID,
			ChannelID: out.ChannelID,
			MessageID: echo.ID,
			Content:   echo.TextContent(),
			Message:   echo,
		}
		if echo.Guild != nil {
			s.GuildID = echo.Guild.ID
		}
		if err := m.inbox(s); err != nil {
			m.logger.Error("send echo delivery failed", "message_id", echo.ID, "error", err)
		}
	}
	return results, nil
}

// GetLogin returns the bot's own identity.
func (m *Milky) GetLogin(ctx context.Context) (message.User, error) {
	info, err := m.client.GetLoginInfo(ctx)
	if err != nil {
		return message.User{}, err
	}
	return message.User{
		ID:        strconv.FormatInt(info.UIN, 10),
		Name:      info.Nickname,
		AvatarURL: userAvatarURL(info.UIN),
	}, nil
}

// GetMessage fetches and decodes one message addressed by channel and id.
func (m *Milky) GetMessage(ctx context.Context, channelID, messageID string) (message.Message, error) {
	scene, peerID, err := ParseChannelID(channelID)
	if err != nil {
		return message.Message{}, err
	}
	messageSeq, err := strconv.ParseInt(messageID, 10, 64)
	if err != nil {
		return message.Message{}, fmt.Errorf("milky: message id %q: %w", messageID, err)
	}
	out, err := m.client.GetMessage(ctx, scene, peerID, messageSeq)
	if err != nil {
		return message.Message{}, err
	}
	return m.decoder.decodeMessage(ctx, &out.Message)
}

// History listing directions. The wire protocol can only page backwards.
const (
	DirectionBefore = "before"
	DirectionAfter  = "after"
)

// GetMessageList returns up to limit messages older than the cursor, plus
// the cursor for the next older page. An empty cursor starts from the
// newest message. Forward paging is not supported and is rejected before
// any network call.
func (m *Milky) GetMessageList(ctx context.Context, channelID, cursor, direction string, limit int) ([]message.Message, string, error) {
	if direction != "" && direction != DirectionBefore {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedDirection, direction)
	}
	scene, peerID, err := ParseChannelID(channelID)
	if err != nil {
		return nil, "", err
	}
	var start int64
	if cursor != "" {
		start, err = strconv.ParseInt(cursor, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("milky: history cursor %q: %w", cursor, err)
		}
	}

	out, err := m.client.GetHistoryMessages(ctx, scene, peerID, start, limit)
	if err != nil {
		return nil, "", err
	}
	messages := make([]message.Message, 0, len(out.Messages))
	for i := range out.Messages {
		msg, err := m.decoder.decodeMessage(ctx, &out.Messages[i])
		if err != nil {
			return nil, "", err
		}
		messages = append(messages, msg)
	}
	var next string
	if out.NextMessageSeq != 0 {
		next = strconv.FormatInt(out.NextMessageSeq, 10)
	}
	return messages, next, nil
}

// DeleteMessage recalls a message, routing by the channel's scene.
func (m *Milky) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	scene, peerID, err := ParseChannelID(channelID)
	if err != nil {
		return err
	}
	messageSeq, err := strconv.ParseInt(messageID, 10, 64)
	if err != nil {
		return fmt.Errorf("milky: message id %q: %w", messageID, err)
	}
	if scene == SceneGroup {
		return m.client.RecallGroupMessage(ctx, peerID, messageSeq)
	}
	return m.client.RecallPrivateMessage(ctx, peerID, messageSeq)
}

// GetGuild returns one guild.
func (m *Milky) GetGuild(ctx context.Context, guildID string) (message.Guild, error) {
	groupID, err := parseNumericID(guildID)
	if err != nil {
		return message.Guild{}, err
	}
	out, err := m.client.GetGroupInfo(ctx, groupID, false)
	if err != nil {
		return message.Guild{}, err
	}
	return convertGuild(out.Group), nil
}

// GetGuildList returns all guilds the bot belongs to.
func (m *Milky) GetGuildList(ctx context.Context) ([]message.Guild, error) {
	out, err := m.client.GetGroupList(ctx, false)
	if err != nil {
		return nil, err
	}
	guilds := make([]message.Guild, 0, len(out.Groups))
	for _, g := range out.Groups {
		guilds = append(guilds, convertGuild(g))
	}
	return guilds, nil
}

// GetGuildMember returns one guild member.
func (m *Milky) GetGuildMember(ctx context.Context, guildID, userID string) (message.GuildMember, error) {
	groupID, err := parseNumericID(guildID)
	if err != nil {
		return message.GuildMember{}, err
	}
	memberID, err := parseNumericID(userID)
	if err != nil {
		return message.GuildMember{}, err
	}
	out, err := m.client.GetGroupMemberInfo(ctx, groupID, memberID, false)
	if err != nil {
		return message.GuildMember{}, err
	}
	return convertGuildMember(out.Member), nil
}

// GetGuildMemberList returns all members of a guild.
func (m *Milky) GetGuildMemberList(ctx context.Context, guildID string) ([]message.GuildMember, error) {
	groupID, err := parseNumericID(guildID)
	if err != nil {
		return nil, err
	}
	out, err := m.client.GetGroupMemberList(ctx, groupID, false)
	if err != nil {
		return nil, err
	}
	members := make([]message.GuildMember, 0, len(out.Members))
	for _, wire := range out.Members {
		members = append(members, convertGuildMember(wire))
	}
	return members, nil
}

// GetFriendList returns the bot's friends as universal users.
func (m *Milky) GetFriendList(ctx context.Context) ([]message.User, error) {
	out, err := m.client.GetFriendList(ctx, false)
	if err != nil {
		return nil, err
	}
	users := make([]message.User, 0, len(out.Friends))
	for _, f := range out.Friends {
		users = append(users, message.User{
			ID:        strconv.FormatInt(f.UserID, 10),
			Name:      f.Nickname,
			AvatarURL: userAvatarURL(f.UserID),
		})
	}
	return users, nil
}

// HandleFriendRequest approves or rejects a pending friend request
// identified by its token.
func (m *Milky) HandleFriendRequest(ctx context.Context, token string, approve bool, comment string) error {
	t, err := ParseFriendRequestToken(token)
	if err != nil {
		return err
	}
	if approve {
		return m.client.AcceptFriendRequest(ctx, t.InitiatorUID, t.IsFiltered)
	}
	return m.client.RejectFriendRequest(ctx, t.InitiatorUID, t.IsFiltered, comment)
}

// HandleGuildMemberRequest approves or rejects a pending join or
// invited-join request identified by its token.
func (m *Milky) HandleGuildMemberRequest(ctx context.Context, token string, approve bool, comment string) error {
	t, err := ParseGroupRequestToken(token)
	if err != nil {
		return err
	}
	if approve {
		return m.client.AcceptGroupRequest(ctx, t.NotificationSeq, t.IsFiltered)
	}
	return m.client.RejectGroupRequest(ctx, t.NotificationSeq, t.IsFiltered, comment)
}

// HandleGuildRequest accepts or rejects an invitation for the bot itself to
// join a guild. The invitation token does not carry the group id, so the
// guild id is passed alongside it.
func (m *Milky) HandleGuildRequest(ctx context.Context, guildID, token string, approve bool) error {
	groupID, err := parseNumericID(guildID)
	if err != nil {
		return err
	}
	t, err := ParseGroupInvitationToken(token)
	if err != nil {
		return err
	}
	if approve {
		return m.client.AcceptGroupInvitation(ctx, groupID, t.InvitationSeq)
	}
	return m.client.RejectGroupInvitation(ctx, groupID, t.InvitationSeq)
}

func parseNumericID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("milky: numeric id %q: %w", id, err)
	}
	return n, nil
}

func convertGuild(g Group) message.Guild {
	return message.Guild{
		ID:        strconv.FormatInt(g.GroupID, 10),
		Name:      g.GroupName,
		AvatarURL: groupAvatarURL(g.GroupID),
	}
}

func convertGuildMember(wire GroupMember) message.GuildMember {
	nick := wire.Card
	if nick == "" {
		nick = wire.Nickname
	}
	return message.GuildMember{
		User: &message.User{
			ID:        strconv.FormatInt(wire.UserID, 10),
			Name:      wire.Nickname,
			AvatarURL: userAvatarURL(wire.UserID),
		},
		Nick:      nick,
		AvatarURL: userAvatarURL(wire.UserID),
		JoinedAt:  time.Unix(wire.JoinTime, 0),
		Roles:     []string{wire.Role},
	}
}
