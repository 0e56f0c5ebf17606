package milky

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/flemzord/milkybridge/pkg/message"
)

// Avatar URLs are deterministic templates over the numeric id; no lookup
// call is needed to build them.
func userAvatarURL(userID int64) string {
	return fmt.Sprintf("https://q.qlogo.cn/headimg_dl?dst_uin=%d&spec=640", userID)
}

func groupAvatarURL(groupID int64) string {
	return fmt.Sprintf("https://p.qlogo.cn/gh/%d/%d/640", groupID, groupID)
}

// decoder turns wire messages into universal messages. Decoding may issue
// nested action calls (reply resolution, file URL resolution).
type decoder struct {
	client *Client
	logger *slog.Logger
}

// decodeMessage walks segments in order and assembles the universal message.
// Element order always matches segment order.
func (d *decoder) decodeMessage(ctx context.Context, in *IncomingMessage) (message.Message, error) {
	msg := message.Message{
		ID:        strconv.FormatInt(in.MessageSeq, 10),
		Timestamp: time.Unix(in.Time, 0),
	}

	for _, seg := range in.Segments {
		switch seg.Type {
		case segText:
			var data textSegmentData
			if err := json.Unmarshal(seg.Data, &data); err != nil {
				return message.Message{}, fmt.Errorf("milky: decode text segment: %w", err)
			}
			msg.Elements = append(msg.Elements, message.NewTextElement(data.Text))

		case segMention:
			var data mentionSegmentData
			if err := json.Unmarshal(seg.Data, &data); err != nil {
				return message.Message{}, fmt.Errorf("milky: decode mention segment: %w", err)
			}
			msg.Elements = append(msg.Elements, message.NewMentionElement(strconv.FormatInt(data.UserID, 10)))

		case segMentionAll:
			msg.Elements = append(msg.Elements, message.NewMentionAllElement())

		case segImage:
			var data imageSegmentData
			if err := json.Unmarshal(seg.Data, &data); err != nil {
				return message.Message{}, fmt.Errorf("milky: decode image segment: %w", err)
			}
			msg.Elements = append(msg.Elements, message.NewImageElement(data.TempURL, data.Width, data.Height))

		case segRecord:
			var data recordSegmentData
			if err := json.Unmarshal(seg.Data, &data); err != nil {
				return message.Message{}, fmt.Errorf("milky: decode record segment: %w", err)
			}
			msg.Elements = append(msg.Elements, message.NewAudioElement(data.TempURL, data.Duration))

		case segVideo:
			var data videoSegmentData
			if err := json.Unmarshal(seg.Data, &data); err != nil {
				return message.Message{}, fmt.Errorf("milky: decode video segment: %w", err)
			}
			msg.Elements = append(msg.Elements, message.NewVideoElement(data.TempURL, data.Width, data.Height, data.Duration))

		case segFile:
			var data fileSegmentData
			if err := json.Unmarshal(seg.Data, &data); err != nil {
				return message.Message{}, fmt.Errorf("milky: decode file segment: %w", err)
			}
			url, err := d.resolveFileURL(ctx, in, data)
			if err != nil {
				return message.Message{}, err
			}
			msg.Elements = append(msg.Elements, message.NewFileElement(url, data.FileName))

		case segReply:
			var data replySegmentData
			if err := json.Unmarshal(seg.Data, &data); err != nil {
				return message.Message{}, fmt.Errorf("milky: decode reply segment: %w", err)
			}
			// A stale or recalled reply target must not abort decoding
			// the current message.
			quote, err := d.fetchQuote(ctx, in.MessageScene, in.PeerID, data.MessageSeq)
			if err != nil {
				d.logger.Warn("quote resolution failed",
					"scene", string(in.MessageScene),
					"peer_id", in.PeerID,
					"message_seq", data.MessageSeq,
					"error", err)
				continue
			}
			msg.Quote = quote

		default:
			d.logger.Debug("skipping unknown segment type", "type", seg.Type)
		}
	}

	msg.Content = message.Flatten(msg.Elements)
	d.populateScene(&msg, in)
	return msg, nil
}

// resolveFileURL picks the private or group download action: a content hash
// marks a private file, its absence a group file.
func (d *decoder) resolveFileURL(ctx context.Context, in *IncomingMessage, data fileSegmentData) (string, error) {
	if data.FileHash != "" {
		out, err := d.client.GetPrivateFileDownloadURL(ctx, in.PeerID, data.FileID, data.FileHash)
		if err != nil {
			return "", fmt.Errorf("milky: resolve private file %s: %w", data.FileID, err)
		}
		return out.DownloadURL, nil
	}
	out, err := d.client.GetGroupFileDownloadURL(ctx, in.PeerID, data.FileID)
	if err != nil {
		return "", fmt.Errorf("milky: resolve group file %s: %w", data.FileID, err)
	}
	return out.DownloadURL, nil
}

func (d *decoder) fetchQuote(ctx context.Context, scene Scene, peerID, messageSeq int64) (*message.Message, error) {
	out, err := d.client.GetMessage(ctx, scene, peerID, messageSeq)
	if err != nil {
		return nil, err
	}
	quoted, err := d.decodeMessage(ctx, &out.Message)
	if err != nil {
		return nil, err
	}
	return &quoted, nil
}

// populateScene fills channel, guild, user, and member from the wire
// message's scene-specific envelope fields.
func (d *decoder) populateScene(msg *message.Message, in *IncomingMessage) {
	guildID, channelID := guildChannelID(in.MessageScene, in.PeerID)

	switch in.MessageScene {
	case SceneGroup:
		msg.Channel = &message.Channel{ID: channelID, Type: message.ChannelText}
		msg.Guild = &message.Guild{ID: guildID, AvatarURL: groupAvatarURL(in.PeerID)}
		if in.Group != nil {
			msg.Channel.Name = in.Group.GroupName
			msg.Guild.Name = in.Group.GroupName
		}
		msg.User = &message.User{
			ID:        strconv.FormatInt(in.SenderID, 10),
			AvatarURL: userAvatarURL(in.SenderID),
		}
		if in.GroupMember != nil {
			nick := in.GroupMember.Card
			if nick == "" {
				nick = in.GroupMember.Nickname
			}
			msg.User.Name = in.GroupMember.Nickname
			msg.Member = &message.GuildMember{
				User:      msg.User,
				Nick:      nick,
				AvatarURL: userAvatarURL(in.SenderID),
				JoinedAt:  time.Unix(in.GroupMember.JoinTime, 0),
			}
		}

	default: // friend and temp scenes carry no guild context
		msg.Channel = &message.Channel{ID: channelID, Type: message.ChannelDirect}
		msg.User = &message.User{
			ID:        strconv.FormatInt(in.SenderID, 10),
			AvatarURL: userAvatarURL(in.SenderID),
		}
		if in.Friend != nil {
			msg.Channel.Name = in.Friend.Nickname
			msg.User.Name = in.Friend.Nickname
		}
	}
}
