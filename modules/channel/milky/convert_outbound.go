package milky

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/flemzord/milkybridge/pkg/message"
)

// The wire protocol carries inline binary as "base64://<payload>" rather
// than a generic data URI.
var dataURIPrefix = regexp.MustCompile(`^data:[^;,]+;base64,`)

func toWireURI(uri string) string {
	if loc := dataURIPrefix.FindStringIndex(uri); loc != nil {
		return "base64://" + uri[loc[1]:]
	}
	return uri
}

// messageEncoder accumulates wire segments while visiting an element tree
// and flushes them as one send call. Each send operation owns its own
// encoder; the segment buffer is not safe to share across concurrent sends.
type messageEncoder struct {
	client *Client
	scene  Scene
	peerID int64

	// Outgoing context stamped onto synthesized echo messages.
	channelID string
	guildID   string
	self      LoginInfo

	buffer  []OutgoingSegment
	results []message.Message
}

func newMessageEncoder(client *Client, channelID string, self LoginInfo) (*messageEncoder, error) {
	scene, peerID, err := ParseChannelID(channelID)
	if err != nil {
		return nil, err
	}
	guildID, _ := guildChannelID(scene, peerID)
	return &messageEncoder{
		client:    client,
		scene:     scene,
		peerID:    peerID,
		channelID: channelID,
		guildID:   guildID,
		self:      self,
	}, nil
}

// visit appends the wire segments for one element. Container elements the
// encoder does not understand are recursed into, never dropped.
func (e *messageEncoder) visit(el message.Element) error {
	switch el.Type {
	case message.ElementText:
		e.buffer = append(e.buffer, textSegment(el.Text))

	case message.ElementMentionAll:
		e.buffer = append(e.buffer, mentionAllSegment())

	case message.ElementMention:
		userID, err := strconv.ParseInt(el.UserID, 10, 64)
		if err != nil {
			return fmt.Errorf("milky: encode mention target %q: %w", el.UserID, err)
		}
		e.buffer = append(e.buffer, mentionSegment(userID))

	case message.ElementImage:
		e.buffer = append(e.buffer, imageSegment(toWireURI(el.URL)))

	case message.ElementAudio:
		e.buffer = append(e.buffer, recordSegment(toWireURI(el.URL)))

	case message.ElementQuote:
		messageSeq, err := strconv.ParseInt(el.MessageID, 10, 64)
		if err != nil {
			return fmt.Errorf("milky: encode quote reference %q: %w", el.MessageID, err)
		}
		e.buffer = append(e.buffer, replySegment(messageSeq))

	default:
		for _, child := range el.Children {
			if err := e.visit(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// flush sends the buffered segments and synthesizes the echo message from
// the returned sequence number and server timestamp, stamped with the
// outgoing context. The buffer is cleared so a multi-part send can continue.
func (e *messageEncoder) flush(ctx context.Context) error {
	if len(e.buffer) == 0 {
		return nil
	}
	segments := e.buffer
	e.buffer = nil

	var out SendMessageOutput
	var err error
	if e.scene == SceneGroup {
		out, err = e.client.SendGroupMessage(ctx, e.peerID, segments)
	} else {
		out, err = e.client.SendPrivateMessage(ctx, e.peerID, segments)
	}
	if err != nil {
		return err
	}

	echo := message.Message{
		ID:        strconv.FormatInt(out.MessageSeq, 10),
		Timestamp: time.Unix(out.Time, 0),
		Channel:   &message.Channel{ID: e.channelID, Type: channelTypeFor(e.scene)},
		User: &message.User{
			ID:        strconv.FormatInt(e.self.UIN, 10),
			Name:      e.self.Nickname,
			AvatarURL: userAvatarURL(e.self.UIN),
		},
	}
	if e.guildID != "" {
		echo.Guild = &message.Guild{ID: e.guildID, AvatarURL: groupAvatarURL(e.peerID)}
	}
	e.results = append(e.results, echo)
	return nil
}

// encode visits the whole element tree and performs the final flush.
func (e *messageEncoder) encode(ctx context.Context, elements []message.Element) ([]message.Message, error) {
	for _, el := range elements {
		if err := e.visit(el); err != nil {
			return nil, err
		}
	}
	if err := e.flush(ctx); err != nil {
		return nil, err
	}
	return e.results, nil
}

func channelTypeFor(scene Scene) message.ChannelType {
	if scene == SceneGroup {
		return message.ChannelText
	}
	return message.ChannelDirect
}
