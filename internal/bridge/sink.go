package bridge

import (
	"github.com/flemzord/milkybridge/pkg/message"
)

// Receive is the inbox function wired into every channel adapter. Sessions
// arrive in the order each adapter's event stream delivers them.
func (h *Hub) Receive(s message.Session) error {
	h.sessionsTotal.WithLabelValues(s.Adapter, string(s.Type)).Inc()

	attrs := []any{
		"type", string(s.Type),
		"adapter", s.Adapter,
	}
	if s.UserID != "" {
		attrs = append(attrs, "user", s.UserID)
	}
	if s.ChannelID != "" {
		attrs = append(attrs, "channel", s.ChannelID)
	}
	if s.MessageID != "" {
		attrs = append(attrs, "message_id", s.MessageID)
	}
	if s.Type == message.SessionInternal {
		attrs = append(attrs, "internal_type", s.InternalType)
	}
	h.logger.Info("session received", attrs...)

	h.record(s)
	return nil
}

func (h *Hub) record(s message.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.total++
	if len(h.recent) == 0 {
		return
	}
	h.recent[h.next] = entry{
		used: true,
		session: SessionSummary{
			Type:      string(s.Type),
			Adapter:   s.Adapter,
			UserID:    s.UserID,
			ChannelID: s.ChannelID,
			GuildID:   s.GuildID,
			MessageID: s.MessageID,
			Timestamp: s.Timestamp.Unix(),
		},
	}
	h.next = (h.next + 1) % len(h.recent)
}

// Recent returns the retained sessions, oldest first.
func (h *Hub) Recent() []SessionSummary {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]SessionSummary, 0, len(h.recent))
	for i := 0; i < len(h.recent); i++ {
		e := h.recent[(h.next+i)%len(h.recent)]
		if e.used {
			out = append(out, e.session)
		}
	}
	return out
}

// Total returns how many sessions the hub has received.
func (h *Hub) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}
