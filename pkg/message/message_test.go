package message

import "testing"

func TestMessage_TextContent(t *testing.T) {
	m := &Message{
		Elements: []Element{
			NewTextElement("see "),
			NewMentionElement("7"),
		},
	}
	if got := m.TextContent(); got != "see @7" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestNewTextOutbound(t *testing.T) {
	out := NewTextOutbound("channel.milky", "private:42", "hi")
	if out.Adapter != "channel.milky" {
		t.Errorf("Adapter = %q", out.Adapter)
	}
	if out.ChannelID != "private:42" {
		t.Errorf("ChannelID = %q", out.ChannelID)
	}
	if len(out.Elements) != 1 || out.Elements[0].Type != ElementText || out.Elements[0].Text != "hi" {
		t.Errorf("Elements = %+v", out.Elements)
	}
}

func TestSession_IsDirect(t *testing.T) {
	direct := &Session{ChannelID: "private:42"}
	if !direct.IsDirect() {
		t.Error("session without guild should be direct")
	}

	guild := &Session{ChannelID: "100", GuildID: "100"}
	if guild.IsDirect() {
		t.Error("session with guild should not be direct")
	}
}
