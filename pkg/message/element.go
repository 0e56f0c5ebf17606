package message

// ElementType discriminates the variant stored in an Element.
type ElementType string

// Supported element types.
const (
	ElementText       ElementType = "text"
	ElementMention    ElementType = "mention"
	ElementMentionAll ElementType = "mention_all"
	ElementImage      ElementType = "image"
	ElementAudio      ElementType = "audio"
	ElementVideo      ElementType = "video"
	ElementFile       ElementType = "file"
	ElementQuote      ElementType = "quote"
)

// Element is one node of a rich-content tree. The Type field discriminates
// which fields are meaningful. Elements are ordered; order is significant and
// preserved end-to-end by adapters.
//
// Container elements an adapter does not understand carry their Children so
// that encoders can recurse into them instead of dropping content.
type Element struct {
	Type ElementType `json:"type"`

	// Text carries the literal content of a text element.
	Text string `json:"text,omitempty"`

	// UserID is the mention target. Empty for mention_all.
	UserID string `json:"user_id,omitempty"`

	// URL points at media content (image, audio, video, file). It may be a
	// temporary platform URL, an https URL, or a data: URI on the outbound
	// path.
	URL string `json:"url,omitempty"`

	// FileName is the original name of a file element.
	FileName string `json:"file_name,omitempty"`

	// Width and Height describe image/video dimensions in pixels, when the
	// platform supplied them.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Duration is the audio/video length in seconds.
	Duration int `json:"duration,omitempty"`

	// MessageID is the back-referenced message of a quote element.
	MessageID string `json:"message_id,omitempty"`

	// Children holds nested elements for container types.
	Children []Element `json:"children,omitempty"`
}

// NewTextElement creates a text element.
func NewTextElement(text string) Element {
	return Element{Type: ElementText, Text: text}
}

// NewMentionElement creates a mention element targeting a single user.
func NewMentionElement(userID string) Element {
	return Element{Type: ElementMention, UserID: userID}
}

// NewMentionAllElement creates a broadcast mention element.
func NewMentionAllElement() Element {
	return Element{Type: ElementMentionAll}
}

// NewImageElement creates an image element.
func NewImageElement(url string, width, height int) Element {
	return Element{Type: ElementImage, URL: url, Width: width, Height: height}
}

// NewAudioElement creates an audio element.
func NewAudioElement(url string, duration int) Element {
	return Element{Type: ElementAudio, URL: url, Duration: duration}
}

// NewVideoElement creates a video element.
func NewVideoElement(url string, width, height, duration int) Element {
	return Element{Type: ElementVideo, URL: url, Width: width, Height: height, Duration: duration}
}

// NewFileElement creates a file element.
func NewFileElement(url, fileName string) Element {
	return Element{Type: ElementFile, URL: url, FileName: fileName}
}

// NewQuoteElement creates a quote element referencing an earlier message.
func NewQuoteElement(messageID string) Element {
	return Element{Type: ElementQuote, MessageID: messageID}
}

// Render returns the canonical textual rendering of a single element.
// Media elements render to the empty string.
func (e Element) Render() string {
	switch e.Type {
	case ElementText:
		return e.Text
	case ElementMention:
		return "@" + e.UserID
	case ElementMentionAll:
		return "@all"
	default:
		return Flatten(e.Children)
	}
}

// Flatten concatenates the textual rendering of elements in order.
func Flatten(elements []Element) string {
	var out string
	for _, e := range elements {
		out += e.Render()
	}
	return out
}
