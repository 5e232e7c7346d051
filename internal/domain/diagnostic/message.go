package diagnostic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Message is the text of a diagnostic. It is exactly one of two variants:
// plain text, or a chain of nested sub-messages used by backends to report
// multi-part explanations. The zero value is an empty text message.
type Message struct {
	text  string
	chain *MessageChain
}

// MessageChain is one node of a nested diagnostic explanation.
type MessageChain struct {
	Text     string         `json:"messageText"`
	Code     int            `json:"code,omitempty"`
	Category Severity       `json:"category"`
	Next     []MessageChain `json:"next,omitempty"`
}

// Text returns a plain-text message.
func Text(s string) Message {
	return Message{text: s}
}

// Chain returns a chained message rooted at c.
func Chain(c MessageChain) Message {
	return Message{chain: &c}
}

// IsChain reports whether the message is the chained variant.
func (m Message) IsChain() bool {
	return m.chain != nil
}

// PlainText returns the text and true for plain-text messages. For chained
// messages it returns "" and false.
func (m Message) PlainText() (string, bool) {
	if m.chain != nil {
		return "", false
	}
	return m.text, true
}

// Chained returns the root of a chained message and true. For plain-text
// messages it returns the zero chain and false.
func (m Message) Chained() (MessageChain, bool) {
	if m.chain == nil {
		return MessageChain{}, false
	}
	return *m.chain, true
}

// Equal reports whether two messages have the same variant and content.
func (m Message) Equal(other Message) bool {
	if m.IsChain() != other.IsChain() {
		return false
	}
	if !m.IsChain() {
		return m.text == other.text
	}
	return m.chain.equal(other.chain)
}

// String flattens the message for display. Chained messages render one node
// per line, indented by depth.
func (m Message) String() string {
	if m.chain == nil {
		return m.text
	}
	var b strings.Builder
	m.chain.flatten(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

// MarshalJSON encodes plain text as a JSON string and chains as an object.
func (m Message) MarshalJSON() ([]byte, error) {
	if m.chain != nil {
		return json.Marshal(m.chain)
	}
	return json.Marshal(m.text)
}

// UnmarshalJSON accepts either a JSON string or a message chain object.
func (m *Message) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = Message{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decoding message text: %w", err)
		}
		*m = Text(s)
		return nil
	case '{':
		var c MessageChain
		if err := json.Unmarshal(trimmed, &c); err != nil {
			return fmt.Errorf("decoding message chain: %w", err)
		}
		*m = Chain(c)
		return nil
	default:
		return errors.New("message must be a string or a message chain object")
	}
}

func (c *MessageChain) equal(other *MessageChain) bool {
	if c.Text != other.Text || c.Code != other.Code || c.Category != other.Category {
		return false
	}
	if len(c.Next) != len(other.Next) {
		return false
	}
	for i := range c.Next {
		if !c.Next[i].equal(&other.Next[i]) {
			return false
		}
	}
	return true
}

func (c *MessageChain) flatten(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(c.Text)
	b.WriteByte('\n')
	for i := range c.Next {
		c.Next[i].flatten(b, depth+1)
	}
}
