// Package chat holds conversation state and performs chat completions
// against an Azure-hosted OpenAI deployment.
package chat

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn. Immutable once created.
type Message struct {
	Role    Role
	Content string
}

// History is the ordered in-memory conversation record. It is never
// persisted and grows without bound for the life of the process.
type History struct {
	messages []Message
}

// Append adds one message to the end of the history.
func (h *History) Append(m Message) {
	h.messages = append(h.messages, m)
}

// Clear discards every message.
func (h *History) Clear() {
	h.messages = nil
}

// Len returns the number of recorded messages.
func (h *History) Len() int {
	return len(h.messages)
}

// Messages returns a copy of the history, oldest first.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}
