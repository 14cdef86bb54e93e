package chat

import (
	"context"
	"fmt"

	"kbchat/pkg/knowledge"
)

// Session binds the conversation history, the active knowledge block, and a
// Completer into one interactive chat session.
type Session struct {
	completer Completer
	history   History
	knowledge string
}

// NewSession creates an empty session over the given completer.
func NewSession(completer Completer) *Session {
	return &Session{completer: completer}
}

// Ask records input as a user turn, issues one completion request over the
// prior history, and on success records and returns the assistant reply.
// On failure the user turn is retained and no assistant turn is added, so a
// retry re-sends it as prior context.
func (s *Session) Ask(ctx context.Context, input string) (string, error) {
	messages := BuildMessages(SystemInstruction, s.knowledge, s.history.Messages(), input)
	s.history.Append(Message{Role: RoleUser, Content: input})

	reply, err := s.completer.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}
	s.history.Append(Message{Role: RoleAssistant, Content: reply})
	return reply, nil
}

// ClearHistory discards the conversation record. The active knowledge block
// is kept.
func (s *Session) ClearHistory() {
	s.history.Clear()
}

// HistoryLen returns the number of recorded turns.
func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// SetKnowledge replaces the active knowledge block. It never merges.
func (s *Session) SetKnowledge(text string) {
	s.knowledge = text
}

// Knowledge returns the active knowledge block, possibly empty.
func (s *Session) Knowledge() string {
	return s.knowledge
}

// UseSource loads the source and replaces the active knowledge block with
// its rendering. On a load failure the previous knowledge is left unchanged.
func (s *Session) UseSource(src knowledge.Source) error {
	text, err := src.Load()
	if err != nil {
		return err
	}
	s.knowledge = text
	return nil
}
