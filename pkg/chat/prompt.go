package chat

import (
	"github.com/openai/openai-go"
)

// SystemInstruction is the fixed instruction placed first in every request.
const SystemInstruction = "You are world class technical documentation writer."

// BuildMessages assembles one request payload: the system instruction first,
// the knowledge block as a second system message when non-empty, the full
// history oldest first with no truncation, and the new input as the final
// turn. Pure construction: the caller owns all history mutation.
func BuildMessages(instruction, knowledge string, history []Message, input string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+3)
	messages = append(messages, openai.SystemMessage(instruction))
	if knowledge != "" {
		messages = append(messages, openai.SystemMessage(knowledge))
	}
	for _, m := range history {
		switch m.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(input))
	return messages
}
