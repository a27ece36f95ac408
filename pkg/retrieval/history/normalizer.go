package history

import (
	"strings"

	"swim-coach-be/pkg/llm"
	"swim-coach-be/pkg/retrieval/prompt"
)

// History bounds. The client round-trips the full conversation on every
// request, so both the turn count and per-turn size must stay capped.
const (
	MaxHistoryMessages = 8
	MaxHistoryChars    = 3000
)

const strippedBlockPlaceholder = "\n\n[template references omitted for follow-up turn]"

// Normalize bounds a client-supplied conversation history: only user and
// assistant turns survive, embedded template blocks are replaced with a short
// placeholder, content is truncated to MaxHistoryChars, empty turns are
// dropped, and only the most recent MaxHistoryMessages remain. Idempotent on
// already-normalized input.
//
// Stripping the template block matters: without it every follow-up turn would
// re-transmit the full reference corpus back through the LLM.
func Normalize(messages []llm.Message) []llm.Message {
	normalized := make([]llm.Message, 0, len(messages))

	for _, msg := range messages {
		if msg.Role != "user" && msg.Role != "assistant" {
			continue
		}
		content := strings.TrimSpace(StripTemplateBlock(msg.Content))
		if len(content) > MaxHistoryChars {
			content = content[:MaxHistoryChars]
		}
		if content == "" {
			continue
		}
		normalized = append(normalized, llm.Message{Role: msg.Role, Content: content})
	}

	if len(normalized) > MaxHistoryMessages {
		normalized = normalized[len(normalized)-MaxHistoryMessages:]
	}
	return normalized
}

// StripTemplateBlock removes an embedded template reference block, replacing
// it with a placeholder so the turn still reads coherently.
func StripTemplateBlock(content string) string {
	idx := strings.Index(content, prompt.TemplateBlockMarker)
	if idx == -1 {
		return content
	}
	return strings.TrimSpace(content[:idx]) + strippedBlockPlaceholder
}

// Window re-applies the turn-count bound after new turns are appended.
func Window(messages []llm.Message) []llm.Message {
	if len(messages) > MaxHistoryMessages {
		return messages[len(messages)-MaxHistoryMessages:]
	}
	return messages
}
