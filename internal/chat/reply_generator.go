package chat

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/moodmate-app/moodmate-backend/internal/llm"
	"github.com/moodmate-app/moodmate-backend/internal/triage"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// historyWindowDefault bounds how many prior turns are sent to the model.
const historyWindowDefault = 6

// Reply is the structured assistant response surfaced to the client.
type Reply struct {
	Message     string   `json:"message"`
	Chips       []string `json:"chips"`
	SafetyCheck bool     `json:"safety_check"`
}

// Turn is one prior message in a session, oldest first.
type Turn struct {
	Role    string
	Content string
}

// ReplyGenerator produces assistant replies from the language model, with the
// triage templates as a strict fallback chain:
//
//	model success, valid JSON  -> parsed reply
//	model success, bad JSON    -> raw text + triage chips/safety flag
//	model error or no model    -> full triage template
//
// No retries: the first failure at any stage moves to the next tier.
type ReplyGenerator struct {
	client llm.Client
	logger *logging.Logger
	window int
}

// NewReplyGenerator creates a generator. client may be nil; every call then
// resolves to the triage template tier.
func NewReplyGenerator(client llm.Client, window int, logger *logging.Logger) *ReplyGenerator {
	if logger == nil {
		logger = logging.Default()
	}
	if window <= 0 {
		window = historyWindowDefault
	}
	return &ReplyGenerator{client: client, logger: logger, window: window}
}

// Generate builds a reply for the message given recent history.
func (g *ReplyGenerator) Generate(ctx context.Context, history []Turn, message, userName string) Reply {
	if g.client == nil {
		return Reply(triage.TemplateFor(triage.ClassifyBucket(ctx, message), userName))
	}

	if len(history) > g.window {
		history = history[len(history)-g.window:]
	}

	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := g.client.Complete(ctx, llm.Request{
		System:      []string{systemPrompt, responseFormat},
		Messages:    messages,
		MaxTokens:   512,
		Temperature: 0.7,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		if err != nil {
			g.logger.Warn("reply generation failed, using triage template", "error", err)
		}
		return Reply(triage.TemplateFor(triage.ClassifyBucket(ctx, message), userName))
	}

	raw := stripCodeFence(resp.Text)

	var reply Reply
	if jsonErr := json.Unmarshal([]byte(raw), &reply); jsonErr != nil || strings.TrimSpace(reply.Message) == "" {
		// The model answered but not in the requested shape: keep its text,
		// borrow chips and safety flag from the triage template.
		g.logger.Warn("reply JSON decode failed, keeping raw text", "error", jsonErr)
		tpl := triage.TemplateFor(triage.ClassifyBucket(ctx, message), userName)
		return Reply{
			Message:     raw,
			Chips:       tpl.Chips,
			SafetyCheck: tpl.SafetyCheck,
		}
	}

	return reply
}

// stripCodeFence removes a wrapping markdown code fence (``` or ```json) that
// models sometimes add around JSON output.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
