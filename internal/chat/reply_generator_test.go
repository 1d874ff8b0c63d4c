package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmate-app/moodmate-backend/internal/llm"
)

type stubClient struct {
	text    string
	err     error
	lastReq llm.Request
	calls   int
}

func (s *stubClient) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	s.calls++
	s.lastReq = req
	return llm.Response{Text: s.text}, s.err
}

func TestGenerateParsesModelJSON(t *testing.T) {
	client := &stubClient{text: `{"message":"That sounds tough. Want to tell me more?","chips":["Tell me more","Breathing exercise","Journal"],"safety_check":false}`}
	g := NewReplyGenerator(client, 6, nil)

	reply := g.Generate(context.Background(), nil, "rough day at school", "Asha")

	assert.Equal(t, "That sounds tough. Want to tell me more?", reply.Message)
	assert.Equal(t, []string{"Tell me more", "Breathing exercise", "Journal"}, reply.Chips)
	assert.False(t, reply.SafetyCheck)
}

func TestGenerateStripsCodeFence(t *testing.T) {
	client := &stubClient{text: "```json\n{\"message\":\"Hi there!\",\"chips\":[\"A\",\"B\",\"C\"],\"safety_check\":false}\n```"}
	g := NewReplyGenerator(client, 6, nil)

	reply := g.Generate(context.Background(), nil, "hello", "")
	assert.Equal(t, "Hi there!", reply.Message)
}

func TestGenerateBadJSONKeepsRawText(t *testing.T) {
	client := &stubClient{text: "I'm sorry you're feeling low today."}
	g := NewReplyGenerator(client, 6, nil)

	reply := g.Generate(context.Background(), nil, "I'm feeling sad and lonely", "Asha")

	// Raw model text survives; chips come from the mild-negative template.
	assert.Equal(t, "I'm sorry you're feeling low today.", reply.Message)
	require.Len(t, reply.Chips, 3)
	assert.False(t, reply.SafetyCheck)
}

func TestGenerateModelErrorUsesTemplate(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	g := NewReplyGenerator(client, 6, nil)

	reply := g.Generate(context.Background(), nil, "I'm feeling sad", "Asha")

	assert.Contains(t, reply.Message, "Asha")
	assert.Len(t, reply.Chips, 3)
}

func TestGenerateNilClientUsesTemplate(t *testing.T) {
	g := NewReplyGenerator(nil, 6, nil)

	reply := g.Generate(context.Background(), nil, "what's up", "")
	assert.Contains(t, reply.Message, "friend")
}

func TestGenerateWindowsHistory(t *testing.T) {
	client := &stubClient{text: `{"message":"ok","chips":["a","b","c"],"safety_check":false}`}
	g := NewReplyGenerator(client, 6, nil)

	history := make([]Turn, 10)
	for i := range history {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		history[i] = Turn{Role: role, Content: "turn"}
	}

	g.Generate(context.Background(), history, "latest", "")

	// Six most recent turns plus the current message.
	require.Len(t, client.lastReq.Messages, 7)
	assert.Equal(t, llm.RoleUser, client.lastReq.Messages[6].Role)
	assert.Equal(t, "latest", client.lastReq.Messages[6].Content)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	assert.Equal(t, "plain text", stripCodeFence("plain text"))
}
