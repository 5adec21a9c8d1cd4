// Package chat runs the dashboard assistant: an append-only transcript
// backed by an LLM completion when one is configured, with canned
// intent-matched replies as the offline fallback.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"panpath-guardian/types"
	"panpath-guardian/webhook"
)

const greeting = "Hello! I'm your PanPath Guardian AI assistant. I can help you with platform navigation, data interpretation, and outbreak analysis. How can I assist you today?"

// Completer produces an assistant reply for a user message.
type Completer interface {
	Complete(ctx context.Context, message, pageContext string) (string, error)
}

// OpenAICompleter answers through the OpenAI chat completion API.
type OpenAICompleter struct {
	client *openai.Client
}

// NewOpenAICompleter builds a completer from an API key.
func NewOpenAICompleter(apiKey string) *OpenAICompleter {
	return &OpenAICompleter{client: openai.NewClient(apiKey)}
}

// Complete sends one user message with page context to the model.
func (o *OpenAICompleter) Complete(ctx context.Context, message, pageContext string) (string, error) {
	prompt := message
	if pageContext != "" {
		prompt = fmt.Sprintf("The user is currently on the %s page.\n\n%s", pageContext, message)
	}

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are the PanPath Guardian assistant. Help users navigate the pandemic surveillance dashboard, interpret signal data, and understand outbreak events. Be concise.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   200,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// WebhookCompleter relays chat messages to the workflow automation
// service's chat endpoint. It is the reply path when no LLM key is
// configured; an unconfigured webhook degrades further, to canned replies.
type WebhookCompleter struct {
	hook *webhook.Dispatcher
}

// NewWebhookCompleter builds a completer over the automation service.
func NewWebhookCompleter(hook *webhook.Dispatcher) *WebhookCompleter {
	return &WebhookCompleter{hook: hook}
}

// Complete forwards the message and page context and expects the service to
// answer with a "reply" field.
func (w *WebhookCompleter) Complete(ctx context.Context, message, pageContext string) (string, error) {
	resp, err := w.hook.Dispatch(webhook.OpChatMessage, map[string]interface{}{
		"message": message,
		"context": pageContext,
	})
	if err != nil {
		return "", err
	}
	if reply, ok := resp["reply"].(string); ok && reply != "" {
		return reply, nil
	}
	return "", errors.New("automation service returned no reply")
}

// Assistant owns one conversation transcript. Safe for concurrent use:
// sends against the same session serialize on the transcript lock, so each
// reply lands directly after its user message.
type Assistant struct {
	completer Completer

	mu         sync.Mutex
	transcript []types.ChatMessage
	now        func() time.Time
}

// NewAssistant starts a conversation seeded with the greeting. The
// completer may be nil, in which case every reply is canned.
func NewAssistant(completer Completer) *Assistant {
	a := &Assistant{completer: completer, now: time.Now}
	a.transcript = append(a.transcript, types.ChatMessage{
		ID:        uuid.NewString(),
		Role:      types.RoleAssistant,
		Content:   greeting,
		Timestamp: a.now().UTC().Format(time.RFC3339),
	})
	return a
}

// Send appends the user message, obtains a reply, and appends exactly one
// assistant message. A failed completion substitutes the canned reply for
// the message's intent; the user's entry is never rolled back and no error
// reaches the caller.
func (a *Assistant) Send(ctx context.Context, content, pageContext string) types.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()

	userMsg := types.ChatMessage{
		ID:        uuid.NewString(),
		Role:      types.RoleUser,
		Content:   content,
		Timestamp: a.now().UTC().Format(time.RFC3339),
		Context:   pageContext,
	}
	a.transcript = append(a.transcript, userMsg)

	reply := ""
	if a.completer != nil {
		got, err := a.completer.Complete(ctx, content, pageContext)
		if err == nil {
			reply = got
		}
	}
	if reply == "" {
		reply = CannedResponse(content)
	}

	assistantMsg := types.ChatMessage{
		ID:        uuid.NewString(),
		Role:      types.RoleAssistant,
		Content:   reply,
		Timestamp: a.now().UTC().Format(time.RFC3339),
		Context:   pageContext,
	}
	a.transcript = append(a.transcript, assistantMsg)
	return assistantMsg
}

// Transcript returns a copy of the conversation so far.
func (a *Assistant) Transcript() []types.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]types.ChatMessage, len(a.transcript))
	copy(out, a.transcript)
	return out
}
