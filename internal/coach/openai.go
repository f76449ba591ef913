// Package coach generates free-text coaching replies for the /generate
// endpoint, backed by OpenAI when a key is configured and by a canned
// response otherwise.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Generator produces a coaching reply for a free-text prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const systemPrompt = "You are a concise mental-performance coach for " +
	"competitive athletes. Answer in a few encouraging, practical sentences."

// Compile-time interface check
var _ Generator = (*OpenAI)(nil)

// ChatService defines the interface for making chat completion API calls.
// This abstraction enables testing without calling the real OpenAI API.
type ChatService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAI implements the coach using OpenAI's chat completions API.
type OpenAI struct {
	chat  ChatService
	model openai.ChatModel
}

// NewOpenAI creates a new OpenAI-backed coach.
func NewOpenAI(apiKey, model string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		chat:  client.Chat.Completions,
		model: openai.ChatModel(model),
	}
}

// Generate produces a reply for the given prompt.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.chat.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		}),
		Model: openai.F(o.model),
	})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generation failed: no choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Canned is the no-key fallback: a fixed supportive reply so local
// development works without external credentials.
type Canned struct{}

// Generate returns the canned reply.
func (Canned) Generate(ctx context.Context, prompt string) (string, error) {
	return "Focus on your routine, commit to each shot, and review one " +
		"takeaway after every session. Consistent reflection beats " +
		"intensity.", nil
}
