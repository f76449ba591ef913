package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// mockChatService implements ChatService for testing
type mockChatService struct {
	response  *openai.ChatCompletion
	err       error
	callCount int
	lastModel string
}

func (m *mockChatService) New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	m.callCount++
	m.lastModel = string(params.Model.Value)
	return m.response, m.err
}

func chatResponse(content string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestGenerate(t *testing.T) {
	mock := &mockChatService{response: chatResponse("  Trust your routine.  ")}
	o := &OpenAI{chat: mock, model: openai.ChatModel("gpt-4o-mini")}

	got, err := o.Generate(context.Background(), "How do I handle pressure?")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Trust your routine." {
		t.Errorf("Generate() = %q, want trimmed reply", got)
	}
	if mock.callCount != 1 {
		t.Errorf("callCount = %d, want 1", mock.callCount)
	}
	if mock.lastModel != "gpt-4o-mini" {
		t.Errorf("model = %q", mock.lastModel)
	}
}

func TestGenerateAPIError(t *testing.T) {
	mock := &mockChatService{err: errors.New("rate limited")}
	o := &OpenAI{chat: mock, model: openai.ChatModel("gpt-4o-mini")}

	if _, err := o.Generate(context.Background(), "prompt"); err == nil {
		t.Error("Generate() = nil error, want wrapped API error")
	}
}

func TestGenerateNoChoices(t *testing.T) {
	mock := &mockChatService{response: &openai.ChatCompletion{}}
	o := &OpenAI{chat: mock, model: openai.ChatModel("gpt-4o-mini")}

	if _, err := o.Generate(context.Background(), "prompt"); err == nil {
		t.Error("Generate() = nil error, want error for empty choices")
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	mock := &mockChatService{response: chatResponse("reply")}
	o := &OpenAI{chat: mock, model: openai.ChatModel("gpt-4o-mini")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := o.Generate(ctx, "prompt"); err == nil {
		t.Error("Generate() = nil error with cancelled context")
	}
}

func TestCanned(t *testing.T) {
	got, err := Canned{}.Generate(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Canned.Generate() error = %v", err)
	}
	if got == "" {
		t.Error("Canned.Generate() returned empty reply")
	}
}
