package llmagent

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Define a custom type for context keys
type ContextKey string

const turnIDKey = ContextKey("turnID")

// ChatClient defines the minimal contract the executor needs from a
// language-model provider.
type ChatClient interface {
	// New issues a non-streaming chat completion request.
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

var _ ChatClient = (*LLM)(nil)

// LLM is a wrapper around the openai client, just to inject the turn identifier for now
type LLM struct {
	APIKey  string
	BaseURL string
	client  openai.Client
}

func NewLLM(apiKey string, baseURL string) *LLM {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// failures go straight back to the caller
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &LLM{
		APIKey:  apiKey,
		BaseURL: baseURL,
		client:  openai.NewClient(opts...),
	}
}

// WithTurnID returns a context carrying the turn identifier.
func WithTurnID(ctx context.Context, turnID string) context.Context {
	return context.WithValue(ctx, turnIDKey, turnID)
}

// TurnID returns the turn identifier stored in ctx, if any.
func TurnID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(turnIDKey).(string)
	return id, ok && id != ""
}

func optsWithIds(ctx context.Context, opts []option.RequestOption) []option.RequestOption {
	if turnID, ok := TurnID(ctx); ok {
		opts = append(opts, option.WithHeader("X-Client-Request-Id", turnID))
	}
	return opts
}

func (c *LLM) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	opts := []option.RequestOption{}
	opts = optsWithIds(ctx, opts)
	return c.client.Chat.Completions.New(ctx, params, opts...)
}
