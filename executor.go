// Package llmagent runs a bounded conversation with a chat-completion model,
// executing the tool calls it requests against a local Registry.
package llmagent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/openai/openai-go"

	"github.com/dhk1349/llm-agent/prompts"
)

const (
	DefaultModel         = "gpt-4o-mini"
	DefaultMaxIterations = 5
)

// ExecutorConfig tunes an Executor. Zero values fall back to the defaults.
type ExecutorConfig struct {
	Model         string
	MaxIterations int
	// SystemPrompt overrides the generated system instruction.
	SystemPrompt string
}

// Executor mediates between user input, the model and the tool registry.
type Executor struct {
	llm           ChatClient
	registry      *Registry
	model         string
	maxIterations int
	systemPrompt  string
	logger        *slog.Logger
}

// NewExecutor builds an Executor. The logger is required; every log line of
// the loop goes through it.
func NewExecutor(llm ChatClient, registry *Registry, cfg ExecutorConfig, logger *slog.Logger) (*Executor, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm client is nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("registry is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.MaxIterations < 0 {
		return nil, fmt.Errorf("max iterations must be positive, got %d", cfg.MaxIterations)
	}
	if cfg.SystemPrompt == "" {
		prompt, err := prompts.SystemPrompt(prompts.SystemPromptData{ToolNames: registry.Names()})
		if err != nil {
			return nil, fmt.Errorf("render system prompt: %w", err)
		}
		cfg.SystemPrompt = prompt
	}

	logger.Info("Executor initialized", "model", cfg.Model, "max_iterations", cfg.MaxIterations, "tools", registry.Len())
	return &Executor{
		llm:           llm,
		registry:      registry,
		model:         cfg.Model,
		maxIterations: cfg.MaxIterations,
		systemPrompt:  cfg.SystemPrompt,
		logger:        logger,
	}, nil
}

// ProcessUserInput runs one turn: it sends the input to the model, executes
// requested tools and returns the model's final answer. Remote and tool
// errors end the turn and are returned as they are.
func (e *Executor) ProcessUserInput(ctx context.Context, userInput string) (string, error) {
	turnID, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate turn id: %w", err)
	}
	ctx = WithTurnID(ctx, turnID)
	logger := e.logger.With("turn", turnID)
	logger.Info("Processing user input")
	logger.Debug("User input", "input", userInput)

	messages := NewMessageList()
	messages.AddSystem(e.systemPrompt)
	messages.AddUser(userInput)

	usage := &Usage{}
	defer func() {
		e.logUsage(logger, usage)
		logger.Debug("Conversation", "transcript", messages.Transcript())
	}()

	var lastContent string
	for iteration := 1; iteration <= e.maxIterations; iteration++ {
		logger.Info("Starting iteration", "iteration", iteration, "max_iterations", e.maxIterations)

		message, err := e.complete(ctx, messages, true, usage)
		if err != nil {
			logger.Error("Error calling LLM", "error", err)
			return "", err
		}
		lastContent = message.Content

		// if there is no tool call, this is the answer
		if len(message.ToolCalls) == 0 {
			logger.Info("No tool calls requested, returning direct response")
			return message.Content, nil
		}

		logger.Info("Processing tool calls", "count", len(message.ToolCalls))
		results := make([]string, 0, len(message.ToolCalls))
		for _, toolCall := range message.ToolCalls {
			output, err := e.executeToolCall(ctx, logger, toolCall)
			if err != nil {
				return "", err
			}
			results = append(results, output)
		}

		messages.AddToolCalls(message.Content, message.ToolCalls)
		for i, toolCall := range message.ToolCalls {
			messages.AddToolResult(toolCall.ID, results[i])
		}

		if message.Content == "" {
			logger.Info("Getting final response")
			final, err := e.complete(ctx, messages, false, usage)
			if err != nil {
				logger.Error("Error getting final response", "error", err)
				return "", err
			}
			return final.Content, nil
		}

		logger.Info("Continuing conversation with intermediate response")
	}

	logger.Warn("Reached maximum iterations, stopping conversation", "max_iterations", e.maxIterations)
	return fmt.Sprintf("I've reached the maximum number of function calls (%d). Here's what I've done so far: %s", e.maxIterations, lastContent), nil
}

// complete sends the conversation to the model and returns the first choice.
func (e *Executor) complete(ctx context.Context, messages *MessageList, withTools bool, usage *Usage) (openai.ChatCompletionMessage, error) {
	// the client gets its own copy; the turn's list stays append-only
	params := openai.ChatCompletionNewParams{
		Messages: messages.Clone().All(),
		Model:    openai.ChatModel(e.model),
	}
	if withTools && e.registry.Len() > 0 {
		params.Tools = e.registry.Definitions()
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}

	completion, err := e.llm.New(ctx, params)
	if err != nil {
		return openai.ChatCompletionMessage{}, err
	}
	usage.Add(completion.Usage)
	if len(completion.Choices) == 0 {
		return openai.ChatCompletionMessage{}, ErrEmptyCompletion
	}
	return completion.Choices[0].Message, nil
}

func (e *Executor) executeToolCall(ctx context.Context, logger *slog.Logger, toolCall openai.ChatCompletionMessageToolCall) (string, error) {
	name := toolCall.Function.Name
	logger.Info("Executing tool", "tool", name, "call_id", toolCall.ID)
	logger.Debug("Tool arguments", "tool", name, "arguments", toolCall.Function.Arguments)

	arguments := map[string]any{}
	if toolCall.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &arguments); err != nil {
			logger.Error("Error unmarshalling tool arguments", "tool", name, "error", err)
			return "", fmt.Errorf("tool %s arguments: %w", name, err)
		}
	}

	result, err := e.registry.Execute(ctx, name, arguments)
	if err != nil {
		logger.Error("Error executing tool", "tool", name, "error", err)
		return "", err
	}
	output := RenderResult(result)
	logger.Info("Tool executed successfully", "tool", name)
	logger.Debug("Tool result", "tool", name, "result", output)
	return output, nil
}

func (e *Executor) logUsage(logger *slog.Logger, usage *Usage) {
	if usage.Requests == 0 {
		return
	}
	attrs := []any{
		"requests", usage.Requests,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	}
	if cost, ok := usage.Cost(e.model); ok {
		attrs = append(attrs, "cost_usd", cost.TotalCost)
	}
	logger.Info("Turn usage", attrs...)
}
