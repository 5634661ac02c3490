// Package llmagent - tool.go
// Defines the Tool descriptor advertised to the model and executed locally.
package llmagent

import (
	"context"

	"github.com/openai/openai-go"
)

// Handler runs a tool with the decoded JSON arguments of a tool call.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Tool describes a locally executable function: its name, the free-text
// description the model sees, its parameter schema and the handler.
type Tool struct {
	Name        string
	Description string
	Parameters  openai.FunctionParameters
	// Required lists the parameters that carry no default.
	Required []string
	Handler  Handler
}

// NewTool builds a Tool whose parameters are described by the argument
// struct T. Each call decodes the arguments over a copy of defaults.
func NewTool[T any](name, description string, defaults T, fn func(ctx context.Context, args T) (any, error)) Tool {
	parameters, required := GenerateParameters[T]()
	return Tool{
		Name:        name,
		Description: description,
		Parameters:  parameters,
		Required:    required,
		Handler: func(ctx context.Context, raw map[string]any) (any, error) {
			args := defaults
			if err := DecodeArguments(raw, &args); err != nil {
				return nil, err
			}
			return fn(ctx, args)
		},
	}
}

// OpenAI returns the definition sent along with chat completion requests.
func (t Tool) OpenAI() openai.ChatCompletionToolParam {
	definition := openai.FunctionDefinitionParam{
		Name:       t.Name,
		Parameters: t.Parameters,
	}
	if t.Description != "" {
		definition.Description = openai.String(t.Description)
	}
	return openai.ChatCompletionToolParam{
		Function: definition,
	}
}
