package llmagent

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
)

// Registry keeps the mapping between tool names and tools. It is filled once
// at startup and only read afterwards.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry creates a registry holding the given tools in order.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools: make(map[string]Tool, len(tools)),
	}
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register inserts a tool when its name is not in use.
func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name is empty")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool %s has no handler", tool.Name)
	}
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}
	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string{}, r.order...)
}

// Definitions returns the tool schema advertised to the model.
func (r *Registry) Definitions() []openai.ChatCompletionToolParam {
	tools := make([]openai.ChatCompletionToolParam, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name].OpenAI())
	}
	return tools
}

// Execute runs the named tool. Whatever the tool returns, value or error, is
// handed back untouched. A panicking tool yields ErrToolPanicked.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (result any, err error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("%w: %s: %v", ErrToolPanicked, name, rec)
		}
	}()
	return tool.Handler(ctx, args)
}
