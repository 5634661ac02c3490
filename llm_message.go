package llmagent

import (
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
)

// MessageList holds the ordered conversation of a single turn. Messages are
// only ever appended.
type MessageList struct {
	Messages []openai.ChatCompletionMessageParamUnion
}

func NewMessageList() *MessageList {
	return &MessageList{
		Messages: []openai.ChatCompletionMessageParamUnion{},
	}
}

func (ml *MessageList) Len() int {
	return len(ml.Messages)
}

// Add appends one or more new messages to the MessageList in a FIFO order.
func (ml *MessageList) Add(msgs ...openai.ChatCompletionMessageParamUnion) {
	ml.Messages = append(ml.Messages, msgs...)
}

func (ml *MessageList) AddSystem(content string) {
	ml.Add(openai.SystemMessage(content))
}

func (ml *MessageList) AddUser(content string) {
	ml.Add(openai.UserMessage(content))
}

// AddToolCalls records an assistant message carrying the requested tool
// calls. content is attached only when the model sent text with the calls.
func (ml *MessageList) AddToolCalls(content string, calls []openai.ChatCompletionMessageToolCall) {
	assistant := openai.ChatCompletionAssistantMessageParam{}
	if content != "" {
		assistant.Content.OfString = openai.String(content)
	}
	for _, call := range calls {
		assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallParam{
			ID: call.ID,
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		})
	}
	ml.Add(openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
}

func (ml *MessageList) AddToolResult(toolCallID string, content string) {
	ml.Add(openai.ToolMessage(content, toolCallID))
}

func (ml *MessageList) All() []openai.ChatCompletionMessageParamUnion {
	return ml.Messages
}

func (ml *MessageList) Clone() *MessageList {
	return &MessageList{
		Messages: append([]openai.ChatCompletionMessageParamUnion{}, ml.Messages...),
	}
}

// Transcript renders the conversation for debug logging.
func (ml *MessageList) Transcript() string {
	var b strings.Builder
	for _, msg := range ml.Messages {
		role := "unknown"
		content := ""

		switch {
		case msg.OfSystem != nil:
			role = "system"
			if !param.IsOmitted(msg.OfSystem.Content.OfString) {
				content = msg.OfSystem.Content.OfString.Value
			}
		case msg.OfUser != nil:
			role = "user"
			if !param.IsOmitted(msg.OfUser.Content.OfString) {
				content = msg.OfUser.Content.OfString.Value
			}
		case msg.OfAssistant != nil:
			role = "assistant"
			if !param.IsOmitted(msg.OfAssistant.Content.OfString) {
				content = msg.OfAssistant.Content.OfString.Value
			}
			if len(msg.OfAssistant.ToolCalls) > 0 {
				content += "\nTool Calls:"
				for _, toolCall := range msg.OfAssistant.ToolCalls {
					content += fmt.Sprintf("\n- Function: %s", toolCall.Function.Name)
					content += fmt.Sprintf("\n  Arguments: %s", toolCall.Function.Arguments)
				}
			}
		case msg.OfTool != nil:
			role = "tool"
			if !param.IsOmitted(msg.OfTool.Content.OfString) {
				content = msg.OfTool.Content.OfString.Value
			}
		}

		fmt.Fprintf(&b, "Role: %s\nContent: %s\n\n", role, content)
	}
	return b.String()
}
