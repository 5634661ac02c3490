package llmagent

import (
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageListToolCallsAndResults(t *testing.T) {
	messages := NewMessageList()
	messages.AddSystem("be helpful")
	messages.AddUser("what is fib(3)?")
	messages.AddToolCalls("", []openai.ChatCompletionMessageToolCall{
		toolCall("call_a", "fibonacci", `{"n":3}`),
	})
	messages.AddToolResult("call_a", "[0,1,1]")

	require.Equal(t, 4, messages.Len())

	assistant := messages.All()[2].OfAssistant
	require.NotNil(t, assistant)
	assert.False(t, assistant.Content.OfString.Valid(), "no text alongside pure tool calls")
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "call_a", assistant.ToolCalls[0].ID)

	tool := messages.All()[3].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "call_a", tool.ToolCallID)
	assert.Equal(t, "[0,1,1]", tool.Content.OfString.Value)
}

func TestMessageListCloneIsIndependent(t *testing.T) {
	messages := NewMessageList()
	messages.AddUser("one")

	clone := messages.Clone()
	clone.AddUser("two")

	assert.Equal(t, 1, messages.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestMessageListTranscript(t *testing.T) {
	messages := NewMessageList()
	messages.AddSystem("sys")
	messages.AddUser("hello")
	messages.AddToolCalls("thinking", []openai.ChatCompletionMessageToolCall{
		toolCall("call_1", "text_statistics", `{"text":"Hi there. Go!"}`),
	})
	messages.AddToolResult("call_1", `{"word_count":3}`)

	transcript := messages.Transcript()
	assert.Contains(t, transcript, "Role: system\nContent: sys\n")
	assert.Contains(t, transcript, "Role: user\nContent: hello\n")
	assert.Contains(t, transcript, "Role: assistant\nContent: thinking\nTool Calls:\n- Function: text_statistics\n  Arguments: {\"text\":\"Hi there. Go!\"}")
	assert.Contains(t, transcript, "Role: tool\nContent: {\"word_count\":3}")
}
