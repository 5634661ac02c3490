package llmagent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockProcessor answers through ProcessFn and records the inputs it saw.
type MockProcessor struct {
	ProcessFn func(ctx context.Context, userInput string) (string, error)
	Inputs    []string
}

func (m *MockProcessor) ProcessUserInput(ctx context.Context, userInput string) (string, error) {
	m.Inputs = append(m.Inputs, userInput)
	return m.ProcessFn(ctx, userInput)
}

func runShell(t *testing.T, proc Processor, input string) string {
	t.Helper()
	var out bytes.Buffer
	shell := NewShell(proc, strings.NewReader(input), &out, testLogger())
	require.NoError(t, shell.Run(context.Background()))
	return out.String()
}

func TestShellAnswersUntilQuit(t *testing.T) {
	proc := &MockProcessor{ProcessFn: func(_ context.Context, in string) (string, error) {
		return "you said " + in, nil
	}}

	out := runShell(t, proc, "hello\n\n   \nQUIT\nnever read\n")

	assert.Equal(t, []string{"hello"}, proc.Inputs, "blank lines are skipped and quit stops the loop")
	assert.Contains(t, out, "Type 'quit' to exit")
	assert.Contains(t, out, "Assistant:")
	assert.Contains(t, out, "you said hello")
	assert.Contains(t, out, "Goodbye!")
}

func TestShellRecoversFromTurnErrors(t *testing.T) {
	proc := &MockProcessor{ProcessFn: func(_ context.Context, in string) (string, error) {
		if in == "bad" {
			return "", errors.New("remote exploded")
		}
		return "fine", nil
	}}

	out := runShell(t, proc, "bad\ngood\nquit\n")

	assert.Equal(t, []string{"bad", "good"}, proc.Inputs)
	assert.Contains(t, out, "Oops! Something went wrong: remote exploded")
	assert.Contains(t, out, "Let's try something else!")
	assert.Contains(t, out, "fine")
}

func TestShellStopsAtEndOfInput(t *testing.T) {
	proc := &MockProcessor{ProcessFn: func(_ context.Context, in string) (string, error) {
		return strings.ToUpper(in), nil
	}}

	out := runShell(t, proc, "last line")

	assert.Equal(t, []string{"last line"}, proc.Inputs)
	assert.Contains(t, out, "LAST LINE")
	assert.NotContains(t, out, "Goodbye!")
}

func TestShellStopsWhenContextDone(t *testing.T) {
	proc := &MockProcessor{ProcessFn: func(_ context.Context, in string) (string, error) {
		return in, nil
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewShell(proc, strings.NewReader("hello\n"), &out, testLogger()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, proc.Inputs)
}

func TestShellSurvivesPanickingTool(t *testing.T) {
	registry, err := NewRegistry(
		NewTool("explode", "Panics on purpose.", struct{}{}, func(_ context.Context, _ struct{}) (any, error) {
			panic("boom")
		}),
	)
	require.NoError(t, err)

	proc := &MockProcessor{ProcessFn: func(ctx context.Context, in string) (string, error) {
		if in == "explode" {
			_, err := registry.Execute(ctx, "explode", nil)
			return "", err
		}
		return "still here", nil
	}}

	out := runShell(t, proc, "explode\nhello\nquit\n")

	assert.Equal(t, []string{"explode", "hello"}, proc.Inputs)
	assert.Contains(t, out, "Oops! Something went wrong: tool panicked: explode: boom")
	assert.Contains(t, out, "still here")
}
