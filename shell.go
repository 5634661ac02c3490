package llmagent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// Processor answers one line of user input.
type Processor interface {
	ProcessUserInput(ctx context.Context, userInput string) (string, error)
}

var _ Processor = (*Executor)(nil)

// Shell is the interactive read/respond loop. It is the only place where a
// failed turn is caught; the error is shown and the next line is read.
type Shell struct {
	proc   Processor
	in     io.Reader
	out    io.Writer
	logger *slog.Logger

	userLabel      *color.Color
	assistantLabel *color.Color
	errorLabel     *color.Color
}

func NewShell(proc Processor, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{
		proc:           proc,
		in:             in,
		out:            out,
		logger:         logger,
		userLabel:      color.New(color.FgCyan, color.Bold),
		assistantLabel: color.New(color.FgGreen, color.Bold),
		errorLabel:     color.New(color.FgRed),
	}
}

// Run reads lines until "quit", end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "👋 Hi! I'm your AI assistant. I can help you with calculations, visualizations, text analysis, and more.")
	fmt.Fprintln(s.out, "What would you like to explore today? (Type 'quit' to exit)")

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.userLabel.Fprint(s.out, "\nYou: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(s.out)
			return nil
		}

		userInput := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(userInput, "quit") {
			fmt.Fprintln(s.out, "\nGoodbye! Have a great day! 👋")
			return nil
		}
		if userInput == "" {
			continue
		}

		response, err := s.proc.ProcessUserInput(ctx, userInput)
		if err != nil {
			s.logger.Error("Turn failed", "error", err)
			s.errorLabel.Fprintf(s.out, "\nOops! Something went wrong: %v\n", err)
			fmt.Fprintln(s.out, "Let's try something else!")
			continue
		}

		fmt.Fprint(s.out, "\n")
		s.assistantLabel.Fprint(s.out, "Assistant:")
		fmt.Fprintf(s.out, " %s\n", response)
	}
}
