// Package headless runs the assistant as a plain read-eval-print loop over
// stdin/stdout, for pipes, scripts and terminals without TUI support.
package headless

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jeanpaul/attache/internal/assistant"
	"github.com/jeanpaul/attache/internal/command"
)

const prompt = ">>> "

// Run reads lines from in until EOF or the exit command, dispatching each
// through the assistant and printing the response to out. Errors are printed
// like any other response; the loop only stops on exit, EOF, or a cancelled
// context, and every way out flushes to disk first.
func Run(ctx context.Context, a *assistant.Assistant, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "attache — your contacts and notes. Type 'help' for commands, 'exit' to leave.")

	scanner := bufio.NewScanner(in)
	for {
		select {
		case <-ctx.Done():
			// Interrupted: flush like exit would.
			if err := a.Save(); err != nil {
				return fmt.Errorf("saving on interrupt: %w", err)
			}
			return ctx.Err()
		default:
		}

		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			// EOF: flush like exit would.
			fmt.Fprintln(out)
			return a.Save()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		resp := a.Execute(line)
		if resp.Inferred {
			fmt.Fprintf(out, "(interpreting as %q)\n", resp.Phrase)
		}
		fmt.Fprintln(out, resp.Message)

		if !resp.IsError && resp.Op == command.OpExit {
			return nil
		}
	}
}
