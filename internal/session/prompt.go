package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// errInterrupted reports an interrupt signal received while waiting.
var errInterrupted = errors.New("session: interrupted")

// scanLines feeds the lines of in to the returned channel until EOF or
// until done is closed.
func scanLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// prompter asks questions on out and reads answers from lines. Interrupts
// arriving while it waits trigger an exit confirmation.
type prompter struct {
	out        io.Writer
	lines      <-chan string
	interrupts <-chan os.Signal
}

// readLine prints prompt and waits for one trimmed line.
func (p *prompter) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	case <-p.interrupts:
		fmt.Fprintln(p.out)
		return "", errInterrupted
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ask is readLine with interrupt handling: after a declined exit the same
// prompt is shown again.
func (p *prompter) ask(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := p.readLine(ctx, prompt)
		if !errors.Is(err, errInterrupted) {
			return line, err
		}
		if err := p.confirmExit(ctx); err != nil {
			return "", err
		}
	}
}

// askYesNo repeats prompt until the answer is y, yes, n or no.
func (p *prompter) askYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		answer, err := p.ask(ctx, prompt)
		if err != nil {
			return false, err
		}
		if yes, ok := parseYesNo(answer); ok {
			return yes, nil
		}
		fmt.Fprintln(p.out, "Please answer with 'y' or 'n'.")
	}
}

// confirmExit asks whether to leave. It returns ErrExit on yes or on a
// second interrupt, and nil when the user wants to carry on.
func (p *prompter) confirmExit(ctx context.Context) error {
	for {
		answer, err := p.readLine(ctx, "Are you sure you want to exit? (y/n): ")
		if errors.Is(err, errInterrupted) {
			fmt.Fprintln(p.out, "Exiting program. Goodbye!")
			return ErrExit
		}
		if err != nil {
			return err
		}
		yes, ok := parseYesNo(answer)
		switch {
		case ok && yes:
			fmt.Fprintln(p.out, "Exiting program. Goodbye!")
			return ErrExit
		case ok:
			fmt.Fprintln(p.out, "Resuming program...")
			fmt.Fprintln(p.out)
			return nil
		}
		fmt.Fprintln(p.out, "Please answer with 'y' or 'n'.")
	}
}

func parseYesNo(s string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
