package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const prompt = "taskdeck> "

// dispatcher executes one input line and reports whether the REPL should
// stop. App is the real implementation; tests provide a stub.
type dispatcher interface {
	dispatch(ctx context.Context, line string) (quit bool)
}

// runREPL reads lines from reader, printing the prompt to w before each one,
// and hands them to d. It returns nil when input ends or d asks to quit, and
// ctx.Err() when ctx is done.
func runREPL(ctx context.Context, d dispatcher, reader *bufio.Reader, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(w, prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if strings.TrimSpace(line) != "" && d.dispatch(ctx, line) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(w)
			return nil
		}
	}
}
