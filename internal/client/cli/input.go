package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"golang.org/x/term"
)

// Test seams for terminal access.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	terminalSize = term.GetSize
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetDefaultText is GetSimpleText with a value kept when the answer is empty.
func GetDefaultText(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	v, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// GetRequiredText re-prompts until a non-empty answer is given.
func GetRequiredText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	for {
		v, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(w, "a value is required")
	}
}

// GetDate reads a date such as 2025-03-01 or a full RFC 3339 timestamp. An
// empty answer keeps def; a zero def makes the answer required.
func GetDate(reader *bufio.Reader, prompt string, def models.Time, w io.Writer) (models.Time, error) {
	label := prompt + " (YYYY-MM-DD)"
	defText := ""
	if !def.IsZero() {
		defText = def.Format(dateLayout)
	}
	for {
		v, err := GetDefaultText(reader, label, defText, w)
		if err != nil {
			return models.Time{}, err
		}
		if v == "" {
			fmt.Fprintln(w, "a date is required")
			continue
		}
		if v == defText {
			return def, nil
		}
		t, err := models.ParseTime(v)
		if err != nil {
			fmt.Fprintf(w, "cannot read %q as a date\n", v)
			continue
		}
		return t, nil
	}
}

// Confirm asks a yes/no question; only "y" and "yes" count as yes.
func Confirm(reader *bufio.Reader, question string, w io.Writer) (bool, error) {
	v, err := GetSimpleText(reader, question+" [y/N]", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. When stdin is not a terminal the password is read
// as a plain line from reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := readLine(reader)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// outputWidth returns the terminal width of stdout, or fallback when stdout
// is not a terminal.
func outputWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !isTerminal(fd) {
		return fallback
	}
	w, _, err := terminalSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

const dateLayout = "2006-01-02"

func formatDate(t models.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
