package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetConfirm asks a yes/no question; only "y"/"yes" (case-insensitive)
// count as yes.
func GetConfirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// GetSelection prints numbered options and reads the chosen index (1-based
// on the wire, 0-based returned). preselect, if non-empty and present among
// the options, is accepted on an empty input line.
func GetSelection(reader *bufio.Reader, prompt string, options []string, preselect string, w io.Writer) (int, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		marker := " "
		if opt == preselect {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d) %s\n", marker, i+1, opt)
	}

	line, err := GetSimpleText(reader, "Choose a number", w)
	if err != nil {
		return 0, err
	}
	if line == "" && preselect != "" {
		for i, opt := range options {
			if opt == preselect {
				return i, nil
			}
		}
	}

	var idx int
	if _, err := fmt.Sscanf(line, "%d", &idx); err != nil || idx < 1 || idx > len(options) {
		return 0, fmt.Errorf("invalid selection %q", line)
	}
	return idx - 1, nil
}
