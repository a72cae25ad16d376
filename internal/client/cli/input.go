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

// Test seams. readPassword stands in for the terminal; getSimpleText and
// getPassword let tests script a whole form.
var (
	readPassword  = term.ReadPassword
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// GetSimpleText writes "label: " to w and reads one line from reader,
// trimmed of surrounding whitespace. A last line without a newline is still
// accepted; an empty EOF is returned as io.EOF.
func GetSimpleText(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		fmt.Fprintln(w)
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword is GetSimpleText without echo, reading from the process
// terminal. The caller owns the returned slice and should wipe it.
func GetPassword(label string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}
