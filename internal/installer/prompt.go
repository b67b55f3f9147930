package installer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a confirmation answer that is neither yes nor no.
type InvalidInputError struct {
	Input string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input `%s`, expected y or n", e.Input)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Answer is a parsed confirmation response.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
)

// ParseAnswer normalizes input (trimmed, lowercased) into an Answer.
// "y" confirms, "n" and "" decline, anything else is an InvalidInputError.
func ParseAnswer(input string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y":
		return AnswerYes, nil
	case "n", "":
		return AnswerNo, nil
	}
	return AnswerNo, &InvalidInputError{Input: strings.TrimSpace(input)}
}

// Prompter supplies one line of user input per conflict.
type Prompter interface {
	ReadLine() (string, error)
}

// LinePrompter reads answers line by line from an input stream such as os.Stdin.
type LinePrompter struct {
	r *bufio.Reader
}

// NewLinePrompter wraps r.
func NewLinePrompter(r io.Reader) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r)}
}

// ReadLine blocks until a full line is available. End of input counts as an
// empty answer.
func (p *LinePrompter) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
