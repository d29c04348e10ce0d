// Package session implements the interactive greeting-and-square exchange:
// read a name, print a greeting, read a number, print its square.
package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"squire/pkg/log"
	"squire/pkg/prompt"

	"github.com/pkg/errors"
)

// Prompt texts shown to the user.
const (
	NamePrompt   = "Please enter your name:"
	NumberPrompt = "Enter a number to square:"
)

// Greet formats the greeting for name. Any string is accepted and
// interpolated verbatim, including the empty string.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to the improved code.", name)
}

// Square returns n * n with int64 wrapping semantics.
func Square(n int64) int64 {
	return n * n
}

// ParseError reports input that could not be read as a base-10 integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a base-10 integer", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseNumber parses s as a base-10 signed 64-bit integer. Surrounding
// whitespace is tolerated.
func ParseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return n, nil
}

// Session runs the two question/answer exchanges exactly once. Errors
// from either read or the number parse abort the run; nothing is retried.
type Session struct {
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   log.Logger
}

func New(prompter prompt.Prompter, out io.Writer, logger log.Logger) *Session {
	return &Session{Prompter: prompter, Out: out, Logger: logger}
}

func (s *Session) Run() error {
	name, err := s.Prompter.Ask(NamePrompt)
	if err != nil {
		return errors.Wrap(err, "reading name")
	}
	s.Logger.Debug("read name", "name", name)
	fmt.Fprintln(s.Out, Greet(name))

	raw, err := s.Prompter.Ask(NumberPrompt)
	if err != nil {
		return errors.Wrap(err, "reading number")
	}
	number, err := ParseNumber(raw)
	if err != nil {
		return err
	}
	s.Logger.Debug("read number", "number", number)
	fmt.Fprintf(s.Out, "The square of %d is %d\n", number, Square(number))

	return nil
}
