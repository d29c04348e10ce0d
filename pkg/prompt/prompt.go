// Package prompt handles the question/answer exchanges with the user.
// Prompts are written to stderr so stdout carries only program output.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ErrInputExhausted is returned when a read is attempted past the end of
// the input stream.
var ErrInputExhausted = errors.New("input exhausted")

// Prompter asks the user a question and returns the answer line.
type Prompter interface {
	Ask(message string) (string, error)
}

// New returns a survey-backed prompter when the process is attached to a
// terminal, and a plain line reader otherwise (piped input).
func New() Prompter {
	if canPrompt() {
		return &SurveyPrompter{}
	}
	return NewReaderPrompter(os.Stdin, os.Stderr)
}

// canPrompt checks that both stdin and stderr are terminals.
func canPrompt() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}

// SurveyPrompter asks questions interactively on the terminal.
type SurveyPrompter struct{}

func (p *SurveyPrompter) Ask(message string) (string, error) {
	var answer string
	err := survey.AskOne(
		&survey.Input{Message: message},
		&answer,
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr),
	)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputExhausted
		}
		return "", errors.Wrap(err, "asking prompt")
	}
	return answer, nil
}

// ReaderPrompter reads answers line by line from a stream, echoing the
// prompt text to out first.
type ReaderPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewReaderPrompter(in io.Reader, out io.Writer) *ReaderPrompter {
	return &ReaderPrompter{in: bufio.NewReader(in), out: out}
}

func (p *ReaderPrompter) Ask(message string) (string, error) {
	if _, err := io.WriteString(p.out, message+" "); err != nil {
		return "", errors.Wrap(err, "writing prompt")
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A final unterminated line still counts as an answer.
			if line != "" {
				return trimLine(line), nil
			}
			return "", ErrInputExhausted
		}
		return "", errors.Wrap(err, "reading answer")
	}
	return trimLine(line), nil
}

func trimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
