package config

import (
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// TerminalPrompter prompts on the terminal, using readline.
type TerminalPrompter struct{}

// Interactive reports whether stdin is a terminal. If it is not, there is
// nobody to answer a prompt.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Prompt shows `question` and reads one line.
func (TerminalPrompter) Prompt(question string) (string, error) {
	repl, err := readline.New(question + " > ")
	if err != nil {
		return "", err
	}
	defer repl.Close()
	line, err := repl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errors.New("interrupted")
	}
	if err == io.EOF {
		return "", errors.New("no input")
	}
	return line, err
}
