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

// Prompter asks the user for input.
type Prompter interface {
	// ReadPassword reads a secret without echoing it when possible.
	ReadPassword(prompt string) (string, error)
	// ReadLine reads one line of plain input.
	ReadLine(prompt string) (string, error)
}

type readerPrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewReaderPrompter returns a [Prompter] that reads lines from r and writes
// prompts to out. Passwords are read as plain lines.
func NewReaderPrompter(r io.Reader, out io.Writer) Prompter {
	return &readerPrompter{r: bufio.NewReader(r), out: out}
}

func (p *readerPrompter) ReadPassword(prompt string) (string, error) {
	return p.ReadLine(prompt)
}

func (p *readerPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type terminalPrompter struct {
	*readerPrompter
	in *os.File
}

// NewTerminalPrompter returns a [Prompter] over in. When in is a terminal,
// passwords are read with echo disabled; otherwise every answer is one line
// of in.
func NewTerminalPrompter(in *os.File, out io.Writer) Prompter {
	return &terminalPrompter{
		readerPrompter: &readerPrompter{r: bufio.NewReader(in), out: out},
		in:             in,
	}
}

func (p *terminalPrompter) ReadPassword(prompt string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return p.readerPrompter.ReadPassword(prompt)
	}

	fmt.Fprint(p.out, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}
