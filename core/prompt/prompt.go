// Package prompt reads single lines of interactive input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before a line is entered.
var ErrNoInput = errors.New("no input")

// Reader asks the user for a line of input.
type Reader interface {
	ReadLine(prompt string) (string, error)
}

// New returns a Reader on in. Terminals get line editing, anything else
// (pipes, files, tests) is read a line at a time.
func New(in io.Reader, out io.Writer) Reader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &terminalReader{in: f, out: out}
	}

	return &lineReader{in: bufio.NewReader(in), out: out}
}

type lineReader struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Reader = (*lineReader)(nil)

func (l *lineReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)

	line, err := l.in.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return "", ErrNoInput
	case err != nil && err != io.EOF:
		return "", err
	}

	return strings.TrimSpace(line), nil
}

type terminalReader struct {
	in  *os.File
	out io.Writer
}

var _ Reader = (*terminalReader)(nil)

func (t *terminalReader) ReadLine(prompt string) (string, error) {
	cfg := &readline.Config{
		Prompt: prompt,
		Stdin:  readline.NewCancelableStdin(t.in),
		Stdout: t.out,
	}
	if err := cfg.Init(); err != nil {
		return "", err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	switch {
	case err == io.EOF, err == readline.ErrInterrupt:
		return "", ErrNoInput
	case err != nil:
		return "", err
	}

	return strings.TrimSpace(line), nil
}
