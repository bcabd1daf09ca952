package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter writes a prompt and reads a single line of reply.
type Prompter struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// New wraps in and out. Output is buffered and flushed after every write so
// prompts appear before the program blocks on input.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: bufio.NewWriter(out)}
}

// Ask writes prompt and returns the next input line without its line ending.
// A final line without a newline is returned as is; io.EOF is returned only
// when no data was left.
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := p.out.WriteString(prompt); err != nil {
		return "", err
	}
	if err := p.out.Flush(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Println writes a line and flushes.
func (p *Prompter) Println(a ...any) error {
	fmt.Fprintln(p.out, a...)
	return p.out.Flush()
}

// Printf writes formatted output and flushes.
func (p *Prompter) Printf(format string, a ...any) error {
	fmt.Fprintf(p.out, format, a...)
	return p.out.Flush()
}
