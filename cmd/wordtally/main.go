package main

import (
	"fmt"
	"io"
	"os"

	"example.com/wordgrade/pkg/config"
	"example.com/wordgrade/pkg/console"
	"example.com/wordgrade/pkg/logs"
	"example.com/wordgrade/pkg/tally"
)

// wordtally reads one line of text and prints how often each word occurs,
// ignoring case, in the order the words first appear.
func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	log := logs.New(cfg)
	code := run(os.Stdin, os.Stdout, os.Stderr, log)
	log.Close()
	os.Exit(code)
}

func run(in io.Reader, out, errOut io.Writer, log *logs.Logger) int {
	p := console.New(in, out)
	line, err := p.Ask("Enter your string: ")
	if err != nil && err != io.EOF {
		log.Error("read", err)
		fmt.Fprintln(errOut, "read error:", err)
		return 1
	}
	t := tally.Count(line)
	log.Event("tally", map[string]any{"tokens": t.Total(), "words": t.Len(), "counts": t})
	if err := p.Println("Each word repeated:", t); err != nil {
		fmt.Fprintln(errOut, "write error:", err)
		return 1
	}
	return 0
}
