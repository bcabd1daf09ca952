package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestAskWritesPromptAndStripsNewline(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("hello world\r\nnext\n"), &out)
	got, err := p.Ask("> ")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}
	if out.String() != "> " {
		t.Fatalf("prompt not written: %q", out.String())
	}
	got, err = p.Ask("")
	if err != nil || got != "next" {
		t.Fatalf("expected second line, got %q, %v", got, err)
	}
}

func TestAskLastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("tail"), io.Discard)
	got, err := p.Ask("")
	if err != nil || got != "tail" {
		t.Fatalf("expected tail, got %q, %v", got, err)
	}
	if _, err := p.Ask(""); err != io.EOF {
		t.Fatalf("expected io.EOF after last line, got %v", err)
	}
}

func TestAskEmptyInput(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)
	if _, err := p.Ask("?"); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestPrintfFlushes(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)
	if err := p.Printf("%d-%s", 7, "x"); err != nil {
		t.Fatalf("printf failed: %v", err)
	}
	if err := p.Println("done"); err != nil {
		t.Fatalf("println failed: %v", err)
	}
	if out.String() != "7-xdone\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
