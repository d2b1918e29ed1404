package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Speykious/csussus/internal/lexer"
	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/token"
)

func lexForTest(t *testing.T, src string) *token.Stream {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fmt.csus", []byte(src)))
	stream, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return stream
}

func TestFormatTokensPretty(t *testing.T) {
	stream := lexForTest(t, "fn main()\n    do 42\n")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, stream); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != stream.Len() {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), stream.Len(), buf.String())
	}

	// Первая строка: `1:0   Fn      fn` (ширины зависят от потока).
	first := lines[0]
	if !strings.HasPrefix(first, "1:0") {
		t.Errorf("first line = %q, want prefix 1:0", first)
	}
	if !strings.Contains(first, "Fn") || !strings.HasSuffix(first, "fn") {
		t.Errorf("first line = %q", first)
	}

	// Kind-колонка выровнена: текст каждого токена начинается в одной позиции.
	idx := strings.Index(lines[0], "Fn")
	for _, ln := range lines[1:] {
		rest := ln[idx:]
		if strings.HasPrefix(rest, " ") {
			t.Errorf("kind column misaligned in %q", ln)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	stream := lexForTest(t, "x + 1")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, stream); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}

	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	want := []TokenOutput{
		{Kind: "Ident", Text: "x", Line: 1, Col: 0, Start: 0, End: 1},
		{Kind: "Plus", Text: "+", Line: 1, Col: 2, Start: 2, End: 3},
		{Kind: "Num", Text: "1", Line: 1, Col: 4, Start: 4, End: 5},
	}
	if len(out) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, out[i], want[i])
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		n    uint32
		want int
	}{
		{0, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3}, {12345, 5},
	}
	for _, tt := range tests {
		if got := digits(tt.n); got != tt.want {
			t.Errorf("digits(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
