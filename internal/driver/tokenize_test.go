package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/token"
)

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("test.csus", []byte("fn main() do 1 + 2\n"), 8)
	if res.Err != nil {
		t.Fatalf("unexpected lex error: %v", res.Err)
	}
	if res.Stream == nil {
		t.Fatalf("expected stream")
	}

	want := []token.Kind{
		token.Fn, token.Ident, token.LParens, token.RParens,
		token.Do, token.Num, token.Plus, token.Num,
	}
	if res.Stream.Len() != len(want) {
		t.Fatalf("token count = %d, want %d", res.Stream.Len(), len(want))
	}
	for i, k := range want {
		if got := res.Stream.KindAt(i); got != k {
			t.Errorf("token %d: kind = %v, want %v", i, got, k)
		}
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %#v", res.Bag.Items())
	}
}

func TestTokenizeSourceError(t *testing.T) {
	res := TokenizeSource("bad.csus", []byte("let x = \"oops\n"), 8)
	if res.Err == nil {
		t.Fatalf("expected lex error")
	}
	if res.Stream != nil {
		t.Fatalf("expected nil stream on fatal error")
	}
	if res.Err.Code != diag.LexUnterminatedString {
		t.Errorf("code = %v, want LexUnterminatedString", res.Err.Code)
	}
	// Ошибка зеркалируется в bag той же кодой.
	if !res.Bag.HasErrors() {
		t.Fatalf("expected mirrored diagnostic in bag")
	}
	if got := res.Bag.Items()[0].Code; got != diag.LexUnterminatedString {
		t.Errorf("bag code = %v, want LexUnterminatedString", got)
	}
}

func TestTokenizeFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.csus")
	if err := os.WriteFile(path, []byte("pub fn main() do 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := Tokenize(path, 8)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.Err != nil {
		t.Fatalf("lex error: %v", res.Err)
	}
	if res.Stream.Len() == 0 {
		t.Fatalf("expected tokens")
	}
	if res.Stream.KindAt(0) != token.Pub {
		t.Errorf("first kind = %v, want Pub", res.Stream.KindAt(0))
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "absent.csus"), 8); err == nil {
		t.Fatalf("expected I/O error")
	}
}
