package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestListSourceFiles(t *testing.T) {
	dir := t.TempDir()
	b := writeSource(t, dir, "b.csus", "fn b() do 0\n")
	a := writeSource(t, dir, "a.csus", "fn a() do 0\n")
	nested := writeSource(t, dir, filepath.Join("sub", "c.csus"), "fn c() do 0\n")
	writeSource(t, dir, "notes.txt", "not a source file\n")

	files, err := ListSourceFiles(dir)
	if err != nil {
		t.Fatalf("ListSourceFiles: %v", err)
	}
	want := []string{a, b, nested}
	sort.Strings(want)
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "ok.csus", "fn main() do 1 + 2\n")
	writeSource(t, dir, "bad.csus", "let s = \"unterminated\n")

	fs, results, err := TokenizeDir(context.Background(), dir, TokenizeDirOptions{
		MaxDiagnostics: 8,
		Jobs:           2,
	})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if fs == nil {
		t.Fatalf("expected fileset")
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Результаты идут в отсортированном порядке путей: bad.csus, ok.csus.
	bad, ok := results[0], results[1]
	if filepath.Base(bad.Path) != "bad.csus" || filepath.Base(ok.Path) != "ok.csus" {
		t.Fatalf("unexpected order: %q, %q", bad.Path, ok.Path)
	}

	if ok.Err != nil {
		t.Fatalf("ok.csus lex error: %v", ok.Err)
	}
	if ok.Stream == nil || ok.Stream.Len() == 0 {
		t.Fatalf("ok.csus: expected tokens")
	}
	if ok.Stream.KindAt(0) != token.Fn {
		t.Errorf("ok.csus first kind = %v, want Fn", ok.Stream.KindAt(0))
	}

	if bad.Err == nil {
		t.Fatalf("bad.csus: expected lex error")
	}
	if bad.Err.Code != diag.LexUnterminatedString {
		t.Errorf("bad.csus code = %v, want LexUnterminatedString", bad.Err.Code)
	}
	if !bad.Bag.HasErrors() {
		t.Errorf("bad.csus: expected mirrored diagnostic")
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := TokenizeDir(context.Background(), t.TempDir(), TokenizeDirOptions{MaxDiagnostics: 8})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if fs == nil {
		t.Fatalf("expected fileset even for empty dir")
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}

func TestTokenizeDirProgressEvents(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.csus", "fn main() do 0\n")

	ch := make(chan Event, 16)
	_, _, err := TokenizeDir(context.Background(), dir, TokenizeDirOptions{
		MaxDiagnostics: 8,
		Jobs:           1,
		Sink:           ChannelSink{Ch: ch},
	})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	close(ch)

	var statuses []Status
	for ev := range ch {
		if ev.Stage != StageLex {
			t.Errorf("stage = %q, want %q", ev.Stage, StageLex)
		}
		statuses = append(statuses, ev.Status)
	}
	want := []Status{StatusQueued, StatusWorking, StatusDone}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, statuses[i], want[i])
		}
	}
}

func TestTokenizeDirCancellation(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csus", "b.csus", "c.csus"} {
		writeSource(t, dir, name, "fn f() do 0\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := TokenizeDir(ctx, dir, TokenizeDirOptions{MaxDiagnostics: 8, Jobs: 1})
	if err == nil {
		t.Fatalf("expected context error")
	}
}
