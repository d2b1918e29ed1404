package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/source"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.csus", []byte("fn main() do\n    \"oops\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "Unfinished string",
		Primary:  source.Span{File: id, Start: 17, End: 22},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	out := buf.String()

	if !strings.Contains(out, "bad.csus:2:5: ERROR CS1002: Unfinished string") {
		t.Errorf("missing header in:\n%s", out)
	}
	// Строка исходника и каретка под открывающей кавычкой.
	if !strings.Contains(out, "    \"oops") {
		t.Errorf("missing source line in:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~") {
		t.Errorf("missing underline in:\n%s", out)
	}
	// Context: 1 захватывает предыдущую строку.
	if !strings.Contains(out, "fn main() do") {
		t.Errorf("missing context line in:\n%s", out)
	}
}

func TestPrettyWithNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.csus", []byte("a b\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexInfo,
		Message:  "something odd",
		Primary:  source.Span{File: id, Start: 0, End: 1},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 2, End: 3}, Msg: "related here"},
		},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "WARNING CS1000: something odd") {
		t.Errorf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "note: n.csus:1:3: related here") {
		t.Errorf("missing note in:\n%s", out)
	}
}
