package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее). Для каждой печатает
// <path>:<line>:<col>: <SEV> <CODE>: <message>, затем строку исходника с
// подчёркиванием ^~~~ по Span и Context строк вокруг.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := sevPrinter(d.Severity)
	header := fmt.Sprintf("%s:%d:%d:", file.Path, start.Line, start.Col)
	if opts.Color {
		fmt.Fprintf(w, "%s %s %s: %s\n",
			posColor.Sprint(header), sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message)
	} else {
		fmt.Fprintf(w, "%s %s %s: %s\n", header, d.Severity.String(), d.Code.ID(), d.Message)
	}

	printContext(w, file, start, end, opts)

	for _, n := range d.Notes {
		nStart, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, nStart.Line, nStart.Col, n.Msg)
	}
}

func printContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := int(start.Line) - opts.Context
	if first < 1 {
		first = 1
	}

	for ln := uint32(first); ln <= start.Line; ln++ {
		text := file.GetLine(ln)
		fmt.Fprintf(w, "  %4d | %s\n", ln, text)
	}

	// подчёркивание только на строке начала
	text := file.GetLine(start.Line)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	if int(start.Col)-1 > len(text) {
		return
	}
	marker := strings.Repeat(" ", int(start.Col)-1) + "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "       | %s\n", marker)
}

func sevPrinter(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
