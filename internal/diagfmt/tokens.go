package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Speykious/csussus/internal/token"
)

// TokenOutput описывает один токен в JSON-выводе.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty выводит токены по одному на строку в виде
// `<line>:<col>   <kind>   <slice>`, с выравниванием полей по ширине.
// Это отладочный формат, не машинно-стабильный.
func FormatTokensPretty(w io.Writer, toks *token.Stream) error {
	lineWidth, colWidth, kindWidth := 1, 1, 1
	for i := 0; i < toks.Len(); i++ {
		sp := toks.SpanAt(i)
		lineWidth = max(lineWidth, digits(sp.Line))
		colWidth = max(colWidth, digits(sp.Col))
		kindWidth = max(kindWidth, len(toks.KindAt(i).String()))
	}

	for i := 0; i < toks.Len(); i++ {
		sp := toks.SpanAt(i)
		_, err := fmt.Fprintf(w, "%*d:%-*d   %-*s   %s\n",
			lineWidth, sp.Line,
			colWidth, sp.Col,
			kindWidth, toks.KindAt(i).String(),
			toks.TextAt(i))
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, toks *token.Stream) error {
	output := make([]TokenOutput, 0, toks.Len())
	for i := 0; i < toks.Len(); i++ {
		sp := toks.SpanAt(i)
		output = append(output, TokenOutput{
			Kind:  toks.KindAt(i).String(),
			Text:  toks.TextAt(i),
			Line:  sp.Line,
			Col:   sp.Col,
			Start: sp.Start,
			End:   sp.End,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func digits(n uint32) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
