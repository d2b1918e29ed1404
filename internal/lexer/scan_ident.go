package lexer

import (
	"github.com/Speykious/csussus/internal/token"
)

// scanIdentOrKeyword жадно снимает идентификатор и проверяет его по
// таблицам ключевых слов (от самой длинной к самой короткой, совпадение
// только при точной длине). Срез токена — весь идентификатор в любом
// случае.
func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Off
	line := lx.cursor.Line
	col := lx.cursor.Col()

	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	lex := lx.file.Content[start:lx.cursor.Off]
	kind, ok := token.LookupKeyword(lex)
	if !ok {
		kind = token.Ident
	}

	lx.toks.Push(kind, token.Span{
		Start: start, End: lx.cursor.Off, Line: line, Col: col,
	})
}
