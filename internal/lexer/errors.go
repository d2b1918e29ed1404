package lexer

import (
	"fmt"

	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/source"
)

// Error — фатальная лексическая ошибка. Первая же ошибка останавливает
// токенизацию целиком; частичного потока токенов не бывает.
type Error struct {
	Code diag.Code
	Path string
	// Pos — позиция начала ошибки, строка и колонка 1-based.
	Pos  source.LineCol
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Msg)
}

// fatal строит ошибку и дублирует её в Reporter, если тот задан.
// col — 0-based колонка токена; в диагностике она становится 1-based.
func (lx *Lexer) fatal(code diag.Code, line, col uint32, span source.Span, msg string) *Error {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, span, msg)
	}
	return &Error{
		Code: code,
		Path: lx.file.Path,
		Pos:  source.LineCol{Line: line, Col: col + 1},
		Span: span,
		Msg:  msg,
	}
}
