package lexer

import (
	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/token"
)

// stringPrefixLen возвращает длину строкового префикса на текущей позиции:
// 2 для b"/c", 1 для ", 0 если это не строка. Байтовые и C-строки лексятся
// одинаково и различаются только префиксом.
func (lx *Lexer) stringPrefixLen() uint32 {
	if lx.cursor.StartsWith('b', '"') || lx.cursor.StartsWith('c', '"') {
		return 2
	}
	if lx.cursor.Peek() == '"' {
		return 1
	}
	return 0
}

// charPrefixLen — то же для символьных литералов: 2 для b', 1 для '.
func (lx *Lexer) charPrefixLen() uint32 {
	if lx.cursor.StartsWith('b', '\'') {
		return 2
	}
	if lx.cursor.Peek() == '\'' {
		return 1
	}
	return 0
}

// scanString сканирует обычный строковый литерал. Срез токена — префикс,
// тело и закрывающая кавычка целиком. Переводы строки внутри литерала
// допустимы и учитываются в line_breaks.
func (lx *Lexer) scanString(prefix uint32) *Error {
	startOff := lx.cursor.Off
	startLine := lx.cursor.Line
	startCol := lx.cursor.Col()
	lx.cursor.Off += prefix

	for !lx.cursor.EOF() {
		if lx.cursor.StartsWith('\\', '"') {
			lx.cursor.Off += 2
			continue
		}
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			lx.toks.Push(token.String, token.Span{
				Start: startOff, End: lx.cursor.Off, Line: startLine, Col: startCol,
			})
			return nil
		case '\n':
			lx.bumpLine()
		default:
			lx.cursor.Bump()
		}
	}

	sp := source.Span{File: lx.file.ID, Start: startOff, End: lx.cursor.Off}
	return lx.fatal(diag.LexUnterminatedString, startLine, startCol, sp, "Unfinished string")
}

// scanChar сканирует символьный литерал. Многострочные литералы здесь не
// запрещаются — это решение языка, а не сканера.
func (lx *Lexer) scanChar(prefix uint32) *Error {
	startOff := lx.cursor.Off
	startLine := lx.cursor.Line
	startCol := lx.cursor.Col()
	lx.cursor.Off += prefix

	for !lx.cursor.EOF() {
		if lx.cursor.StartsWith('\\', '\'') {
			lx.cursor.Off += 2
			continue
		}
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			lx.toks.Push(token.Char, token.Span{
				Start: startOff, End: lx.cursor.Off, Line: startLine, Col: startCol,
			})
			return nil
		case '\n':
			lx.bumpLine()
		default:
			lx.cursor.Bump()
		}
	}

	sp := source.Span{File: lx.file.ID, Start: startOff, End: lx.cursor.Off}
	return lx.fatal(diag.LexUnterminatedChar, startLine, startCol, sp, "Unfinished char")
}

// scanInterpString сканирует `$"..."`. Каждый сегмент строки становится
// отдельным токеном: String, если интерполяции не было вовсе, иначе
// StringInterpBeg/Mid/End. Срезы сегментов включают ограничители: первый —
// `$"` и `{`, средние — `}` и `{`, последний — `}` и `"`. Содержимое `{...}`
// токенизируется рекурсией как обычный код.
func (lx *Lexer) scanInterpString() *Error {
	openLine := lx.cursor.Line
	openCol := lx.cursor.Col()

	segStart := lx.cursor.Off
	segLine := lx.cursor.Line
	segCol := lx.cursor.Col()
	lx.cursor.Off += 2 // $"

	hasInterp := false
	for !lx.cursor.EOF() {
		// экранированные кавычка и скобка ничего не открывают и не закрывают
		if lx.cursor.StartsWith('\\', '"') || lx.cursor.StartsWith('\\', '{') {
			lx.cursor.Off += 2
			continue
		}

		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			kind := token.String
			if hasInterp {
				kind = token.StringInterpEnd
			}
			lx.toks.Push(kind, token.Span{
				Start: segStart, End: lx.cursor.Off, Line: segLine, Col: segCol,
			})
			return nil

		case '{':
			lx.cursor.Bump()
			kind := token.StringInterpBeg
			if hasInterp {
				kind = token.StringInterpMid
			}
			lx.toks.Push(kind, token.Span{
				Start: segStart, End: lx.cursor.Off, Line: segLine, Col: segCol,
			})
			hasInterp = true

			// внутренность интерполяции — обычные токены, рекурсивно
			for !lx.cursor.EOF() && lx.cursor.Peek() != '}' {
				if err := lx.consumeToken(); err != nil {
					return err
				}
			}
			if lx.cursor.EOF() {
				sp := source.Span{File: lx.file.ID, Start: segStart, End: lx.cursor.Off}
				return lx.fatal(diag.LexUnterminatedInterp, openLine, openCol, sp,
					"Unfinished interpolated string")
			}

			// новый сегмент начинается с '}'
			segStart = lx.cursor.Off
			segLine = lx.cursor.Line
			segCol = lx.cursor.Col()
			lx.cursor.Bump()

		case '\n':
			lx.bumpLine()

		default:
			lx.cursor.Bump()
		}
	}

	sp := source.Span{File: lx.file.ID, Start: segStart, End: lx.cursor.Off}
	return lx.fatal(diag.LexUnterminatedInterp, openLine, openCol, sp,
		"Unfinished interpolated string")
}
