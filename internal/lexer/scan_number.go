package lexer

import (
	"github.com/Speykious/csussus/internal/token"
)

// scanNumber сканирует числовой литерал: 0x/0o/0b с '_' между цифрами,
// либо десятичный с опциональными дробной частью и экспонентой. Целые и
// дробные не различаются — всё Num, разбирает потребитель. Валидации
// расстановки '_' и диапазона здесь нет.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Off
	line := lx.cursor.Line
	col := lx.cursor.Col()

	switch {
	case lx.cursor.StartsWith('0', 'x'):
		lx.cursor.Off += 2
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}

	case lx.cursor.StartsWith('0', 'o'):
		lx.cursor.Off += 2
		for isOctal(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}

	case lx.cursor.StartsWith('0', 'b'):
		lx.cursor.Off += 2
		for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}

	default:
		// целая часть
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}

		// дробная часть
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}

		// экспонента
		if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	lx.toks.Push(token.Num, token.Span{
		Start: start, End: lx.cursor.Off, Line: line, Col: col,
	})
}
