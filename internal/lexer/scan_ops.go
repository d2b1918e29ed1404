package lexer

import (
	"github.com/Speykious/csussus/internal/token"
)

// Жадность: двухбайтовая таблица всегда проверяется раньше однобайтовой,
// поэтому `--` никогда не распадается на два Minus, а `->` — на Minus и
// GreaterThan. Операторов длиной 3+ в языке нет.
var op2Table = [...]struct {
	a, b byte
	kind token.Kind
}{
	{'=', '=', token.Equals},
	{'!', '=', token.NotEquals},
	{'<', '=', token.LessEqual},
	{'>', '=', token.GreaterEqual},
	{'>', '-', token.Feather},
	{'-', '>', token.Arrow},
	{'<', '<', token.LShift},
	{'>', '>', token.RShift},
	{'+', '+', token.Incr},
	{'-', '-', token.Decr},
	{'*', '*', token.Pow},
}

var op1Table = [...]struct {
	b    byte
	kind token.Kind
}{
	{'%', token.Modulo},
	{'<', token.LessThan},
	{'>', token.GreaterThan},
	{'&', token.Ampersand},
	{'|', token.Pipe},
	{'^', token.Caret},
	{'~', token.Tilde},
	{'+', token.Plus},
	{'-', token.Minus},
	{'*', token.Mul},
	{'/', token.Div},
	{'=', token.Equal},
	{';', token.Semi},
	{':', token.Colon},
	{',', token.Comma},
	{'.', token.Dot},
	{'(', token.LParens},
	{')', token.RParens},
	{'[', token.LBracket},
	{']', token.RBracket},
	{'{', token.LBrace},
	{'}', token.RBrace},
}

// scanOperatorOrPunct пробует снять оператор/пунктуацию с текущей позиции.
// Возвращает false, не сдвигая курсор, если совпадения нет.
func (lx *Lexer) scanOperatorOrPunct() bool {
	start := lx.cursor.Off
	line := lx.cursor.Line
	col := lx.cursor.Col()

	if b0, b1, ok := lx.cursor.Peek2(); ok {
		for i := range op2Table {
			if op2Table[i].a == b0 && op2Table[i].b == b1 {
				lx.cursor.Off += 2
				lx.toks.Push(op2Table[i].kind, token.Span{
					Start: start, End: lx.cursor.Off, Line: line, Col: col,
				})
				return true
			}
		}
	}

	b := lx.cursor.Peek()
	for i := range op1Table {
		if op1Table[i].b == b {
			lx.cursor.Bump()
			lx.toks.Push(op1Table[i].kind, token.Span{
				Start: start, End: lx.cursor.Off, Line: line, Col: col,
			})
			return true
		}
	}

	return false
}
