// Package lexer implements the csussus scanning engine: a single recursive
// routine that consumes one unit of progress per call and re-enters itself
// for nested constructs (interpolated strings, bracket groups). All mutable
// state — the cursor's line bookkeeping and the output stream — is shared
// by reference down the recursion, so siblings and children observe one
// monotonically advancing position.
package lexer

import (
	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	toks   *token.Stream
}

// New создаёт лексер для файла. Поток токенов будет указывать в
// file.Content, поэтому буфер обязан жить дольше потока.
func New(file *source.File, opts Options) *Lexer {
	hint := opts.TokenHint
	if hint == 0 {
		hint = len(file.Content)/4 + 16
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		toks:   token.NewStream(file, hint),
	}
}

// Tokenize прогоняет весь файл. Либо полный поток токенов, либо первая
// фатальная ошибка — частичный результат наружу не отдаётся.
func Tokenize(file *source.File, opts Options) (*token.Stream, *Error) {
	lx := New(file, opts)
	for !lx.cursor.EOF() {
		if err := lx.consumeToken(); err != nil {
			return nil, err
		}
	}
	return lx.toks, nil
}

// consumeToken делает один шаг: пробелы/комментарий (без токена), ровно
// один токен, либо группа токенов для интерполированной строки. Для
// вложенных конструкций рекурсивно вызывает сам себя.
func (lx *Lexer) consumeToken() *Error {
	lx.skipBlank()
	if lx.cursor.EOF() {
		return nil
	}

	// комментарии
	if lx.cursor.StartsWith('/', '/') {
		lx.skipLineComment()
		return nil
	}

	// операторы и пунктуация, жадно: сперва двухбайтовые
	if lx.scanOperatorOrPunct() {
		return nil
	}

	// интерполированные строки
	if lx.cursor.StartsWith('$', '"') {
		return lx.scanInterpString()
	}

	// строки: ", b", c"
	if n := lx.stringPrefixLen(); n > 0 {
		return lx.scanString(n)
	}

	// символьные литералы: ', b'
	if n := lx.charPrefixLen(); n > 0 {
		return lx.scanChar(n)
	}

	b := lx.cursor.Peek()

	// идентификаторы и ключевые слова
	if isIdentStartByte(b) {
		lx.scanIdentOrKeyword()
		return nil
	}

	// числа
	if isDec(b) {
		lx.scanNumber()
		return nil
	}

	// Группы скобок. Сами скобки всегда съедает операторная таблица выше,
	// так что эти ветки — структурная страховка на случай, когда движок
	// входит в группу напрямую; при EOF внутри группы дают позиционную
	// ошибку "unclosed".
	switch b {
	case '(':
		return lx.scanGroup(')', diag.LexUnclosedParenthesis, "Unclosed parenthesis")
	case '[':
		return lx.scanGroup(']', diag.LexUnclosedBracket, "Unclosed bracket")
	case '{':
		return lx.scanGroup('}', diag.LexUnclosedBrace, "Unclosed brace")
	}

	sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 1}
	return lx.fatal(diag.LexUnknownToken, lx.cursor.Line, lx.cursor.Col(), sp, "Cannot parse token")
}

// skipBlank пропускает пробельные байты. Каждый '\n' — в любом месте
// пробельного прогона — записывается в line_breaks и сдвигает счётчик строк.
func (lx *Lexer) skipBlank() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\n':
			lx.bumpLine()
		case ' ', '\t', '\r', '\v', '\f':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

// bumpLine потребляет '\n' по текущей позиции и обновляет построчный учёт.
// Вызывается отовсюду, где встречается перевод строки: в пробелах, внутри
// строковых и символьных литералов, внутри интерполяции.
func (lx *Lexer) bumpLine() {
	lx.toks.PushLineBreak(lx.cursor.Off)
	lx.cursor.Bump()
	lx.cursor.Line++
	lx.cursor.LineStart = lx.cursor.Off
}

// skipLineComment съедает `//` и всё до конца строки. Сам '\n' остаётся
// на входе — его учтёт следующий шаг.
func (lx *Lexer) skipLineComment() {
	lx.cursor.Off += 2
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// scanGroup рекурсивно потребляет токены до закрывающего байта.
func (lx *Lexer) scanGroup(close byte, code diag.Code, msg string) *Error {
	startOff := lx.cursor.Off
	startLine := lx.cursor.Line
	startCol := lx.cursor.Col()

	for !lx.cursor.EOF() && lx.cursor.Peek() != close {
		if err := lx.consumeToken(); err != nil {
			return err
		}
	}
	if lx.cursor.EOF() {
		sp := source.Span{File: lx.file.ID, Start: startOff, End: startOff + 1}
		return lx.fatal(code, startLine, startCol, sp, msg)
	}
	return nil
}

// Stream возвращает накопленный поток токенов.
func (lx *Lexer) Stream() *token.Stream {
	return lx.toks
}
