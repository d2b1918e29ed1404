package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Speykious/csussus/internal/source"
)

// Cursor представляет собой позицию в файле: байтовое смещение плюс
// текущая строка и смещение её начала. Всё — смещения в неизменяемом
// буфере, никаких указателей (см. замечание о перемещаемой памяти).
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
	// Line — номер текущей строки, 1-based.
	Line uint32
	// LineStart — смещение первого байта текущей строки.
	LineStart uint32
}

// NewCursor creates a new cursor at the start of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:      f,
		Off:       0,
		Limit:     limit,
		Line:      1,
		LineStart: 0,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Col возвращает 0-based байтовую колонку текущей позиции.
func (c *Cursor) Col() uint32 {
	return c.Off - c.LineStart
}

// StartsWith reports whether the remaining input begins with the two bytes.
func (c *Cursor) StartsWith(a, b byte) bool {
	b0, b1, ok := c.Peek2()
	return ok && b0 == a && b1 == b
}
