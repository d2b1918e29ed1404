package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка — на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                 Code = 1000
	LexUnknownToken         Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedInterp   Code = 1003
	LexUnterminatedChar     Code = 1004
	LexUnclosedParenthesis  Code = 1005
	LexUnclosedBracket      Code = 1006
	LexUnclosedBrace        Code = 1007

	// I/O
	IOInfo          Code = 9000
	IOLoadFileError Code = 9001
)

// ID возвращает строковый идентификатор кода вида "CS1002".
func (c Code) ID() string {
	return fmt.Sprintf("CS%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
