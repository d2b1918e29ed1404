package lexer

import (
	"github.com/Speykious/csussus/internal/diag"
)

// Options configures a tokenization pass.
type Options struct {
	// Reporter, если задан, получает копию фатальной ошибки как диагностику.
	// Сам движок всё равно возвращает её значением.
	Reporter diag.Reporter
	// TokenHint — мягкая оценка числа токенов для предвыделения хранилища.
	// 0 — оценить по размеру файла.
	TokenHint int
}
