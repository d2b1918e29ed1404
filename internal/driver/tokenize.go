// Package driver wires the front end together: it loads sources into a
// FileSet, runs the lexer, and hands back token streams plus diagnostics.
package driver

import (
	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/lexer"
	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  *token.Stream
	Bag     *diag.Bag
	// Err — первая фатальная ошибка лексера; при Err != nil Stream == nil.
	Err *lexer.Error
}

func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource токенизирует содержимое из памяти (stdin, тесты).
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)

	// Диагностики зеркалируются в bag, но фатальная ошибка всё равно
	// возвращается явно: лексер останавливается на первой же.
	bag := diag.NewBag(maxDiagnostics)
	opts := lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	}
	stream, lexErr := lexer.Tokenize(file, opts)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Stream:  stream,
		Bag:     bag,
		Err:     lexErr,
	}
}
