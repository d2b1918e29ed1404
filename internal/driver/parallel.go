package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Speykious/csussus/internal/diag"
	"github.com/Speykious/csussus/internal/lexer"
	"github.com/Speykious/csussus/internal/project"
	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // Относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Stream *token.Stream // Поток токенов (nil при фатальной ошибке)
	Bag    *diag.Bag     // Диагностики
	Err    *lexer.Error  // Первая фатальная ошибка лексера
}

// TokenizeDirOptions настраивает параллельную токенизацию.
type TokenizeDirOptions struct {
	MaxDiagnostics int
	// Jobs — число горутин; 0 означает GOMAXPROCS.
	Jobs int
	// Sink получает события прогресса; nil — без прогресса.
	Sink ProgressSink
	// Cache — опциональный дисковый кеш потоков токенов.
	Cache *DiskCache
}

// ListSourceFiles возвращает отсортированный список всех *.csus файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, project.SourceExt) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.csus файлы в директории параллельно
func TokenizeDir(ctx context.Context, dir string, opts TokenizeDirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	// Собираем список файлов
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSet(), nil, nil
	}

	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLex, Status: StatusQueued})
	}

	// Создаём FileSet и предзагружаем все файлы
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	// Параллельная токенизация
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				started := time.Now()
				emit(opts.Sink, Event{File: path, Stage: StageLex, Status: StatusWorking})

				// Создаём bag для диагностик
				bag := diag.NewBag(opts.MaxDiagnostics)

				// Проверяем ошибку загрузки
				if loadErr, hadError := loadErrors[path]; hadError {
					results[i] = TokenizeDirResult{
						Path: path,
						Bag:  bag,
					}
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
						Primary:  source.Span{},
					})
					emit(opts.Sink, Event{
						File: path, Stage: StageLex, Status: StatusError,
						Err: loadErr, Elapsed: time.Since(started),
					})
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				// Сначала пробуем дисковый кеш по хешу содержимого.
				if stream, ok := cacheLookup(opts.Cache, file); ok {
					results[i] = TokenizeDirResult{
						Path:   path,
						FileID: fileID,
						Stream: stream,
						Bag:    bag,
					}
					emit(opts.Sink, Event{
						File: path, Stage: StageLex, Status: StatusDone,
						Elapsed: time.Since(started),
					})
					return nil
				}

				stream, lexErr := lexer.Tokenize(file, lexer.Options{
					Reporter: diag.BagReporter{Bag: bag},
				})

				// Сохраняем результат (мьютекс не нужен — индекс i уникален)
				results[i] = TokenizeDirResult{
					Path:   path,
					FileID: fileID,
					Stream: stream,
					Bag:    bag,
					Err:    lexErr,
				}

				status := StatusDone
				if lexErr != nil {
					status = StatusError
				} else {
					cacheStore(opts.Cache, file, stream)
				}
				evt := Event{File: path, Stage: StageLex, Status: status, Elapsed: time.Since(started)}
				if lexErr != nil {
					evt.Err = lexErr
				}
				emit(opts.Sink, evt)

				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}

func cacheLookup(cache *DiskCache, file *source.File) (*token.Stream, bool) {
	if cache == nil {
		return nil, false
	}
	var payload DiskPayload
	ok, err := cache.Get(file.Hash, &payload)
	if err != nil || !ok {
		// Ошибка чтения кеша не фатальна: просто токенизируем заново.
		return nil, false
	}
	stream, ok := payloadToStream(&payload, file)
	return stream, ok
}

func cacheStore(cache *DiskCache, file *source.File, stream *token.Stream) {
	if cache == nil || stream == nil {
		return
	}
	// Ошибка записи кеша не влияет на результат токенизации.
	_ = cache.Put(file.Hash, streamToPayload(file, stream))
}
