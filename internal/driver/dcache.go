package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит потоки токенов по хешу содержимого файла на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores a serialized token stream for fast re-tokenization.
// The four span columns are stored as parallel arrays, same shape as the
// in-memory stream.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path string

	Kinds  []uint8
	Starts []uint32
	Ends   []uint32
	Lines  []uint32
	Cols   []uint32

	LineBreaks []uint32
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [sha256.Size]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "toks".
	return filepath.Join(c.dir, "toks", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [sha256.Size]byte, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err = os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	err = enc.Encode(payload)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key [sha256.Size]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// streamToPayload converts a token stream into its disk representation.
func streamToPayload(file *source.File, stream *token.Stream) *DiskPayload {
	if stream == nil {
		return nil
	}

	n := stream.Len()
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
		Kinds:  make([]uint8, n),
		Starts: make([]uint32, n),
		Ends:   make([]uint32, n),
		Lines:  make([]uint32, n),
		Cols:   make([]uint32, n),
	}
	for i := 0; i < n; i++ {
		sp := stream.SpanAt(i)
		payload.Kinds[i] = uint8(stream.KindAt(i))
		payload.Starts[i] = sp.Start
		payload.Ends[i] = sp.End
		payload.Lines[i] = sp.Line
		payload.Cols[i] = sp.Col
	}

	payload.LineBreaks = make([]uint32, stream.LineBreakCount())
	for i := range payload.LineBreaks {
		payload.LineBreaks[i] = stream.LineBreakAt(i)
	}
	return payload
}

// payloadToStream rebuilds a token stream against the given file. Returns
// false on schema mismatch or a payload that does not fit the file.
func payloadToStream(payload *DiskPayload, file *source.File) (*token.Stream, bool) {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	n := len(payload.Kinds)
	if len(payload.Starts) != n || len(payload.Ends) != n ||
		len(payload.Lines) != n || len(payload.Cols) != n {
		return nil, false
	}

	limit, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return nil, false
	}
	stream := token.NewStream(file, n)
	for i := 0; i < n; i++ {
		if payload.Ends[i] > limit || payload.Starts[i] > payload.Ends[i] {
			return nil, false
		}
		stream.Push(token.Kind(payload.Kinds[i]), token.Span{
			Start: payload.Starts[i],
			End:   payload.Ends[i],
			Line:  payload.Lines[i],
			Col:   payload.Cols[i],
		})
	}
	for _, off := range payload.LineBreaks {
		if off >= limit {
			return nil, false
		}
		stream.PushLineBreak(off)
	}
	return stream, true
}
