package driver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Speykious/csussus/internal/lexer"
	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/token"
)

func lexVirtual(t *testing.T, src string) (*source.File, *token.Stream) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("cache.csus", []byte(src)))
	stream, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return file, stream
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("csussus-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	file, stream := lexVirtual(t, "fn main() do\n    1 + 2\n")
	if err := cache.Put(file.Hash, streamToPayload(file, stream)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var payload DiskPayload
	found, err := cache.Get(file.Hash, &payload)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatalf("payload not found after Put")
	}

	restored, ok := payloadToStream(&payload, file)
	if !ok {
		t.Fatalf("payloadToStream rejected a valid payload")
	}

	if restored.Len() != stream.Len() {
		t.Fatalf("restored %d tokens, want %d", restored.Len(), stream.Len())
	}
	for i := 0; i < stream.Len(); i++ {
		if restored.KindAt(i) != stream.KindAt(i) {
			t.Errorf("token %d: kind = %v, want %v", i, restored.KindAt(i), stream.KindAt(i))
		}
		if diff := cmp.Diff(stream.SpanAt(i), restored.SpanAt(i)); diff != "" {
			t.Errorf("token %d span mismatch (-want +got):\n%s", i, diff)
		}
	}
	if restored.LineBreakCount() != stream.LineBreakCount() {
		t.Fatalf("restored %d line breaks, want %d", restored.LineBreakCount(), stream.LineBreakCount())
	}
}

func TestDiskCacheMiss(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("csussus-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	var payload DiskPayload
	found, err := cache.Get([32]byte{1, 2, 3}, &payload)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatalf("unexpected hit for unknown key")
	}
}

func TestPayloadToStreamRejectsBadInput(t *testing.T) {
	file, stream := lexVirtual(t, "fn x() do 0\n")
	payload := streamToPayload(file, stream)

	stale := *payload
	stale.Schema = diskCacheSchemaVersion + 1
	if _, ok := payloadToStream(&stale, file); ok {
		t.Errorf("accepted payload with wrong schema")
	}

	truncated := *payload
	truncated.Starts = truncated.Starts[:len(truncated.Starts)-1]
	if _, ok := payloadToStream(&truncated, file); ok {
		t.Errorf("accepted payload with mismatched column lengths")
	}

	overflow := *payload
	overflow.Ends = append([]uint32(nil), payload.Ends...)
	overflow.Ends[0] = uint32(len(file.Content)) + 100
	if _, ok := payloadToStream(&overflow, file); ok {
		t.Errorf("accepted payload pointing past the file")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put([32]byte{}, &DiskPayload{}); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	found, err := cache.Get([32]byte{}, &DiskPayload{})
	if err != nil || found {
		t.Errorf("nil Get = (%v, %v), want (false, nil)", found, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil DropAll: %v", err)
	}
}
