package token

import (
	"github.com/Speykious/csussus/internal/arena"
	"github.com/Speykious/csussus/internal/source"
)

// Span locates one token: the byte range of its text plus the 1-based line
// and 0-based byte column where the token begins. Offsets are kept instead
// of slice headers so a span stays valid no matter how the stream travels.
type Span struct {
	Start uint32
	End   uint32
	Line  uint32
	Col   uint32
}

// Stream is the full result of tokenizing one file: three index-aligned,
// append-only sequences plus the source they point into.
type Stream struct {
	file       *source.File
	lineBreaks *arena.Vec[uint32]
	spans      *arena.Vec[Span]
	kinds      *arena.Vec[Kind]
}

// NewStream creates an empty stream for file. The hint is a soft token-count
// estimate used to size the backing storage.
func NewStream(file *source.File, hint int) *Stream {
	return &Stream{
		file:       file,
		lineBreaks: arena.NewVec[uint32](hint / 8),
		spans:      arena.NewVec[Span](hint),
		kinds:      arena.NewVec[Kind](hint),
	}
}

// File returns the source file the stream was lexed from.
func (s *Stream) File() *source.File { return s.file }

// Push appends one token. Spans and kinds always advance together.
func (s *Stream) Push(k Kind, sp Span) {
	s.kinds.Append(k)
	s.spans.Append(sp)
}

// PushLineBreak records the absolute byte offset of a '\n'.
func (s *Stream) PushLineBreak(off uint32) {
	s.lineBreaks.Append(off)
}

// Len returns the number of tokens.
func (s *Stream) Len() int { return s.spans.Len() }

// KindAt returns the kind of token i.
func (s *Stream) KindAt(i int) Kind { return s.kinds.Get(i) }

// SpanAt returns the span of token i.
func (s *Stream) SpanAt(i int) Span { return s.spans.Get(i) }

// TextAt returns the exact source text of token i.
func (s *Stream) TextAt(i int) string {
	sp := s.spans.Get(i)
	return string(s.file.Content[sp.Start:sp.End])
}

// LineBreakCount returns the number of recorded line breaks.
func (s *Stream) LineBreakCount() int { return s.lineBreaks.Len() }

// LineBreakAt returns the byte offset of line break i.
func (s *Stream) LineBreakAt(i int) uint32 { return s.lineBreaks.Get(i) }

// SourceSpan converts a token span into a file-addressed source span.
func (s *Stream) SourceSpan(i int) source.Span {
	sp := s.spans.Get(i)
	return source.Span{File: s.file.ID, Start: sp.Start, End: sp.End}
}
