// Package token defines lexical token kinds and the token stream for the
// csussus front end.
// Invariants:
//   - Span.Start/Span.End are byte offsets into the original source; the
//     token text is always File.Content[Start:End], never a copy.
//   - Stream is append-only: Spans and Kinds stay index-aligned and are
//     never reordered after tokenization.
//   - LineBreaks is a strictly increasing sequence of '\n' byte offsets.
//   - Keywords are lowercase only; anything else is an Ident.
package token
