package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 8}
	if s.Empty() {
		t.Errorf("span should not be empty")
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
	if got := s.String(); got != "1:3-8" {
		t.Errorf("String = %q", got)
	}

	empty := Span{File: 1, Start: 4, End: 4}
	if !empty.Empty() {
		t.Errorf("zero-length span should be empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 0, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = %+v", got)
	}

	inner := Span{File: 0, Start: 6, End: 8}
	if got := a.Cover(inner); got != a {
		t.Errorf("covering an inner span changed the result: %+v", got)
	}

	other := Span{File: 7, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover changed the span: %+v", got)
	}
}
