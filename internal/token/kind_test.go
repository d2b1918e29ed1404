package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{Arrow, "Arrow"},
		{StringInterpMid, "StringInterpMid"},
		{Num, "Num"},
		{kindCount, "Unknown"},
		{Kind(255), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	// Каждый вид обязан иметь имя.
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("Kind(%d) has no name", k)
		}
	}
}

func TestKindClasses(t *testing.T) {
	// Классы не пересекаются и покрывают всё, кроме Invalid.
	for k := Kind(1); k < kindCount; k++ {
		n := 0
		if k.IsKeyword() {
			n++
		}
		if k.IsOperator() {
			n++
		}
		if k.IsLiteral() {
			n++
		}
		if k == Ident {
			if n != 0 {
				t.Errorf("Ident classified as keyword/operator/literal")
			}
			continue
		}
		if n != 1 {
			t.Errorf("%v belongs to %d classes, want 1", k, n)
		}
	}
	if Invalid.IsKeyword() || Invalid.IsOperator() || Invalid.IsLiteral() {
		t.Errorf("Invalid should have no class")
	}
}
