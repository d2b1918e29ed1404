package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		lex  string
		kind Kind
		ok   bool
	}{
		{"continue", Continue, true},
		{"packed", Packed, true},
		{"struct", Struct, true},
		{"union", Union, true},
		{"defer", Defer, true},
		{"while", While, true},
		{"break", Break, true},
		{"enum", Enum, true},
		{"then", Then, true},
		{"else", Else, true},
		{"loop", Loop, true},
		{"and", And, true},
		{"xor", Xor, true},
		{"not", Not, true},
		{"pub", Pub, true},
		{"or", Or, true},
		{"fn", Fn, true},
		{"if", If, true},
		{"do", Do, true},

		// точная длина: префикс ключевого слова — не ключевое слово
		{"continued", Invalid, false},
		{"structs", Invalid, false},
		{"i", Invalid, false},
		{"ifx", Invalid, false},
		{"whil", Invalid, false},
		{"", Invalid, false},
		{"If", Invalid, false},
	}
	for _, tt := range tests {
		kind, ok := LookupKeyword([]byte(tt.lex))
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("LookupKeyword(%q) = (%v, %v), want (%v, %v)",
				tt.lex, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestKeywordTablesConsistent(t *testing.T) {
	// Длина каждого ключа совпадает с длиной его ведра, и каждое ведро
	// присутствует в порядке обхода.
	seen := map[int]bool{}
	for _, n := range keywordLengths {
		seen[n] = true
	}
	for n, bucket := range keywordsByLen {
		if !seen[n] {
			t.Errorf("bucket %d missing from keywordLengths", n)
		}
		for lex, kind := range bucket {
			if len(lex) != n {
				t.Errorf("keyword %q in bucket %d", lex, n)
			}
			if !kind.IsKeyword() {
				t.Errorf("keyword %q maps to non-keyword kind %v", lex, kind)
			}
		}
	}
}
