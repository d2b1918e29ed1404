package token

// Keyword tables, bucketed by byte length and consulted from the longest
// keyword ("continue", 8 bytes) down to the shortest ("or"/"fn"/"if"/"do").
// A bucket is only consulted when the identifier's length equals the bucket
// length exactly, so "continued" and "structs" stay identifiers.
var keywordsByLen = map[int]map[string]Kind{
	8: {
		"continue": Continue,
	},
	6: {
		"packed": Packed,
		"struct": Struct,
	},
	5: {
		"union": Union,
		"defer": Defer,
		"while": While,
		"break": Break,
	},
	4: {
		"enum": Enum,
		"then": Then,
		"else": Else,
		"loop": Loop,
	},
	3: {
		"and": And,
		"xor": Xor,
		"not": Not,
		"pub": Pub,
	},
	2: {
		"or": Or,
		"fn": Fn,
		"if": If,
		"do": Do,
	},
}

// keywordLengths is the probe order, longest first.
var keywordLengths = [...]int{8, 6, 5, 4, 3, 2}

// LookupKeyword returns the keyword kind for an identifier lexeme, if any.
func LookupKeyword(lex []byte) (Kind, bool) {
	for _, n := range keywordLengths {
		if len(lex) != n {
			continue
		}
		if k, ok := keywordsByLen[n][string(lex)]; ok {
			return k, true
		}
	}
	return Invalid, false
}
