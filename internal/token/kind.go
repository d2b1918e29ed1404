package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	And // and
	Or  // or
	Xor // xor
	Not // not

	Equals       // ==
	NotEquals    // !=
	LessThan     // <
	GreaterThan  // >
	LessEqual    // <=
	GreaterEqual // >=

	Feather // >-
	Arrow   // ->

	Ampersand // &
	Pipe      // |
	Caret     // ^
	Tilde     // ~
	LShift    // <<
	RShift    // >>

	Incr   // ++
	Decr   // --
	Plus   // +
	Minus  // -
	Mul    // *
	Div    // /
	Pow    // **
	Modulo // %

	Pub // pub

	Packed // packed
	Struct // struct
	Enum   // enum
	Union  // union

	Fn       // fn
	Defer    // defer
	If       // if
	Then     // then
	Else     // else
	While    // while
	Do       // do
	Loop     // loop
	Continue // continue
	Break    // break

	Equal    // =
	Semi     // ;
	Colon    // :
	Comma    // ,
	Dot      // .
	LParens  // (
	RParens  // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }

	// String represents a plain string literal, including interpolated
	// literals that contain no interpolation segments.
	String
	// StringInterpBeg is the segment of an interpolated literal up to and
	// including the first '{'.
	StringInterpBeg
	// StringInterpMid is a segment between two interpolation expressions,
	// '}' through '{' inclusive.
	StringInterpMid
	// StringInterpEnd is the final segment, '}' through the closing '"'.
	StringInterpEnd
	// Char represents a character literal like 'a' or b'x'.
	Char
	// Ident represents an identifier.
	Ident
	// Num represents any numeric literal; integer/float split is the
	// parser's job.
	Num

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:         "Invalid",
	And:             "And",
	Or:              "Or",
	Xor:             "Xor",
	Not:             "Not",
	Equals:          "Equals",
	NotEquals:       "NotEquals",
	LessThan:        "LessThan",
	GreaterThan:     "GreaterThan",
	LessEqual:       "LessEqual",
	GreaterEqual:    "GreaterEqual",
	Feather:         "Feather",
	Arrow:           "Arrow",
	Ampersand:       "Ampersand",
	Pipe:            "Pipe",
	Caret:           "Caret",
	Tilde:           "Tilde",
	LShift:          "LShift",
	RShift:          "RShift",
	Incr:            "Incr",
	Decr:            "Decr",
	Plus:            "Plus",
	Minus:           "Minus",
	Mul:             "Mul",
	Div:             "Div",
	Pow:             "Pow",
	Modulo:          "Modulo",
	Pub:             "Pub",
	Packed:          "Packed",
	Struct:          "Struct",
	Enum:            "Enum",
	Union:           "Union",
	Fn:              "Fn",
	Defer:           "Defer",
	If:              "If",
	Then:            "Then",
	Else:            "Else",
	While:           "While",
	Do:              "Do",
	Loop:            "Loop",
	Continue:        "Continue",
	Break:           "Break",
	Equal:           "Equal",
	Semi:            "Semi",
	Colon:           "Colon",
	Comma:           "Comma",
	Dot:             "Dot",
	LParens:         "LParens",
	RParens:         "RParens",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	String:          "String",
	StringInterpBeg: "StringInterpBeg",
	StringInterpMid: "StringInterpMid",
	StringInterpEnd: "StringInterpEnd",
	Char:            "Char",
	Ident:           "Ident",
	Num:             "Num",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// IsKeyword reports whether the kind is a language keyword.
func (k Kind) IsKeyword() bool {
	switch k {
	case And, Or, Xor, Not, Pub, Packed, Struct, Enum, Union,
		Fn, Defer, If, Then, Else, While, Do, Loop, Continue, Break:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the kind is an operator or punctuation.
func (k Kind) IsOperator() bool {
	switch k {
	case Equals, NotEquals, LessThan, GreaterThan, LessEqual, GreaterEqual,
		Feather, Arrow, Ampersand, Pipe, Caret, Tilde, LShift, RShift,
		Incr, Decr, Plus, Minus, Mul, Div, Pow, Modulo,
		Equal, Semi, Colon, Comma, Dot,
		LParens, RParens, LBracket, RBracket, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the kind is a string, char, or numeric literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case String, StringInterpBeg, StringInterpMid, StringInterpEnd, Char, Num:
		return true
	default:
		return false
	}
}
