package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Placeholder represents an editor placeholder token (<#...#>).
	Placeholder
	// Wildcard represents the '_' token.
	Wildcard // _

	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwThrows represents the 'throws' keyword.
	KwThrows // throws
	// KwRethrows represents the 'rethrows' keyword.
	KwRethrows // rethrows
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwSome represents the 'some' keyword.
	KwSome // some
	// KwAny represents the 'any' keyword.
	KwAny // any
	// KwInout represents the 'inout' keyword.
	KwInout // inout

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the arrow token.
	Arrow // ->
	// Assign represents the assign token.
	Assign // =
	// Question represents the question token.
	Question // ?
	// Bang represents the bang token.
	Bang // !
	// At represents the attribute sigil.
	At // @
	// Operator represents any other operator; its spelling is in Token.Text.
	Operator
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	Placeholder: "Placeholder",
	Wildcard:    "Wildcard",
	KwIn:        "KwIn",
	KwReturn:    "KwReturn",
	KwLet:       "KwLet",
	KwVar:       "KwVar",
	KwFunc:      "KwFunc",
	KwTrue:      "KwTrue",
	KwFalse:     "KwFalse",
	KwNil:       "KwNil",
	KwThrows:    "KwThrows",
	KwRethrows:  "KwRethrows",
	KwAsync:     "KwAsync",
	KwSome:      "KwSome",
	KwAny:       "KwAny",
	KwInout:     "KwInout",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Comma:       "Comma",
	Colon:       "Colon",
	Semicolon:   "Semicolon",
	Dot:         "Dot",
	Arrow:       "Arrow",
	Assign:      "Assign",
	Question:    "Question",
	Bang:        "Bang",
	At:          "At",
	Operator:    "Operator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

var fixedText = map[Kind]string{
	Wildcard:  "_",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Dot:       ".",
	Arrow:     "->",
	Assign:    "=",
	Question:  "?",
	Bang:      "!",
	At:        "@",
}

// FixedText returns the spelling of punctuation and keyword kinds.
// Kinds whose text varies (identifiers, literals, operators) report false.
func FixedText(k Kind) (string, bool) {
	if s, ok := fixedText[k]; ok {
		return s, true
	}
	for kw, kk := range keywords {
		if kk == k {
			return kw, true
		}
	}
	return "", false
}
