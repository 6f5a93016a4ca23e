package token

import "corebrowser/core/interner"

// Kind tags the variant of a Token, per CSS Syntax Module Level 3 §4.
type Kind uint8

const (
	EOF Kind = iota
	Ident
	Function
	AtKeyword
	Hash
	String
	BadString
	URL
	BadURL
	Delim
	Number
	Percentage
	Dimension
	Whitespace
	CDO
	CDC
	Colon
	Semicolon
	Comma
	BracketOpen
	BracketClose
	ParenOpen
	ParenClose
	BraceOpen
	BraceClose
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "ident"
	case Function:
		return "function"
	case AtKeyword:
		return "at-keyword"
	case Hash:
		return "hash"
	case String:
		return "string"
	case BadString:
		return "bad-string"
	case URL:
		return "url"
	case BadURL:
		return "bad-url"
	case Delim:
		return "delim"
	case Number:
		return "number"
	case Percentage:
		return "percentage"
	case Dimension:
		return "dimension"
	case Whitespace:
		return "whitespace"
	case CDO:
		return "CDO"
	case CDC:
		return "CDC"
	case Colon:
		return "colon"
	case Semicolon:
		return "semicolon"
	case Comma:
		return "comma"
	case BracketOpen:
		return "["
	case BracketClose:
		return "]"
	case ParenOpen:
		return "("
	case ParenClose:
		return ")"
	case BraceOpen:
		return "{"
	case BraceClose:
		return "}"
	}
	return "?"
}

// Token is a tagged variant over the CSS token grammar. Not every field is
// meaningful for every Kind; see the per-field comments.
type Token struct {
	Kind Kind

	Ident interner.Symbol // Ident, Function, AtKeyword, URL: the identifier/value text
	Str   interner.Symbol // String: the (unescaped) string contents

	HashIsID bool // Hash: true if the hash's name would be a valid identifier (an "id" hash)

	Num       float64         // Number, Percentage, Dimension: the numeric value
	IsInteger bool            // Number, Dimension: true if written without '.', exponent
	Unit      interner.Symbol // Dimension: the unit identifier

	Delim rune // Delim: the single delimiter character
}

// Text resolves the interned identifier/string text carried by tokens that
// have one (Ident, Function, AtKeyword, URL, String, Hash); returns "" for
// all other kinds.
func (t Token) Text() string {
	switch t.Kind {
	case Ident, Function, AtKeyword, URL:
		return t.Ident.String()
	case String:
		return t.Str.String()
	case Hash:
		return t.Ident.String()
	}
	return ""
}

func ident(s string) Token       { return Token{Kind: Ident, Ident: interner.Intern(s)} }
func function(s string) Token     { return Token{Kind: Function, Ident: interner.Intern(s)} }
func atKeyword(s string) Token    { return Token{Kind: AtKeyword, Ident: interner.Intern(s)} }
func stringTok(s string) Token    { return Token{Kind: String, Str: interner.Intern(s)} }
func hashTok(s string, id bool) Token {
	return Token{Kind: Hash, Ident: interner.Intern(s), HashIsID: id}
}
func urlTok(s string) Token { return Token{Kind: URL, Ident: interner.Intern(s)} }
func delimTok(r rune) Token { return Token{Kind: Delim, Delim: r} }
func numberTok(n float64, isInt bool) Token {
	return Token{Kind: Number, Num: n, IsInteger: isInt}
}
func percentageTok(n float64) Token { return Token{Kind: Percentage, Num: n} }
func dimensionTok(n float64, isInt bool, unit string) Token {
	return Token{Kind: Dimension, Num: n, IsInteger: isInt, Unit: interner.Intern(unit)}
}
