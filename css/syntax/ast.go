package syntax

import "corebrowser/css/token"

// RuleKind distinguishes the two productions a Rule can come from.
type RuleKind uint8

const (
	// QualifiedRule is a prelude (selector list) plus a declaration block.
	QualifiedRule RuleKind = iota
	// AtRule is "@" name prelude ( ";" | block ).
	AtRule
)

// Stylesheet is the top-level parse result: an ordered list of rules in
// source order, alongside any recoverable parse errors encountered.
type Stylesheet struct {
	Rules  []Rule
	Errors []error
}

// Rule is either a QualifiedRule (selector prelude + declarations) or an
// AtRule (name + prelude + either a nested declaration/rule block or none,
// for statement-form at-rules like @import).
type Rule struct {
	Kind RuleKind

	// Qualified rule fields.
	Prelude      []token.Token // raw selector-grammar tokens, whitespace preserved
	Declarations []Declaration

	// At-rule fields.
	AtName    string
	AtPrelude []token.Token
	// Nested rules inside a conditional at-rule's block (e.g. @media). Nil
	// for at-rules whose block is a declaration list or which have no
	// block at all.
	Rules []Rule
	// HasBlock distinguishes "@import url(x);" (no block) from an at-rule
	// with an empty block "@foo {}".
	HasBlock bool
}

// Declaration is "ident : value-tokens [!important]".
type Declaration struct {
	Name      string
	Value     []token.Token // whitespace-trimmed at both ends, interior preserved
	Important bool
}
