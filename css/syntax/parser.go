package syntax

import (
	"fmt"

	"corebrowser/core"
	"corebrowser/css/token"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// conditionalAtRules nest a rule-list inside their block (§4.2: selectors
// are re-entered for their contents); every other at-rule either has no
// block or a flat declaration list.
var conditionalAtRules = map[string]bool{
	"media":    true,
	"supports": true,
	"document": true,
}

// declarationAtRules carry a declaration list rather than nested rules.
var declarationAtRules = map[string]bool{
	"font-face": true,
	"page":      true,
}

type parser struct {
	tz     *token.Tokenizer
	errors []error
}

// Parse tokenizes and parses src into a Stylesheet. Parse errors are
// recorded in Stylesheet.Errors but never abort the parse (spec.md §4.2,
// §7: malformed constructs are discarded, not fatal).
func Parse(src string) *Stylesheet {
	p := &parser{tz: token.New(src)}
	rules := p.consumeListOfRules(true)
	return &Stylesheet{Rules: rules, Errors: p.errors}
}

// ParseDeclarationList parses the content of a "style" attribute: a bare
// declaration list with no surrounding selector or braces (CSS Syntax
// Level 3 §9, "parse a list of declarations", the algorithm an inline
// style attribute is fed through).
func ParseDeclarationList(src string) []Declaration {
	p := &parser{tz: token.New(src)}
	return p.consumeDeclarationList()
}

func (p *parser) errorf(code int, format string, args ...interface{}) {
	err := core.WrapError(fmt.Errorf(format, args...), code, format, args...)
	p.errors = append(p.errors, err)
	tracer().Debugf("syntax: %v", err)
}

// consumeListOfRules implements "consume a list of rules", CSS Syntax
// Level 3 §5.4.1. At the top level, CDO/CDC tokens are ignored (permits
// bare stylesheets to be embedded in SGML comments); nested inside a
// conditional at-rule's block they are not special.
func (p *parser) consumeListOfRules(topLevel bool) []Rule {
	var rules []Rule
	for {
		tok := p.tz.Peek(0)
		switch tok.Kind {
		case token.EOF:
			return rules
		case token.Whitespace:
			p.tz.Next()
		case token.CDO, token.CDC:
			if topLevel {
				p.tz.Next()
				continue
			}
			if r, ok := p.consumeQualifiedRule(); ok {
				rules = append(rules, r)
			}
		case token.AtKeyword:
			rules = append(rules, p.consumeAtRule())
		default:
			if r, ok := p.consumeQualifiedRule(); ok {
				rules = append(rules, r)
			}
		}
	}
}

// consumeAtRule implements "consume an at-rule".
func (p *parser) consumeAtRule() Rule {
	nameTok := p.tz.Next() // the AtKeyword
	r := Rule{Kind: AtRule, AtName: nameTok.Text()}
	for {
		tok := p.tz.Peek(0)
		switch tok.Kind {
		case token.Semicolon:
			p.tz.Next()
			return r
		case token.EOF:
			p.errorf(core.ErrUnexpectedEOF, "at-rule @%s: unexpected EOF before ';' or block", r.AtName)
			return r
		case token.BraceOpen:
			r.HasBlock = true
			p.tz.Next()
			if conditionalAtRules[r.AtName] {
				r.Rules = p.consumeListOfRules(false)
			} else if declarationAtRules[r.AtName] {
				r.Declarations = p.consumeDeclarationList()
			} else {
				p.skipComponentValuesUntilBraceClose()
			}
			return r
		default:
			r.AtPrelude = append(r.AtPrelude, p.tz.Next())
		}
	}
}

// consumeQualifiedRule implements "consume a qualified rule": a prelude up
// to the first top-level '{', then a declaration-list block. Returns
// ok=false if EOF is reached before a block (the rule is discarded, per
// §4.2 "malformed declarations are discarded").
func (p *parser) consumeQualifiedRule() (Rule, bool) {
	r := Rule{Kind: QualifiedRule}
	for {
		tok := p.tz.Peek(0)
		switch tok.Kind {
		case token.EOF:
			p.errorf(core.ErrUnexpectedEOF, "qualified rule: unexpected EOF in prelude")
			return Rule{}, false
		case token.BraceOpen:
			p.tz.Next()
			r.Declarations = p.consumeDeclarationList()
			return r, true
		default:
			r.Prelude = append(r.Prelude, p.tz.Next())
		}
	}
}

// skipComponentValuesUntilBraceClose discards an unrecognized at-rule's
// block using balanced-bracket counting (spec.md §4.2): a stack tracks
// open brackets so nested {}/[]/() pairs inside the block don't terminate
// it early.
func (p *parser) skipComponentValuesUntilBraceClose() {
	depth := arraystack.New()
	depth.Push(token.BraceOpen) // the already-consumed opening brace
	for {
		tok := p.tz.Next()
		switch tok.Kind {
		case token.EOF:
			return
		case token.BraceOpen, token.BracketOpen, token.ParenOpen:
			depth.Push(tok.Kind)
		case token.BraceClose, token.BracketClose, token.ParenClose:
			depth.Pop()
			if depth.Empty() {
				return
			}
		}
	}
}

// consumeDeclarationList implements "consume a list of declarations",
// assuming the opening '{' has already been consumed. Stops at the
// matching '}'.
func (p *parser) consumeDeclarationList() []Declaration {
	var decls []Declaration
	for {
		tok := p.tz.Peek(0)
		switch tok.Kind {
		case token.Whitespace, token.Semicolon:
			p.tz.Next()
		case token.EOF, token.BraceClose:
			if tok.Kind == token.BraceClose {
				p.tz.Next()
			}
			return decls
		case token.AtKeyword:
			// nested at-rules inside a declaration block (e.g. inside
			// @font-face) are consumed and discarded: not meaningful here.
			p.consumeAtRule()
		default:
			if d, ok := p.consumeDeclaration(); ok {
				decls = append(decls, d)
			}
		}
	}
}

// consumeDeclaration implements "consume a declaration": ident ':'
// value-tokens ['!' 'important']. Malformed declarations (missing colon,
// non-ident name) are discarded, returning ok=false, and the parser
// resyncs to the next ';' or the block's end.
func (p *parser) consumeDeclaration() (Declaration, bool) {
	nameTok := p.tz.Next()
	if nameTok.Kind != token.Ident {
		p.errorf(core.ErrMalformedConstruct, "declaration: expected ident, got %s", nameTok.Kind)
		p.recoverToSemicolonOrBrace()
		return Declaration{}, false
	}
	d := Declaration{Name: nameTok.Text()}
	p.skipWhitespace()
	colon := p.tz.Peek(0)
	if colon.Kind != token.Colon {
		p.errorf(core.ErrMalformedConstruct, "declaration %q: expected ':', got %s", d.Name, colon.Kind)
		p.recoverToSemicolonOrBrace()
		return Declaration{}, false
	}
	p.tz.Next() // the colon
	var values []token.Token
	for {
		tok := p.tz.Peek(0)
		if tok.Kind == token.Semicolon || tok.Kind == token.BraceClose || tok.Kind == token.EOF {
			break
		}
		values = append(values, p.tz.Next())
	}
	values = trimWhitespace(values)
	values, d.Important = extractImportant(values)
	d.Value = values
	return d, true
}

// recoverToSemicolonOrBrace discards tokens up to (but not including) the
// next top-level ';' or '}', so a single bad declaration does not poison
// the rest of the block.
func (p *parser) recoverToSemicolonOrBrace() {
	for {
		tok := p.tz.Peek(0)
		if tok.Kind == token.Semicolon || tok.Kind == token.BraceClose || tok.Kind == token.EOF {
			return
		}
		p.tz.Next()
	}
}

func (p *parser) skipWhitespace() {
	for p.tz.Peek(0).Kind == token.Whitespace {
		p.tz.Next()
	}
}

func trimWhitespace(toks []token.Token) []token.Token {
	start := 0
	for start < len(toks) && toks[start].Kind == token.Whitespace {
		start++
	}
	end := len(toks)
	for end > start && toks[end-1].Kind == token.Whitespace {
		end--
	}
	return toks[start:end]
}

// extractImportant detects a trailing "! important" (whitespace-tolerant)
// and strips it from the value token run.
func extractImportant(toks []token.Token) ([]token.Token, bool) {
	trimmed := trimWhitespace(toks)
	n := len(trimmed)
	if n < 2 {
		return toks, false
	}
	last := trimmed[n-1]
	if last.Kind != token.Ident || last.Text() != "important" {
		return toks, false
	}
	i := n - 2
	for i >= 0 && trimmed[i].Kind == token.Whitespace {
		i--
	}
	if i < 0 || trimmed[i].Kind != token.Delim || trimmed[i].Delim != '!' {
		return toks, false
	}
	return trimWhitespace(trimmed[:i]), true
}
