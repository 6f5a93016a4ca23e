package selector

import (
	"fmt"

	"corebrowser/css/token"
)

// Parse parses a selector prelude's raw tokens (as produced by
// css/syntax.Rule.Prelude, whitespace preserved) into a List. Per spec.md
// §4.3's failure mode, a syntactically invalid selector group drops the
// *entire* list (not just the offending selector); err is non-nil in that
// case and the caller must discard the owning rule.
func Parse(toks []token.Token) (List, error) {
	p := &parser{toks: toks}
	var list List
	for {
		cs, err := p.parseComplexSelector()
		if err != nil {
			return nil, err
		}
		list = append(list, cs)
		p.skipWhitespace()
		if p.eof() {
			return list, nil
		}
		if p.peek().Kind != token.Comma {
			return nil, fmt.Errorf("selector: expected ',' or end, got %s", p.peek().Kind)
		}
		p.next()
		p.skipWhitespace()
	}
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token.Token {
	if p.eof() {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[i]
}

func (p *parser) next() token.Token {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *parser) skipWhitespace() {
	for !p.eof() && p.peek().Kind == token.Whitespace {
		p.pos++
	}
}

func (p *parser) parseComplexSelector() (ComplexSelector, error) {
	p.skipWhitespace()
	first, err := p.parseCompoundSelector()
	if err != nil {
		return ComplexSelector{}, err
	}
	cs := ComplexSelector{units: []complexUnit{{Compound: first}}}
	for {
		comb, hasComb, err := p.parseCombinator()
		if err != nil {
			return ComplexSelector{}, err
		}
		if !hasComb {
			return cs, nil
		}
		next, err := p.parseCompoundSelector()
		if err != nil {
			return ComplexSelector{}, err
		}
		cs.units = append(cs.units, complexUnit{Combinator: comb, Compound: next})
	}
}

// parseCombinator consumes an explicit combinator (">", "+", "~", "||") or
// an implicit descendant combinator (whitespace between two compounds).
// hasComb is false at the end of the selector (EOF or a top-level comma).
func (p *parser) parseCombinator() (Combinator, bool, error) {
	sawWhitespace := false
	for !p.eof() && p.peek().Kind == token.Whitespace {
		sawWhitespace = true
		p.pos++
	}
	if p.eof() || p.peek().Kind == token.Comma {
		return 0, false, nil
	}
	tok := p.peek()
	if tok.Kind == token.Delim {
		switch tok.Delim {
		case '>':
			p.pos++
			p.skipWhitespace()
			return Child, true, nil
		case '+':
			p.pos++
			p.skipWhitespace()
			return NextSibling, true, nil
		case '~':
			p.pos++
			p.skipWhitespace()
			return SubsequentSibling, true, nil
		case '|':
			p.pos++
			if p.peek().Kind != token.Delim || p.peek().Delim != '|' {
				return 0, false, fmt.Errorf("selector: expected second '|' to form column combinator")
			}
			p.pos++
			p.skipWhitespace()
			return Column, true, nil
		}
	}
	if sawWhitespace {
		return Descendant, true, nil
	}
	return 0, false, fmt.Errorf("selector: expected combinator or compound selector, got %s", tok.Kind)
}

// parseCompoundSelector parses an optional type selector followed by any
// number of subclass selectors, none of which may be whitespace-separated
// from each other or the type selector (grounded on original_source's
// compound_selector.rs: "whitespace is not allowed between the top
// components of a compound selector").
func (p *parser) parseCompoundSelector() (CompoundSelector, error) {
	var c CompoundSelector
	tok := p.peek()
	switch {
	case tok.Kind == token.Ident:
		c.HasType = true
		c.TypeName = tok.Text()
		p.pos++
	case tok.Kind == token.Delim && tok.Delim == '*':
		c.HasType = true
		c.TypeName = "*"
		p.pos++
	}
	for {
		tok = p.peek()
		switch {
		case tok.Kind == token.Hash:
			c.Subs = append(c.Subs, SubSelector{Kind: SubID, Ident: tok.Text()})
			p.pos++
		case tok.Kind == token.Delim && tok.Delim == '.':
			p.pos++
			nameTok := p.peek()
			if nameTok.Kind != token.Ident {
				return CompoundSelector{}, fmt.Errorf("selector: expected class name after '.', got %s", nameTok.Kind)
			}
			c.Subs = append(c.Subs, SubSelector{Kind: SubClass, Ident: nameTok.Text()})
			p.pos++
		case tok.Kind == token.Colon:
			p.pos++
			if p.peek().Kind == token.Colon { // "::" pseudo-element: parsed like a pseudo-class, so it never matches and counts (0,1,0)
				p.pos++
			}
			nameTok := p.peek()
			if nameTok.Kind != token.Ident && nameTok.Kind != token.Function {
				return CompoundSelector{}, fmt.Errorf("selector: expected pseudo-class name, got %s", nameTok.Kind)
			}
			name := nameTok.Text()
			p.pos++
			if nameTok.Kind == token.Function {
				// functional pseudo-classes (:nth-child(...) etc.) are not
				// implemented; consume the argument list and evaluate to
				// false with specificity (0,1,0), per spec.md §4.3.
				depth := 1
				for depth > 0 && !p.eof() {
					switch p.next().Kind {
					case token.ParenOpen:
						depth++
					case token.ParenClose:
						depth--
					}
				}
			}
			c.Subs = append(c.Subs, SubSelector{Kind: SubPseudoClass, Ident: name})
		case tok.Kind == token.BracketOpen:
			p.pos++
			sub, err := p.parseAttributeSelector()
			if err != nil {
				return CompoundSelector{}, err
			}
			c.Subs = append(c.Subs, sub)
		default:
			if !c.HasType && len(c.Subs) == 0 {
				return CompoundSelector{}, fmt.Errorf("selector: expected a compound selector, got %s", tok.Kind)
			}
			return c, nil
		}
	}
}

// parseAttributeSelector parses the contents of "[...]", the leading
// bracket already consumed, grounded on original_source's
// attribute_selector.rs.
func (p *parser) parseAttributeSelector() (SubSelector, error) {
	p.skipWhitespace()
	nameTok := p.peek()
	if nameTok.Kind != token.Ident {
		return SubSelector{}, fmt.Errorf("selector: expected attribute name, got %s", nameTok.Kind)
	}
	p.pos++
	sub := SubSelector{Kind: SubAttribute, AttrName: nameTok.Text()}
	p.skipWhitespace()
	if p.peek().Kind == token.BracketClose {
		p.pos++
		sub.AttrMatcher = AttrExists
		return sub, nil
	}
	matcher, err := p.parseAttrMatcherDelim()
	if err != nil {
		return SubSelector{}, err
	}
	sub.AttrMatcher = matcher
	p.skipWhitespace()
	valTok := p.peek()
	if valTok.Kind != token.String && valTok.Kind != token.Ident {
		return SubSelector{}, fmt.Errorf("selector: expected attribute value, got %s", valTok.Kind)
	}
	sub.AttrValue = valTok.Text()
	p.pos++
	p.skipWhitespace()
	if p.peek().Kind == token.Ident && (p.peek().Text() == "i" || p.peek().Text() == "I") {
		sub.AttrCaseInsens = true
		p.pos++
		p.skipWhitespace()
	}
	if p.peek().Kind != token.BracketClose {
		return SubSelector{}, fmt.Errorf("selector: expected ']', got %s", p.peek().Kind)
	}
	p.pos++
	return sub, nil
}

func (p *parser) parseAttrMatcherDelim() (AttributeMatcher, error) {
	tok := p.peek()
	if tok.Kind != token.Delim {
		return 0, fmt.Errorf("selector: expected attribute matcher, got %s", tok.Kind)
	}
	switch tok.Delim {
	case '=':
		p.pos++
		return AttrEquals, nil
	case '~':
		p.pos++
		if p.peek().Kind != token.Delim || p.peek().Delim != '=' {
			return 0, fmt.Errorf("selector: expected '=' after '~'")
		}
		p.pos++
		return AttrIncludes, nil
	case '|':
		p.pos++
		if p.peek().Kind != token.Delim || p.peek().Delim != '=' {
			return 0, fmt.Errorf("selector: expected '=' after '|'")
		}
		p.pos++
		return AttrDashMatch, nil
	case '^':
		p.pos++
		if p.peek().Kind != token.Delim || p.peek().Delim != '=' {
			return 0, fmt.Errorf("selector: expected '=' after '^'")
		}
		p.pos++
		return AttrPrefix, nil
	case '$':
		p.pos++
		if p.peek().Kind != token.Delim || p.peek().Delim != '=' {
			return 0, fmt.Errorf("selector: expected '=' after '$'")
		}
		p.pos++
		return AttrSuffix, nil
	case '*':
		p.pos++
		if p.peek().Kind != token.Delim || p.peek().Delim != '=' {
			return 0, fmt.Errorf("selector: expected '=' after '*'")
		}
		p.pos++
		return AttrSubstring, nil
	}
	return 0, fmt.Errorf("selector: unknown attribute matcher delim %q", tok.Delim)
}
