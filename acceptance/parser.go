package acceptance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wautomata/omega/mark"
)

// ParseError reports a malformed acceptance expression, with the byte
// offset of the offending token so callers can point the user at it.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("acceptance: parse error at offset %d: %s", e.Offset, e.Msg)
}

// Parse reads the textual acceptance grammar described in spec.md §6:
//
//	acc ::= "t" | "f" | "Inf(" N ")" | "Fin(" N ")" | "(" acc ")"
//	      | acc "&" acc | acc "|" acc
//
// "&" binds tighter than "|", and whitespace is ignored everywhere.
func Parse(s string) (*Formula, error) {
	p := &parser{src: s}
	p.skipSpace()
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, &ParseError{Offset: p.pos, Msg: "unexpected trailing input"}
	}

	return f, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

// parseOr := parseAnd ( "|" parseAnd )*
func (p *parser) parseOr() (*Formula, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	terms := []*Formula{first}
	for {
		p.skipSpace()
		if p.peek() != '|' {
			break
		}
		p.pos++
		p.skipSpace()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}

	return Or(terms...), nil
}

// parseAnd := parseAtom ( "&" parseAtom )*
func (p *parser) parseAnd() (*Formula, error) {
	first, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	terms := []*Formula{first}
	for {
		p.skipSpace()
		if p.peek() != '&' {
			break
		}
		p.pos++
		p.skipSpace()
		next, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}

	return And(terms...), nil
}

func (p *parser) parseAtom() (*Formula, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errf("unexpected end of input")
	}

	switch {
	case p.peek() == '(':
		p.pos++
		p.skipSpace()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, p.errf("expected ')'")
		}
		p.pos++

		return inner, nil
	case p.hasPrefix("t"):
		p.pos += 1

		return sharedT, nil
	case p.hasPrefix("f"):
		p.pos += 1

		return sharedF, nil
	case p.hasPrefix("Inf"):
		p.pos += 3

		return p.parseMarkKeyword(Inf)
	case p.hasPrefix("Fin"):
		p.pos += 3

		return p.parseMarkKeyword(Fin)
	default:
		return nil, p.errf("unexpected token %q", p.rest(8))
	}
}

func (p *parser) hasPrefix(tok string) bool {
	if !strings.HasPrefix(p.src[p.pos:], tok) {
		return false
	}
	// Ensure "t"/"f" aren't matched as a prefix of a longer identifier.
	end := p.pos + len(tok)
	if tok == "t" || tok == "f" {
		return end >= len(p.src) || !isIdentByte(p.src[end])
	}

	return true
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (p *parser) rest(n int) string {
	end := p.pos + n
	if end > len(p.src) {
		end = len(p.src)
	}

	return p.src[p.pos:end]
}

// parseMarkKeyword parses the "(" N ")" suffix following Inf/Fin and applies
// ctor to the resulting mark. A bare "!" negation prefix inside the
// parentheses (Spot's "Fin(!x)" sugar) is rejected, per spec.md §6.
func (p *parser) parseMarkKeyword(ctor func(mark.Mark) *Formula) (*Formula, error) {
	p.skipSpace()
	if p.peek() != '(' {
		return nil, p.errf("expected '(' after Inf/Fin")
	}
	p.pos++
	p.skipSpace()
	if p.peek() == '!' {
		return nil, p.errf("negated acceptance-set references are not supported")
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return nil, p.errf("expected a non-negative integer")
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return nil, p.errf("invalid integer %q", p.src[start:p.pos])
	}
	p.skipSpace()
	if p.peek() != ')' {
		return nil, p.errf("expected ')'")
	}
	p.pos++

	m, err := mark.New(n)
	if err != nil {
		return nil, p.errf("%s", err)
	}

	return ctor(m), nil
}

// String renders f back into the spec.md §6 grammar, fully parenthesized on
// every And/Or so that String/Parse round-trip without relying on operator
// precedence.
func (f *Formula) String() string {
	switch f.kind {
	case KindT:
		return "t"
	case KindF:
		return "f"
	case KindInf:
		// A multi-bit Inf leaf is the canonical form of an And of
		// Inf-singletons (the merge rule in And), so it round-trips as one.
		return renderSets("Inf", f.m, "&")
	case KindFin:
		// Symmetrically, a multi-bit Fin leaf is the canonical form of an Or
		// of Fin-singletons.
		return renderSets("Fin", f.m, "|")
	case KindAnd:
		return joinKids(f.kids, " & ")
	case KindOr:
		return joinKids(f.kids, " | ")
	}

	return ""
}

func renderSets(kw string, m mark.Mark, sep string) string {
	var b strings.Builder
	sets := m.Sets()
	for i, s := range sets {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(kw)
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(s))
		b.WriteByte(')')
	}
	if len(sets) > 1 {
		// A multi-bit leaf is really a conjunction/disjunction of
		// singletons; self-parenthesize so it round-trips regardless of
		// the precedence context it's embedded in.
		return "(" + b.String() + ")"
	}

	return b.String()
}

func joinKids(kids []*Formula, sep string) string {
	parts := make([]string, len(kids))
	for i, k := range kids {
		if k.kind == KindAnd || k.kind == KindOr {
			parts[i] = "(" + k.String() + ")"
		} else {
			parts[i] = k.String()
		}
	}

	return strings.Join(parts, sep)
}
