package keycalc

import (
	"math"
	"strconv"
)

// Token is an entry in the calculator's key catalog. Tokens are immutable;
// Lookup returns pointers into the catalog.
type Token struct {
	value string
	kind  TokenKind
	// prio is the binding priority. Higher is more binding.
	prio int8
	// sym is the infix symbol of a binary operator or the prefix name of a
	// unary operator.
	sym string

	bin func(a, b float64) float64
	un  func(x float64) float64
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	KindNone TokenKind = iota
	// KindDigit is a digit or the decimal separator.
	KindDigit
	// KindBinary is a binary operator.
	KindBinary
	// KindUnary is a unary operator, applied to the operand being typed.
	KindUnary
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Kind
//go:generate go mod tidy

// DecimalSeparator is the token value of the decimal separator key. Numbers
// in expression traces and live values use it in place of a dot.
const DecimalSeparator = ","

// Control token values. These are handled by the calculator directly and do
// not appear in the catalog.
const (
	Evaluate = "return"
	Clear    = "clear"
)

// evaluateAlias is accepted as well as Evaluate.
const evaluateAlias = "evaluate"

// Priorities of the operator tiers.
const (
	prioSum  = 0
	prioProd = 1
	prioUn   = 2
)

// Value returns the token's identifier, e.g. "add" or "7".
func (t *Token) Value() string {
	return t.value
}

// Kind returns the kind of the token.
func (t *Token) Kind() TokenKind {
	return t.kind
}

// Priority returns the binding priority of an operator token. Unary
// operators bind more tightly than any binary operator. Digits have
// priority 0.
func (t *Token) Priority() int {
	return int(t.prio)
}

// Symbol returns the display text of an operator, e.g. "×" or "√". For
// digits, it is the same as the value.
func (t *Token) Symbol() string {
	if t.sym == "" {
		return t.value
	}
	return t.sym
}

// apply applies the operator. b is ignored for unary operators.
func (t *Token) apply(a, b float64) float64 {
	switch t.kind {
	case KindBinary:
		return t.bin(a, b)
	case KindUnary:
		return t.un(a)
	default:
		panic("keycalc: apply on " + t.kind.String() + " token " + t.value)
	}
}

// String returns the token's value.
func (t *Token) String() string {
	return t.value
}

func digit(v string) Token {
	return Token{value: v, kind: KindDigit}
}

func binary(v string, prio int8, sym string, f func(a, b float64) float64) Token {
	return Token{value: v, kind: KindBinary, prio: prio, sym: sym, bin: f}
}

func unary(v, sym string, f func(x float64) float64) Token {
	return Token{value: v, kind: KindUnary, prio: prioUn, sym: sym, un: f}
}

var digits = []Token{
	digit("0"), digit("1"), digit("2"), digit("3"), digit("4"),
	digit("5"), digit("6"), digit("7"), digit("8"), digit("9"),
	digit(DecimalSeparator),
}

var binaryOperators = []Token{
	binary("add", prioSum, "+", func(a, b float64) float64 { return a + b }),
	binary("sub", prioSum, "-", func(a, b float64) float64 { return a - b }),
	binary("mul", prioProd, "×", func(a, b float64) float64 { return a * b }),
	binary("div", prioProd, "/", func(a, b float64) float64 { return a / b }),
	binary("mod", prioProd, "%", math.Mod),
}

var unaryOperators = []Token{
	unary("sqrt", "√", math.Sqrt),
	unary("ln", "ln", ln),
	unary("exp", "exp", exp),
}

// catalog maps token values to tokens in all three tables.
var catalog map[string]*Token

func init() {
	catalog = make(map[string]*Token, len(digits)+len(binaryOperators)+len(unaryOperators))
	for _, tab := range [][]Token{digits, binaryOperators, unaryOperators} {
		for i := range tab {
			t := &tab[i]
			switch t.value {
			case "", Evaluate, evaluateAlias, Clear:
				panic("keycalc: reserved token value " + strconv.Quote(t.value))
			}
			if catalog[t.value] != nil {
				panic("keycalc: duplicate token value " + t.value)
			}
			catalog[t.value] = t
		}
	}
}

// Lookup finds the token with the given value. If there is no such token,
// the result is nil. Lookup never returns a token for the control values
// Evaluate and Clear.
func Lookup(value string) *Token {
	return catalog[value]
}

// Tokens returns the values of every token in the catalog, digits first,
// then binary operators, then unary operators.
func Tokens() []string {
	r := make([]string, 0, len(catalog))
	for _, tab := range [][]Token{digits, binaryOperators, unaryOperators} {
		for i := range tab {
			r = append(r, tab[i].value)
		}
	}
	return r
}
