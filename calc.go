package keycalc

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Calculator holds an expression typed one key at a time. The zero value is
// an empty calculator ready to use. It is not safe to use a Calculator
// concurrently.
type Calculator struct {
	p parser
	// done is whether the last key was Evaluate.
	done bool
}

// New creates an empty calculator.
func New() *Calculator {
	return new(Calculator)
}

// Push types a key. Evaluate finishes the calculation and Clear empties the
// calculator. Any other value is looked up in the token catalog; unknown
// values are ignored. The first token after Evaluate begins a new
// calculation.
func (c *Calculator) Push(value string) {
	switch value {
	case Evaluate, evaluateAlias:
		c.p.finish()
		c.done = true
		return
	case Clear:
		c.Clear()
		return
	}
	t := Lookup(value)
	if t == nil {
		return
	}
	if c.done {
		c.Clear()
	}
	c.p.accept(t)
}

// PushAll types a sequence of keys.
func (c *Calculator) PushAll(values ...string) {
	for _, v := range values {
		c.Push(v)
	}
}

// Clear empties the calculator.
func (c *Calculator) Clear() {
	c.p.reset()
	c.done = false
}

// Finished returns whether the last key typed was Evaluate.
func (c *Calculator) Finished() bool {
	return c.done
}

// Empty returns whether no tokens have been typed since the calculator was
// created or cleared.
func (c *Calculator) Empty() bool {
	return c.p.root == 0
}

// Compute returns the value of the expression typed so far. A trailing
// binary operator with no second operand is ignored. Out-of-domain
// operations like division by zero or the square root of a negative number
// result in infinities or NaN.
func (c *Calculator) Compute() float64 {
	if c.p.root == 0 {
		return 0
	}
	return c.p.resolve(c.p.root)
}

// String returns the expression trace, e.g. "1+√(25)×4". After Evaluate, the
// trace ends with "=".
func (c *Calculator) String() string {
	if c.p.root == 0 {
		return "0"
	}
	s := c.p.trace(c.p.root)
	if c.done {
		s += "="
	}
	return s
}

// Live returns the text for the main display: the number being typed, or the
// result of the calculation after Evaluate.
func (c *Calculator) Live() string {
	if c.done {
		return FormatNumber(c.Compute())
	}
	return c.p.live()
}

// Dump writes the calculator's internal state to w for debugging.
func (c *Calculator) Dump(w io.Writer) {
	cfg := spew.ConfigState{Indent: "\t", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(w, c.p.root, c.p.cur, c.done)
	if len(c.p.nodes) > 1 {
		cfg.Fdump(w, c.p.nodes[1:])
	}
}

// FormatNumber formats a result for display. The decimal separator replaces
// the dot, infinities are ∞ and -∞, and NaN is NaN.
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if s == "-0" {
		s = "0"
	}
	return strings.Replace(s, ".", DecimalSeparator, 1)
}
