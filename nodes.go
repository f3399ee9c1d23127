package keycalc

import (
	"strconv"
	"strings"
)

// nodeID addresses a node in a calculator's arena. The zero nodeID is no
// node.
type nodeID int32

// node is a node in the expression tree. A node with a unary operator never
// has a second operand.
type node struct {
	first  operand
	op     *Token
	second operand
	// grafted is whether a binary operator created the node above an existing
	// operand, which is now first.
	grafted bool
}

// operand is a number as typed or a nested node.
type operand struct {
	kind operandKind
	text string
	sub  nodeID
}

type operandKind int8

const (
	operandNone operandKind = iota
	operandText             // text is the number as typed
	operandNode             // sub is the nested node
)

func textOperand(s string) operand {
	return operand{kind: operandText, text: s}
}

func nodeOperand(id nodeID) operand {
	return operand{kind: operandNode, sub: id}
}

// arena holds the nodes of an expression tree.
type arena struct {
	nodes []node
}

// at returns the node with the given id. The returned pointer is valid only
// until the next alloc. Panics if id is not an allocated node.
func (a *arena) at(id nodeID) *node {
	if id <= 0 || int(id) >= len(a.nodes) {
		panic("keycalc: invalid node " + strconv.Itoa(int(id)))
	}
	return &a.nodes[id]
}

// alloc adds a node to the arena.
func (a *arena) alloc(first operand) nodeID {
	if len(a.nodes) == 0 {
		// Reserve the zero id.
		a.nodes = append(a.nodes, node{})
	}
	a.nodes = append(a.nodes, node{first: first})
	return nodeID(len(a.nodes) - 1)
}

// reset discards all nodes.
func (a *arena) reset() {
	for i := range a.nodes {
		a.nodes[i] = node{}
	}
	a.nodes = a.nodes[:0]
}

// appendText appends a digit or separator to a number as typed. A second
// separator is dropped, and a leading separator gets a zero before it.
func appendText(s, d string) string {
	if d == DecimalSeparator {
		if strings.Contains(s, DecimalSeparator) {
			return s
		}
		if s == "" {
			return "0" + d
		}
	}
	return s + d
}

// appendDigit appends a digit token to the operand being typed in the node.
// Digits that have nowhere to go, i.e. following a unary operator, are
// dropped.
func (a *arena) appendDigit(id nodeID, d *Token) {
	n := a.at(id)
	if n.op == nil {
		if n.first.kind == operandText {
			n.first.text = appendText(n.first.text, d.value)
		}
		return
	}
	if n.op.kind != KindBinary {
		return
	}
	switch n.second.kind {
	case operandNone:
		n.second = textOperand(appendText("", d.value))
	case operandText:
		n.second.text = appendText(n.second.text, d.value)
	case operandNode:
		a.appendDigit(n.second.sub, d)
	default:
		panic("keycalc: invalid operand kind " + strconv.Itoa(int(n.second.kind)))
	}
}

// commit strips a trailing separator from every number in the subtree of
// the operand, so that "1," becomes "1".
func (a *arena) commit(o *operand) {
	switch o.kind {
	case operandNone: // do nothing
	case operandText:
		o.text = strings.TrimSuffix(o.text, DecimalSeparator)
	case operandNode:
		n := a.at(o.sub)
		a.commit(&n.first)
		a.commit(&n.second)
	default:
		panic("keycalc: invalid operand kind " + strconv.Itoa(int(o.kind)))
	}
}

// setOperator commits both operands of the node, then sets its operator.
// Every operator assignment goes through setOperator. A nil op clears the
// operator.
func (a *arena) setOperator(id nodeID, op *Token) {
	n := a.at(id)
	a.commit(&n.first)
	a.commit(&n.second)
	if op != nil && op.kind == KindUnary && n.second.kind != operandNone {
		panic("keycalc: unary operator " + op.value + " on node with two operands")
	}
	n.op = op
}

// resolve computes the value of a node. A binary operator without a second
// operand is ignored.
func (a *arena) resolve(id nodeID) float64 {
	n := a.at(id)
	switch {
	case n.op == nil:
		return a.value(n.first)
	case n.op.kind == KindUnary:
		return n.op.apply(a.value(n.first), 0)
	case n.second.kind == operandNone:
		return a.value(n.first)
	default:
		return n.op.apply(a.value(n.first), a.value(n.second))
	}
}

// value computes the value of an operand.
func (a *arena) value(o operand) float64 {
	switch o.kind {
	case operandText:
		return parseNum(o.text)
	case operandNode:
		return a.resolve(o.sub)
	default:
		panic("keycalc: value of invalid operand kind " + strconv.Itoa(int(o.kind)))
	}
}

// parseNum parses a number as typed.
func parseNum(s string) float64 {
	s = strings.TrimSuffix(strings.Replace(s, DecimalSeparator, ".", 1), ".")
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Numbers as typed are digits with at most one separator, so only
		// range errors are possible, and those already give ±Inf.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			panic("keycalc: invalid number " + strconv.Quote(s) + ": " + err.Error())
		}
	}
	return r
}

// fmt writes the expression trace of a node.
func (a *arena) fmt(b *strings.Builder, id nodeID) {
	n := a.at(id)
	switch {
	case n.op == nil:
		a.fmtOperand(b, n.first)
	case n.op.kind == KindUnary:
		b.WriteString(n.op.sym)
		b.WriteByte('(')
		a.fmtOperand(b, n.first)
		b.WriteByte(')')
	default:
		a.fmtOperand(b, n.first)
		b.WriteString(n.op.sym)
		if n.second.kind != operandNone {
			a.fmtOperand(b, n.second)
		}
	}
}

func (a *arena) fmtOperand(b *strings.Builder, o operand) {
	switch o.kind {
	case operandText:
		b.WriteString(o.text)
	case operandNode:
		a.fmt(b, o.sub)
	default:
		panic("keycalc: format of invalid operand kind " + strconv.Itoa(int(o.kind)))
	}
}

// trace returns the expression trace of a node.
func (a *arena) trace(id nodeID) string {
	var b strings.Builder
	a.fmt(&b, id)
	return b.String()
}
