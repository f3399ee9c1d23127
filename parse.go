package keycalc

// parser builds an expression tree one token at a time. root is the whole
// expression, and cur is the node receiving the next digit or operator. cur
// is always reachable from root along second operands.
type parser struct {
	arena
	root nodeID
	cur  nodeID
}

// accept adds a token to the expression.
func (p *parser) accept(t *Token) {
	if p.root == 0 {
		p.start(t)
		return
	}
	if p.cur == 0 {
		panic("keycalc: expression has no current node")
	}
	switch t.kind {
	case KindDigit:
		p.appendDigit(p.cur, t)
	case KindUnary:
		p.unary(t)
	case KindBinary:
		p.binary(t)
	default:
		panic("keycalc: cannot accept " + t.kind.String() + " token " + t.value)
	}
}

// start begins a new expression. An expression that begins with an operator
// applies it to 0.
func (p *parser) start(t *Token) {
	switch t.kind {
	case KindDigit:
		p.root = p.alloc(textOperand(appendText("", t.value)))
		p.cur = p.root
	case KindBinary:
		p.root = p.alloc(textOperand("0"))
		p.cur = p.root
		p.setOperator(p.root, t)
	case KindUnary:
		p.root = p.alloc(textOperand("0"))
		p.cur = p.root
		p.unary(t)
	default:
		panic("keycalc: cannot start with " + t.kind.String() + " token " + t.value)
	}
}

// unary wraps the operand being typed in a unary operator. A binary operator
// with no second operand yet is dropped first, so 1+√ is √(1) and 1+2×√ is
// 1+√(2). The cursor stays where it is, so √(√(x)) is typed as x √ √.
func (p *parser) unary(t *Token) {
	p.drop()
	c := p.at(p.cur)
	sec := c.op != nil && c.second.kind != operandNone
	o := c.first
	if sec {
		o = c.second
	}
	w := p.alloc(o)
	p.setOperator(w, t)
	// alloc may have moved the arena.
	c = p.at(p.cur)
	if sec {
		c.second = nodeOperand(w)
	} else {
		c.first = nodeOperand(w)
	}
}

// binary attaches a binary operator. With no operator yet, the operator
// attaches to the number just typed. An operator with no second operand yet
// is replaced as though it had never been typed. Otherwise, the operator takes
// as its first operand the second operand of the deepest node on the cursor's
// spine that binds less tightly than it, or else the whole expression.
func (p *parser) binary(t *Token) {
	c := p.at(p.cur)
	if c.op == nil || c.second.kind == operandNone && !c.grafted {
		p.setOperator(p.cur, t)
		return
	}
	p.drop()
	s := p.spine()
	for i := len(s) - 1; i >= 0; i-- {
		n := p.at(s[i])
		if n.op == nil || n.op.kind != KindBinary || n.op.prio >= t.prio {
			continue
		}
		w := p.alloc(n.second)
		p.setOperator(w, t)
		p.at(w).grafted = true
		p.at(s[i]).second = nodeOperand(w)
		p.cur = w
		return
	}
	w := p.alloc(nodeOperand(p.root))
	p.setOperator(w, t)
	p.at(w).grafted = true
	p.root = w
	p.cur = w
}

// drop removes a binary operator with no second operand from the cursor. If
// the operator grafted its node into the tree, the graft is undone and the
// cursor returns to the end of the spine, where it was before the operator.
func (p *parser) drop() {
	c := p.at(p.cur)
	if c.op == nil || c.op.kind != KindBinary || c.second.kind != operandNone {
		return
	}
	if !c.grafted {
		p.setOperator(p.cur, nil)
		return
	}
	s := p.spine()
	if len(s) == 1 {
		if c.first.kind != operandNode {
			panic("keycalc: grafted root has no subexpression")
		}
		p.root = c.first.sub
	} else {
		p.at(s[len(s)-2]).second = c.first
	}
	p.cur = p.end()
}

// end returns the last node on the spine from the root, following second
// operands that are binary nodes.
func (p *parser) end() nodeID {
	id := p.root
	for {
		n := p.at(id)
		if n.second.kind != operandNode {
			return id
		}
		sub := p.at(n.second.sub)
		if sub.op == nil || sub.op.kind != KindBinary {
			return id
		}
		id = n.second.sub
	}
}

// spine returns the nodes from root to cur along second operands. Panics if
// cur is not reachable.
func (p *parser) spine() []nodeID {
	s := []nodeID{p.root}
	for id := p.root; id != p.cur; {
		n := p.at(id)
		if n.second.kind != operandNode {
			panic("keycalc: current node is not reachable from the root")
		}
		id = n.second.sub
		s = append(s, id)
	}
	return s
}

// finish drops a trailing binary operator that has no second operand and
// commits all numbers.
func (p *parser) finish() {
	if p.root == 0 {
		return
	}
	p.drop()
	r := nodeOperand(p.root)
	p.commit(&r)
}

// live returns the text of the operand being typed.
func (p *parser) live() string {
	if p.cur == 0 {
		return "0"
	}
	return p.liveNode(p.cur)
}

func (p *parser) liveNode(id nodeID) string {
	n := p.at(id)
	switch {
	case n.op == nil:
		return p.liveOperand(n.first)
	case n.op.kind == KindUnary:
		return p.trace(id)
	case n.second.kind == operandNone:
		return "0"
	default:
		return p.liveOperand(n.second)
	}
}

func (p *parser) liveOperand(o operand) string {
	switch o.kind {
	case operandText:
		return o.text
	case operandNode:
		return p.liveNode(o.sub)
	default:
		panic("keycalc: live value of empty operand")
	}
}

// reset empties the expression.
func (p *parser) reset() {
	p.arena.reset()
	p.root, p.cur = 0, 0
}
