package keycalc

import (
	"math"
	"strings"
	"testing"
)

func TestAppendText(t *testing.T) {
	cases := []struct {
		s, d, want string
	}{
		{"", "1", "1"},
		{"", ",", "0,"},
		{"1", "2", "12"},
		{"1", ",", "1,"},
		{"1,", ",", "1,"},
		{"1,2", ",", "1,2"},
		{"1,2", "3", "1,23"},
		{"0", "0", "00"},
	}
	for _, c := range cases {
		if got := appendText(c.s, c.d); got != c.want {
			t.Errorf("appending %q to %q: want %q, got %q", c.d, c.s, c.want, got)
		}
	}
}

func TestParseNum(t *testing.T) {
	cases := []struct {
		s string
		r float64
	}{
		{"0", 0},
		{"12", 12},
		{"1,5", 1.5},
		{"1,", 1},
		{"0,", 0},
		{"0,25", 0.25},
		{"007", 7},
		{strings.Repeat("9", 400), math.Inf(1)},
	}
	for _, c := range cases {
		if r := parseNum(c.s); r != c.r {
			t.Errorf("parsing %q: want %g, got %g", c.s, c.r, r)
		}
	}
}

func TestCommit(t *testing.T) {
	var a arena
	inner := a.alloc(textOperand("2,"))
	a.at(inner).op = Lookup("add")
	a.at(inner).second = textOperand("3,")
	root := a.alloc(textOperand("1,"))
	a.at(root).op = Lookup("mul")
	a.at(root).second = nodeOperand(inner)
	if s := a.trace(root); s != "1,×2,+3," {
		t.Fatalf("wrong trace before commit: %q", s)
	}
	a.setOperator(root, Lookup("sub"))
	if s := a.trace(root); s != "1-2+3" {
		t.Errorf("wrong trace after commit: want %q, got %q", "1-2+3", s)
	}
}

func TestSetOperatorUnaryTwoOperands(t *testing.T) {
	var a arena
	id := a.alloc(textOperand("1"))
	a.at(id).second = textOperand("2")
	defer func() {
		if recover() == nil {
			t.Errorf("no panic setting unary operator on node with two operands")
		}
	}()
	a.setOperator(id, Lookup("sqrt"))
}

func TestArenaInvalidNode(t *testing.T) {
	var a arena
	a.alloc(textOperand("1"))
	for _, id := range []nodeID{0, -1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic getting node %d", id)
				}
			}()
			a.at(id)
		}()
	}
}

func TestAppendDigit(t *testing.T) {
	cases := []struct {
		name  string
		node  func(a *arena) nodeID
		d     string
		trace string
	}{
		{
			name:  "first",
			node:  func(a *arena) nodeID { return a.alloc(textOperand("1")) },
			d:     "2",
			trace: "12",
		},
		{
			name: "first-nested",
			node: func(a *arena) nodeID {
				w := a.alloc(textOperand("4"))
				a.setOperator(w, Lookup("sqrt"))
				return a.alloc(nodeOperand(w))
			},
			d:     "2",
			trace: "√(4)",
		},
		{
			name: "second-new",
			node: func(a *arena) nodeID {
				id := a.alloc(textOperand("1"))
				a.setOperator(id, Lookup("add"))
				return id
			},
			d:     "2",
			trace: "1+2",
		},
		{
			name: "second-new-sep",
			node: func(a *arena) nodeID {
				id := a.alloc(textOperand("1"))
				a.setOperator(id, Lookup("add"))
				return id
			},
			d:     ",",
			trace: "1+0,",
		},
		{
			name: "second-text",
			node: func(a *arena) nodeID {
				id := a.alloc(textOperand("1"))
				a.setOperator(id, Lookup("add"))
				a.at(id).second = textOperand("2,")
				return id
			},
			d:     ",",
			trace: "1+2,",
		},
		{
			name: "unary",
			node: func(a *arena) nodeID {
				id := a.alloc(textOperand("9"))
				a.setOperator(id, Lookup("sqrt"))
				return id
			},
			d:     "1",
			trace: "√(9)",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var a arena
			id := c.node(&a)
			a.appendDigit(id, Lookup(c.d))
			if s := a.trace(id); s != c.trace {
				t.Errorf("wrong trace: want %q, got %q", c.trace, s)
			}
		})
	}
}

func TestParserCursor(t *testing.T) {
	// Each step gives the trace of the current node after the token.
	cases := []struct {
		tok string
		cur string
	}{
		{"1", "1"},
		{"add", "1+"},
		{"5", "1+5"},
		{"mul", "5×"},
		{"4", "5×4"},
		{"sqrt", "5×√(4)"},
		{"sub", "1+5×√(4)-"},
		{"4", "1+5×√(4)-4"},
		{"div", "4/"},
	}
	var p parser
	for _, c := range cases {
		p.accept(Lookup(c.tok))
		if s := p.trace(p.cur); s != c.cur {
			t.Errorf("after %q: want current %q, got %q", c.tok, c.cur, s)
		}
		// Check that the cursor is still reachable.
		p.spine()
	}
}

func TestParserReplaceGrafted(t *testing.T) {
	cases := []struct {
		name string
		toks []string
		// cur is the trace of the current node after each token.
		cur []string
	}{
		{
			name: "inner",
			toks: []string{"1", "sub", "2", "mul", "add", "3"},
			cur:  []string{"1", "1-", "1-2", "2×", "1-2+", "1-2+3"},
		},
		{
			name: "root",
			toks: []string{"1", "add", "2", "sub", "mul", "3"},
			cur:  []string{"1", "1+", "1+2", "1+2-", "2×", "2×3"},
		},
		{
			name: "unary",
			toks: []string{"1", "sub", "2", "mul", "sqrt"},
			cur:  []string{"1", "1-", "1-2", "2×", "1-√(2)"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p parser
			for i, tok := range c.toks {
				p.accept(Lookup(tok))
				if s := p.trace(p.cur); s != c.cur[i] {
					t.Errorf("after %q: want current %q, got %q", tok, c.cur[i], s)
				}
				p.spine()
				if e := p.end(); e != p.cur {
					t.Errorf("after %q: cursor %d is not the end of the spine %d", tok, p.cur, e)
				}
			}
		})
	}
}

func TestParserUnreachableCursor(t *testing.T) {
	var p parser
	for _, tok := range []string{"1", "add", "2"} {
		p.accept(Lookup(tok))
	}
	orphan := p.alloc(textOperand("3"))
	p.setOperator(orphan, Lookup("add"))
	p.at(orphan).second = textOperand("4")
	p.cur = orphan
	defer func() {
		if recover() == nil {
			t.Errorf("no panic with unreachable cursor")
		}
	}()
	p.accept(Lookup("mul"))
}

func TestParserMissingCursor(t *testing.T) {
	var p parser
	p.accept(Lookup("1"))
	p.cur = 0
	defer func() {
		if recover() == nil {
			t.Errorf("no panic with missing cursor")
		}
	}()
	p.accept(Lookup("2"))
}

func TestParserReset(t *testing.T) {
	var p parser
	for _, tok := range []string{"1", "add", "2", "sqrt"} {
		p.accept(Lookup(tok))
	}
	p.reset()
	if p.root != 0 || p.cur != 0 || len(p.nodes) != 0 {
		t.Errorf("parser not empty after reset: root %d, cur %d, %d nodes", p.root, p.cur, len(p.nodes))
	}
	if s := p.live(); s != "0" {
		t.Errorf("wrong live value after reset: want %q, got %q", "0", s)
	}
}
