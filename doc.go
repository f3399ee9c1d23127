// Package keycalc implements the expression engine of a pocket calculator.
//
// Input arrives one key at a time: digits, the decimal separator, binary
// operators like "add" and "mul", unary operators like "sqrt", and the
// controls "return" and "clear". After every key, the calculator holds a
// correctly prioritized expression tree for everything typed so far, so
// "1 add 5 mul 4" already evaluates to 21 before anything else is pressed.
//
// The display shows two things: the expression trace, e.g. "1+5×4", and the
// live value, which is the number being typed or, after "return", the
// result.
package keycalc
