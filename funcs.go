package keycalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// prec is the mantissa precision used for functions computed with big
// floats. It covers float64's 53 bits with room for rounding.
const prec = 64

// monadic evaluates f, a bigfloat-style function of one variable, at x. If x
// is outside the domain of f, or if f panics with big.ErrNaN, the result is
// NaN. Non-finite inputs use fallback instead, since big.Float cannot hold
// NaN and the series in bigfloat do not converge at infinity.
func monadic(f func(out, in *big.Float) *big.Float, fallback func(float64) float64, x float64) (r float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fallback(x)
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, _ := p.(error)
		if err == nil || !errors.As(err, &big.ErrNaN{}) {
			panic(p)
		}
		r = math.NaN()
	}()
	in := new(big.Float).SetPrec(prec).SetFloat64(x)
	out := new(big.Float).SetPrec(prec)
	f(out, in)
	r, _ = out.Float64()
	return r
}

// ln is the natural logarithm.
func ln(x float64) float64 {
	switch {
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}
	return monadic(bigfloat.Log, math.Log, x)
}

// exp is e^x.
func exp(x float64) float64 {
	if x == 0 {
		return 1
	}
	return monadic(bigfloat.Exp, math.Exp, x)
}
