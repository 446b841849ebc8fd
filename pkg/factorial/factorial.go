// Package factorial computes n! by folding a range of big integers.
package factorial

import "math/big"

// Reduce folds xs from the left, starting with init.
func Reduce[T, A any](xs []T, init A, f func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Range returns the integers lo..hi inclusive. It is empty when hi < lo.
func Range(lo, hi int64) []*big.Int {
	if hi < lo {
		return nil
	}
	out := make([]*big.Int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, big.NewInt(i))
	}
	return out
}

// Factorial returns n!. It panics if n is negative.
func Factorial(n int64) *big.Int {
	if n < 0 {
		panic("factorial: negative argument")
	}
	return Reduce(Range(1, n), big.NewInt(1), func(acc, x *big.Int) *big.Int {
		return acc.Mul(acc, x)
	})
}
