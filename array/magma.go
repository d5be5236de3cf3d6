package array

import (
	F "github.com/sourya7/go-eff/function"
	M "github.com/sourya7/go-eff/magma"
)

func ConcatAll[A any](m M.Magma[A]) func(A) func([]A) A {
	return F.Bind1st(Reduce[A, A], m.Concat)
}
