package monoid

import (
	F "github.com/sourya7/go-eff/function"
	S "github.com/sourya7/go-eff/semigroup"
)

// FunctionMonoid forms a monoid as long as you can provide a monoid for the codomain.
func FunctionMonoid[A, B any](M Monoid[B]) Monoid[func(A) B] {
	return MakeMonoid(
		S.FunctionSemigroup[A, B](M).Concat,
		F.Constant1[A](M.Empty()),
	)
}
