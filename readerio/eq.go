package readerio

import (
	EQ "github.com/sourya7/go-eff/eq"
	G "github.com/sourya7/go-eff/readerio/generic"
)

// Eq implements the equals predicate for values contained in the IO monad
func Eq[R, A any](e EQ.Eq[A]) func(r R) EQ.Eq[ReaderIO[R, A]] {
	return G.Eq[ReaderIO[R, A]](e)
}
