package readerioeither

import (
	"context"

	ET "github.com/sourya7/go-eff/either"
	EQ "github.com/sourya7/go-eff/eq"
	G "github.com/sourya7/go-eff/readerioeither/generic"
)

// Eq implements the equals predicate for values contained in the IOEither monad
func Eq[A any](eq EQ.Eq[ET.Either[error, A]]) func(context.Context) EQ.Eq[ReaderIOEither[A]] {
	return G.Eq[ReaderIOEither[A]](eq)
}
