package file

import (
	"github.com/sourya7/go-eff/v2/either"
	"github.com/sourya7/go-eff/v2/ioeither"
)

type (
	Either[E, T any]      = either.Either[E, T]
	IOEither[E, T any]    = ioeither.IOEither[E, T]
	Kleisli[E, A, B any]  = ioeither.Kleisli[E, A, B]
	Operator[E, A, B any] = ioeither.Operator[E, A, B]
)
