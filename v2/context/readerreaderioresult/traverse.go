package readerreaderioresult

import (
	RRIOE "github.com/sourya7/go-eff/v2/readerreaderioeither"
)

func TraverseArray[R, A, B any](f Kleisli[R, A, B]) Kleisli[R, []A, []B] {
	return RRIOE.TraverseArray(f)
}
