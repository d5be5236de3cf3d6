// Package readerio implements a specialization of the ReaderIO monad assuming a golang context as the context of the monad
package readerio

import (
	"context"

	R "github.com/sourya7/go-eff/readerio"
)

// ReaderIO is a specialization of the ReaderIO monad assuming a golang context as the context of the monad
type ReaderIO[A any] R.ReaderIO[context.Context, A]
