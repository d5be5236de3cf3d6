package generic

import (
	"github.com/sourya7/go-eff/v2/lazy"
	"github.com/sourya7/go-eff/v2/option"
	"github.com/sourya7/go-eff/v2/pair"
	"github.com/sourya7/go-eff/v2/predicate"
)

type (
	Option[A any]    = option.Option[A]
	Lazy[A any]      = lazy.Lazy[A]
	Pair[L, R any]   = pair.Pair[L, R]
	Predicate[A any] = predicate.Predicate[A]
)
