package builder

import (
	"github.com/sourya7/go-eff/v2/optics/lens"
	"github.com/sourya7/go-eff/v2/option"
	"github.com/sourya7/go-eff/v2/result"
)

type (
	Option[T any]  = option.Option[T]
	Result[T any]  = result.Result[T]
	Lens[S, T any] = lens.Lens[S, T]
)
