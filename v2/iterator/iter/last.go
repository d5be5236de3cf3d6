package iter

import (
	"github.com/sourya7/go-eff/v2/function"
	"github.com/sourya7/go-eff/v2/option"
)

func Last[U any](it Seq[U]) Option[U] {
	return MonadReduce(MonadMap(it, option.Of[U]), function.SK, option.None[U]())
}
