package record

import (
	E "github.com/sourya7/go-eff/eq"
	G "github.com/sourya7/go-eff/record/generic"
)

func Eq[K comparable, V any](e E.Eq[V]) E.Eq[map[K]V] {
	return G.Eq[map[K]V, K, V](e)
}
