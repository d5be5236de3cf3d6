package record

import (
	G "github.com/sourya7/go-eff/record/generic"
	S "github.com/sourya7/go-eff/semigroup"
)

func UnionSemigroup[K comparable, V any](s S.Semigroup[V]) S.Semigroup[map[K]V] {
	return G.UnionSemigroup[map[K]V](s)
}
