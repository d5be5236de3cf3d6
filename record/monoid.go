package record

import (
	M "github.com/sourya7/go-eff/monoid"
	G "github.com/sourya7/go-eff/record/generic"
	S "github.com/sourya7/go-eff/semigroup"
)

func UnionMonoid[K comparable, V any](s S.Semigroup[V]) M.Monoid[map[K]V] {
	return G.UnionMonoid[map[K]V](s)
}
