package eq

import (
	EQ "github.com/sourya7/go-eff/eq"
	F "github.com/sourya7/go-eff/function"
)

// Eq implements an equals predicate on the basis of `map` and `ap`
func Eq[HKTA, HKTABOOL, HKTBOOL, A any](
	fmap func(HKTA, func(A) func(A) bool) HKTABOOL,
	fap func(HKTABOOL, HKTA) HKTBOOL,

	e EQ.Eq[A],
) func(l, r HKTA) HKTBOOL {
	c := F.Curry2(e.Equals)
	return func(fl, fr HKTA) HKTBOOL {
		return fap(fmap(fl, c), fr)
	}
}
