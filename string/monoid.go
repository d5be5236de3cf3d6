package string

import (
	M "github.com/sourya7/go-eff/monoid"
)

// Monoid is the monoid implementing string concatenation
var Monoid = M.MakeMonoid(concat, "")
