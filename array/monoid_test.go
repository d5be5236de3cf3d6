package array

import (
	"testing"

	M "github.com/sourya7/go-eff/monoid/testing"
)

func TestMonoid(t *testing.T) {
	M.AssertLaws(t, Monoid[int]())([][]int{{}, {1}, {1, 2}})
}
