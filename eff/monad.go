// Copyright (c) 2024 - 2026 the go-eff authors.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eff

// MonadMap is the uncurried form of Map.
func MonadMap[R, A, B any](e Eff[R, A], f func(A) B) Eff[R, B] {
	core := effDown(e)
	switch core.kind {
	case effPure:
		return Pure[R, B](f(core.pureVal.(A)))
	case effImpure:
		// Routed through MonadChain rather than mutating the deque in
		// place, so the deque stays canonical (spec.md §4.E).
		return MonadChain(e, func(a A) Eff[R, B] { return Pure[R, B](f(a)) })
	default:
		zf := core.apF
		newF := func(xs []any) any { return f(zf(xs).(A)) }
		return effUp[R, B](impureApCore(core.us, newF))
	}
}

// Map is the curried Operator form of MonadMap.
func Map[R, A, B any](f func(A) B) Operator[R, A, B] {
	return func(e Eff[R, A]) Eff[R, B] { return MonadMap(e, f) }
}

// MonadChain is the uncurried form of Chain, the monadic bind.
func MonadChain[R, A, B any](e Eff[R, A], f func(A) Eff[R, B]) Eff[R, B] {
	core := effDown(e)
	switch core.kind {
	case effPure:
		return f(core.pureVal.(A))
	case effImpure:
		k := ArrsAppend[R, any, A, B](arrsUp[R, any, A](core.k), f)
		return effUp[R, B](impureCore(core.u, arrsDown(k)))
	default:
		u, k := apToImpureCore(core.us, core.apF)
		k2 := ArrsAppend[R, any, A, B](arrsUp[R, any, A](k), f)
		return effUp[R, B](impureCore(u, arrsDown(k2)))
	}
}

// Chain is the curried Operator form of MonadChain.
func Chain[R, A, B any](f Kleisli[R, A, B]) Operator[R, A, B] {
	return func(e Eff[R, A]) Eff[R, B] { return MonadChain(e, f) }
}

// MonadAp is the uncurried applicative apply, ff <*> fa in the order
// fixed by spec.md §4.E and its Open Question: effects of fa run
// before effects of ff in the combined batch.
func MonadAp[R, A, B any](ff Eff[R, func(A) B], fa Eff[R, A]) Eff[R, B] {
	ffc := effDown(ff)
	fac := effDown(fa)

	switch {
	case ffc.kind == effPure && fac.kind == effPure:
		f := ffc.pureVal.(func(A) B)
		a := fac.pureVal.(A)
		return Pure[R, B](f(a))

	case ffc.kind == effPure:
		// Pure function, effectful argument: push the function into
		// fa's zipper without disturbing its batch.
		f := ffc.pureVal.(func(A) B)
		return MonadMap(fa, f)

	case fac.kind == effPure:
		// Effectful function, pure argument: push the value into ff's
		// zipper without disturbing its batch.
		a := fac.pureVal.(A)
		return MonadMap(ff, func(f func(A) B) B { return f(a) })

	case ffc.kind == effImpureAp && fac.kind == effImpureAp:
		// Both sides are independent batches: merge them into one
		// batch (fa's effects first, then ff's) so an interpreter can
		// still run them in parallel.
		faUs, ffUs := fac.us, ffc.us
		sizeFa := 1 + len(faUs.rest)
		merged := unionsCore{
			head: faUs.head,
			rest: make([]union, 0, len(faUs.rest)+1+len(ffUs.rest)),
		}
		merged.rest = append(merged.rest, faUs.rest...)
		merged.rest = append(merged.rest, ffUs.head)
		merged.rest = append(merged.rest, ffUs.rest...)

		faZip, ffZip := fac.apF, ffc.apF
		newF := func(xs []any) any {
			a := faZip(xs[:sizeFa]).(A)
			f := ffZip(xs[sizeFa:]).(func(A) B)
			return f(a)
		}
		return effUp[R, B](impureApCore(merged, newF))

	default:
		// At least one side already sequences effects monadically.
		// Falling back to Chain loses applicative batching across the
		// boundary between fa and ff (spec.md §4.E), but keeps the
		// effect order fa-then-ff and keeps each side's own internal
		// batch intact.
		return MonadChain(fa, func(a A) Eff[R, B] {
			return MonadChain(ff, func(f func(A) B) Eff[R, B] {
				return Pure[R, B](f(a))
			})
		})
	}
}

// Ap is the curried Operator form of MonadAp.
func Ap[R, A, B any](fa Eff[R, A]) Operator[R, func(A) B, B] {
	return func(ff Eff[R, func(A) B]) Eff[R, B] { return MonadAp[R, A, B](ff, fa) }
}

// Product combines two independent programs into one producing both
// results, running fa's effects before fb's.
func Product[R, A, B any](fa Eff[R, A], fb Eff[R, B]) Eff[R, Pair2[A, B]] {
	mf := MonadMap(fb, func(b B) func(A) Pair2[A, B] {
		return func(a A) Pair2[A, B] { return Pair2[A, B]{First: a, Second: b} }
	})
	return MonadAp[R, A, Pair2[A, B]](mf, fa)
}

// Traverse runs f over every element of as, left to right, collecting
// the results. It is built from Product rather than Chain so that
// consecutive Sends stay batched as one ImpureAp for as long as
// possible, giving an interpreter the chance to run them together.
func Traverse[R, A, B any](as []A, f Kleisli[R, A, B]) Eff[R, []B] {
	acc := Pure[R, []B](nil)
	for _, a := range as {
		eb := f(a)
		acc = MonadMap(Product(acc, eb), func(p Pair2[[]B, B]) []B {
			return append(p.First, p.Second)
		})
	}
	return acc
}

// Sequence is Traverse with the identity Kleisli.
func Sequence[R, B any](as []Eff[R, B]) Eff[R, []B] {
	return Traverse(as, func(e Eff[R, B]) Eff[R, B] { return e })
}
