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

// Eff is a program that may invoke any effect named in row R and, once
// every effect has been interpreted away, produces a value of type A.
// It is one of three variants (spec.md §3):
//
//   - Pure(a): a value with no remaining effects.
//   - Impure(u, k): one effect and its continuation.
//   - ImpureAp(us, f): an ordered, independent batch of effects and the
//     function that zips their eventual results back together.
//
// Eff is immutable and carries no row information at run time; R exists
// purely to keep the API (Send, the handler combinators, IntoPoly)
// honest about which effects a program may invoke.
type Eff[R, A any] effCore

func effUp[R, A any](e effCore) Eff[R, A]   { return Eff[R, A](e) }
func effDown[R, A any](e Eff[R, A]) effCore { return effCore(e) }

// Pure lifts a plain value into Eff with no effects.
func Pure[R, A any](a A) Eff[R, A] {
	return effUp[R, A](pureCore(a))
}

// Send packages a single effect payload as a program. Per spec.md
// §4.D, a Send is always an ImpureAp of size one, f = "take element 0
// unchanged" — adjacent Sends can then be merged by Ap without being
// forced into monadic sequencing.
func Send[M, R, Out, X any](w Member[M, R, Out], mx M) Eff[R, X] {
	u := Inject[M, R, Out, X](w, mx)
	us := UnionsOf[R, X](u)
	return ImpureAp[R, X, X](us, func(xs []any) X { return xs[0].(X) })
}

// Impure builds a program from a single effect and its continuation.
// It is exposed for handler authors; ordinary program construction goes
// through Pure, Send, Map, Chain and Ap.
func Impure[R, X, A any](u Union[R, X], k Arrs[R, X, A]) Eff[R, A] {
	return effUp[R, A](impureCore(union(u), arrsDown(arrsToAny(k))))
}

// ImpureAp builds a program from an ordered batch of independent
// effects and the function reassembling their results.
func ImpureAp[R, X, A any](us Unions[R, X], f func([]any) A) Eff[R, A] {
	return effUp[R, A](impureApCore(unionsCore(us), func(xs []any) any { return f(xs) }))
}

// arrsToAny re-types a continuation's input as `any`. Every Arrs is
// already backed by functions taking `any` (the X-typed cast happens
// inside each arrow, not at the slice level), so this is a plain
// conversion, not a rebuild.
func arrsToAny[R, X, A any](k Arrs[R, X, A]) Arrs[R, any, A] {
	return arrsUp[R, any, A](arrsDown(k))
}

// Match deconstructs a program into its three variants, mirroring the
// teacher's Fold-style pattern matching over Option/Either. onPure
// receives the value; onImpure receives the effect (erased to `any`,
// since R is not tracked at run time) and its erased continuation;
// onImpureAp receives the batch and the zipper.
func Match[R, A, B any](
	e Eff[R, A],
	onPure func(A) B,
	onImpure func(Union[R, any], Arrs[R, any, A]) B,
	onImpureAp func(Unions[R, any], func([]any) A) B,
) B {
	core := effDown(e)
	switch core.kind {
	case effPure:
		return onPure(core.pureVal.(A))
	case effImpure:
		return onImpure(Union[R, any](core.u), arrsUp[R, any, A](core.k))
	default:
		f := core.apF
		return onImpureAp(unionsUp[R, any](core.us), func(xs []any) A { return f(xs).(A) })
	}
}
