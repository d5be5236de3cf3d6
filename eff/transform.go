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

// Transform swaps every occurrence of TS for TB in the row, leaving
// every other effect untouched (spec.md §4.F): unlike Interpret/
// InterpretState, M is not removed, it is replaced in place by a
// different effect constructor at the same row position. wFrom and wTo
// share the same Out so that an occurrence of TS and its TB
// replacement narrow to the same remainder; nat converts one payload
// into the other. Per spec.md §9's stated default, a batch is
// normalized to a monadic node before being transformed, rather than
// kept as an applicative batch across the type change — preserving
// applicativity here would require nat to be a true natural
// transformation the kernel can apply elementwise without forcing a
// common X, which the source does not attempt either.
func Transform[TS, TB, R, R2, Out, A any](wFrom Member[TS, R, Out], wTo Member[TB, R2, Out], nat func(TS) TB, e Eff[R, A]) Eff[R2, A] {
	return Match(e,
		func(a A) Eff[R2, A] { return Pure[R2, A](a) },
		func(u Union[R, any], k Arrs[R, any, A]) Eff[R2, A] {
			outU, ts, ok := Project[TS, R, Out, any](wFrom, u)
			if ok {
				newU := Inject[TB, R2, Out, any](wTo, nat(ts))
				newK := ArrsSingleton[R2, any, A](func(x any) Eff[R2, A] {
					return Transform[TS, TB, R, R2, Out, A](wFrom, wTo, nat, ArrsApply(k, x))
				})
				return Impure[R2, any, A](newU, newK)
			}
			newU := Accept[TB, R2, Out, any](wTo, outU)
			newK := ArrsSingleton[R2, any, A](func(x any) Eff[R2, A] {
				return Transform[TS, TB, R, R2, Out, A](wFrom, wTo, nat, ArrsApply(k, x))
			})
			return Impure[R2, any, A](newU, newK)
		},
		func(us Unions[R, any], zf func([]any) A) Eff[R2, A] {
			normalized := MonadChain(e, func(a A) Eff[R, A] { return Pure[R, A](a) })
			return Transform[TS, TB, R, R2, Out, A](wFrom, wTo, nat, normalized)
		},
	)
}

// TranslateNat is Translate under the name spec.md §6 gives the
// natural-transformation-shaped variant of translate. Translate's
// `into` is already parametrized over X as a Go type parameter rather
// than inspected at runtime, so it already behaves as a natural
// transformation in X; TranslateNat is that same function, named to
// match the external-interface list.
func TranslateNat[M, X, R, RN, A any](w Member[M, R, RN], into func(mx M) Eff[RN, X], e Eff[R, A]) Eff[RN, A] {
	return Translate[M, X, R, RN, A](w, into, e)
}
