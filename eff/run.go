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

// Run extracts the final value from a program whose row is empty —
// every effect has already been interpreted away. A non-empty row at
// this point is a bug, never a domain failure, so it panics rather
// than returning an error (spec.md §4.G).
func Run[A any](e Eff[NoFx, A]) A {
	core := effDown(e)
	if core.kind != effPure {
		panic(newViolation(ViolationNonEmptyRow, "Run called on a program that still invokes an effect"))
	}
	return core.pureVal.(A)
}

// RunPure is Run without the panic: it reports whether the program had
// already reduced to Pure, instead of asserting it.
func RunPure[A any](e Eff[NoFx, A]) (A, bool) {
	core := effDown(e)
	if core.kind != effPure {
		var zero A
		return zero, false
	}
	return core.pureVal.(A), true
}

// MonadDict is the bind/pure pair Detach needs for the target carrier
// type. It is erased to `any`, the same way Union and Eff are: Go has
// no way to write "F applied to a type parameter", so a single-effect
// row whose carrier is itself a monad (io.IO, option.Option, a custom
// result type) is peeled by trusting a caller-supplied dictionary
// rather than by the compiler.
type MonadDict struct {
	Pure  func(a any) any
	Chain func(fa any, f func(any) any) any
}

// Detach peels a single-effect row Fx1[M] down to the carrier M
// represents, by sending every occurrence of M through send and
// sequencing the results with dict. It is the counterpart to Send for
// programs that are themselves one concrete side-effecting monad
// rather than an open effect row — the teacher's io.IO and
// option.Option are both suitable targets.
func Detach[M, A any](w Member[M, Fx1[M], NoFx], dict MonadDict, send func(mx M) any, e Eff[Fx1[M], A]) any {
	return Match(e,
		func(a A) any { return dict.Pure(a) },
		func(u Union[Fx1[M], any], k Arrs[Fx1[M], any, A]) any {
			mx, _ := Extract[M, Fx1[M], NoFx, any](w, u)
			fx := send(mx)
			return dict.Chain(fx, func(x any) any {
				return Detach[M, A](w, dict, send, ArrsApply(k, x))
			})
		},
		func(us Unions[Fx1[M], any], f func([]any) A) any {
			u := UnionsHead(us)
			mx, _ := Extract[M, Fx1[M], NoFx, any](w, u)
			fx := send(mx)
			return dict.Chain(fx, func(x any) any {
				return dict.Pure(f([]any{x}))
			})
		},
	)
}

// IntoPoly weakens a program's row from R to the larger R2, given a
// function describing how a single effect widens. It is the general
// engine every concrete row-weakening helper (WeakenL, WeakenR,
// FromNoFx) is built from, since Go's lack of row polymorphism means
// each shape of weakening needs its own concrete widen closure built
// from Accept/UnionAppend rather than a single structural subtyping
// rule (spec.md §4.G).
func IntoPoly[R, R2, A any](widen func(Union[R, any]) Union[R2, any], e Eff[R, A]) Eff[R2, A] {
	return Match(e,
		func(a A) Eff[R2, A] { return Pure[R2, A](a) },
		func(u Union[R, any], k Arrs[R, any, A]) Eff[R2, A] {
			u2 := widen(u)
			k2 := ArrsSingleton[R2, any, A](func(x any) Eff[R2, A] {
				return IntoPoly[R, R2, A](widen, ArrsApply(k, x))
			})
			return Impure[R2, any, A](u2, k2)
		},
		func(us Unions[R, any], f func([]any) A) Eff[R2, A] {
			us2 := UnionsInto[R, R2, any](us, widen)
			return ImpureAp[R2, any, A](us2, f)
		},
	)
}

// WeakenL lifts a program built against the left side of an append row
// into the combined row (spec.md §4.G's "append-growing" case).
func WeakenL[L, Rr, A any](e Eff[L, A]) Eff[FxAppend[L, Rr], A] {
	return IntoPoly[L, FxAppend[L, Rr], A](func(u Union[L, any]) Union[FxAppend[L, Rr], any] {
		return UnionAppendL[L, Rr, any](u)
	}, e)
}

// WeakenR lifts a program built against the right side of an append
// row into the combined row.
func WeakenR[L, Rr, A any](e Eff[Rr, A]) Eff[FxAppend[L, Rr], A] {
	return IntoPoly[Rr, FxAppend[L, Rr], A](func(u Union[Rr, any]) Union[FxAppend[L, Rr], any] {
		return UnionAppendR[L, Rr, any](u)
	}, e)
}

// FromNoFx lifts an effect-free program into any row. The widen
// function it hands IntoPoly can never actually run — a program typed
// Eff[NoFx, A] cannot contain an Impure or ImpureAp node, since nothing
// can ever construct a Union[NoFx, _] — so reaching it is a bug.
func FromNoFx[R2, A any](e Eff[NoFx, A]) Eff[R2, A] {
	return IntoPoly[NoFx, R2, A](func(u Union[NoFx, any]) Union[R2, any] {
		panic(newViolation(ViolationNonEmptyRow, "FromNoFx encountered an effect in a row that should be empty"))
	}, e)
}
