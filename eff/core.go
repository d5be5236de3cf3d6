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

// This file holds the single, non-generic engine every typed wrapper in
// the package (Eff, Arrs, Unions) is defined over. Keeping the engine
// monomorphic means the trampoline in arrsApplyCore and the kernel in
// kernel.go are written, and read, exactly once; every unchecked cast
// the spec allows at the Union/Arrs boundary (spec.md §3, §9) lives
// here, confined to this file and member.go, nowhere else.

// arrsCore is the untyped representation behind every Arrs[R, A, B]: a
// deque of erased Kleisli arrows, each taking the previous step's
// result and producing the next effCore.
type arrsCore struct {
	fns []func(any) effCore
}

type effKind uint8

const (
	effPure effKind = iota
	effImpure
	effImpureAp
)

// effCore is the untyped representation behind every Eff[R, A]: exactly
// one of Pure, Impure or ImpureAp is populated, selected by kind.
type effCore struct {
	kind effKind

	// populated when kind == effPure
	pureVal any

	// populated when kind == effImpure
	u union
	k arrsCore

	// populated when kind == effImpureAp
	us  unionsCore
	apF func([]any) any
}

func pureCore(a any) effCore {
	return effCore{kind: effPure, pureVal: a}
}

func impureCore(u union, k arrsCore) effCore {
	return effCore{kind: effImpure, u: u, k: k}
}

func impureApCore(us unionsCore, f func([]any) any) effCore {
	return effCore{kind: effImpureAp, us: us, apF: f}
}

// arrsConcatCore concatenates two erased deques, tail after head.
func arrsConcatCore(head, tail arrsCore) arrsCore {
	if len(head.fns) == 0 {
		return tail
	}
	if len(tail.fns) == 0 {
		return head
	}
	fns := make([]func(any) effCore, 0, len(head.fns)+len(tail.fns))
	fns = append(fns, head.fns...)
	fns = append(fns, tail.fns...)
	return arrsCore{fns: fns}
}

// apToImpureCore is Unions.continueWith from spec.md §4.C: it turns an
// ImpureAp batch into the monadic shape (one Impure node whose
// continuation evaluates the rest of the batch), so that flatMap and
// the applicative merge rules in monad.go never have to special-case
// ImpureAp directly.
func apToImpureCore(us unionsCore, f func([]any) any) (union, arrsCore) {
	head := us.head
	rest := us.rest
	k := func(v any) effCore {
		if len(rest) == 0 {
			return pureCore(f([]any{v}))
		}
		tailUs := unionsCore{head: rest[0], rest: rest[1:]}
		newF := func(xs []any) any {
			full := make([]any, 0, len(xs)+1)
			full = append(full, v)
			full = append(full, xs...)
			return f(full)
		}
		return impureApCore(tailUs, newF)
	}
	return head, arrsCore{fns: []func(any) effCore{k}}
}

// arrsApplyCore is the stack-safe trampoline of spec.md §4.B: it walks
// the deque with a live value, absorbing every Pure step in place, and
// stops at the first Impure/ImpureAp step, lazily prepending whatever
// of the deque is left so no further work happens until that step's
// own continuation is resumed.
func arrsApplyCore(ar arrsCore, a any) effCore {
	v := a
	fns := ar.fns
	for i, f := range fns {
		e := f(v)
		switch e.kind {
		case effPure:
			v = e.pureVal
		case effImpure:
			rest := arrsCore{fns: fns[i+1:]}
			return impureCore(e.u, arrsConcatCore(e.k, rest))
		case effImpureAp:
			rest := arrsCore{fns: fns[i+1:]}
			u, k := apToImpureCore(e.us, e.apF)
			return impureCore(u, arrsConcatCore(k, rest))
		}
	}
	return pureCore(v)
}
