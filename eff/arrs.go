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

// Arrs is a stack-safe deque of Kleisli arrows A -> Eff[R, B], composed
// left to right. It is defined over the same erased arrsCore every
// instantiation shares; ArrsApply drives it through arrsApplyCore's one
// iterative loop, so chaining a million Arrs together never recurses.
type Arrs[R, A, B any] arrsCore

func arrsUp[R, A, B any](a arrsCore) Arrs[R, A, B] { return Arrs[R, A, B](a) }
func arrsDown[R, A, B any](a Arrs[R, A, B]) arrsCore { return arrsCore(a) }

// ArrsSingleton builds a one-element Arrs from a single Kleisli arrow.
func ArrsSingleton[R, A, B any](f func(A) Eff[R, B]) Arrs[R, A, B] {
	return arrsUp[R, A, B](arrsCore{fns: []func(any) effCore{
		func(a any) effCore { return effDown(f(a.(A))) },
	}})
}

// ArrsUnit is the empty deque: applying it behaves exactly like pure.
func ArrsUnit[R, A any]() Arrs[R, A, A] {
	return Arrs[R, A, A]{}
}

// ArrsAppend grows the deque with one more arrow at the tail.
func ArrsAppend[R, A, B, C any](ar Arrs[R, A, B], f func(B) Eff[R, C]) Arrs[R, A, C] {
	core := arrsDown(ar)
	fns := make([]func(any) effCore, len(core.fns)+1)
	copy(fns, core.fns)
	fns[len(core.fns)] = func(b any) effCore { return effDown(f(b.(B))) }
	return arrsUp[R, A, C](arrsCore{fns: fns})
}

// ArrsContramap prepends a plain transformation at the head of the
// deque, letting an Arrs[R, A, B] be driven by a C instead of an A.
func ArrsContramap[R, C, A, B any](ar Arrs[R, A, B], f func(C) A) Arrs[R, C, B] {
	core := arrsDown(ar)
	fns := make([]func(any) effCore, len(core.fns)+1)
	fns[0] = func(c any) effCore { return effDown(Pure[R, A](f(c.(C)))) }
	copy(fns[1:], core.fns)
	return arrsUp[R, C, B](arrsCore{fns: fns})
}

// ArrsMapLast rewrites the trailing arrow's result. An empty deque has
// no trailing arrow and is returned unchanged, per the invariant that
// an empty Arrs behaves as pure.
func ArrsMapLast[R, A, B any](ar Arrs[R, A, B], g func(Eff[R, B]) Eff[R, B]) Arrs[R, A, B] {
	core := arrsDown(ar)
	n := len(core.fns)
	if n == 0 {
		return ar
	}
	fns := make([]func(any) effCore, n)
	copy(fns, core.fns)
	last := fns[n-1]
	fns[n-1] = func(a any) effCore {
		return effDown(g(effUp[R, B](last(a))))
	}
	return arrsUp[R, A, B](arrsCore{fns: fns})
}

// ArrsApply is the stack-safe composer of spec.md §4.B.
func ArrsApply[R, A, B any](ar Arrs[R, A, B], a A) Eff[R, B] {
	return effUp[R, B](arrsApplyCore(arrsDown(ar), a))
}
