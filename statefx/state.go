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

// package statefx is an effect module for a single threaded value of
// type S, grounded on the teacher's state.State[S, A]: Get, Gets, Put
// and Modify carry the same names and shapes as state.Get/state.Gets/
// state.Put/state.Modify, but as an effect Send instead of a Reader
// over a pair.
package statefx

import "github.com/sourya7/go-eff/eff"

type opKind uint8

const (
	kindGet opKind = iota
	kindPut
	kindModify
)

// Cmd is the single effect constructor of this module; Get, Put and
// Modify all send one, differing only in Kind and which of Value/F is
// populated. Every Send instantiates its own result type X, so a
// single Cmd[S] tag serves all three shapes (spec.md §9's confined
// unchecked cast: the result is carried as `any` and recovered by the
// typed wrapper immediately below).
type Cmd[S any] struct {
	Kind  opKind
	Value S
	F     func(S) S
}

// NewTag mints the Tag an effect module embedding State[S] shares
// across Get/Put/Modify/Run for one concrete S.
func NewTag[S any](name string) eff.Tag[Cmd[S]] {
	return eff.NewTag[Cmd[S]](name)
}

// Get reads the current state.
func Get[R, Out, S any](w eff.Member[Cmd[S], R, Out]) eff.Eff[R, S] {
	e := eff.Send[Cmd[S], R, Out, any](w, Cmd[S]{Kind: kindGet})
	return eff.MonadMap(e, func(a any) S { return a.(S) })
}

// Gets projects a value out of the current state without a separate
// Map call, mirroring state.Gets.
func Gets[R, Out, S, B any](w eff.Member[Cmd[S], R, Out], f func(S) B) eff.Eff[R, B] {
	return eff.MonadMap(Get[R, Out, S](w), f)
}

// Put replaces the current state.
func Put[R, Out, S any](w eff.Member[Cmd[S], R, Out], s S) eff.Eff[R, struct{}] {
	e := eff.Send[Cmd[S], R, Out, any](w, Cmd[S]{Kind: kindPut, Value: s})
	return eff.MonadMap(e, func(any) struct{} { return struct{}{} })
}

// Modify replaces the current state with f applied to it.
func Modify[R, Out, S any](w eff.Member[Cmd[S], R, Out], f func(S) S) eff.Eff[R, struct{}] {
	e := eff.Send[Cmd[S], R, Out, any](w, Cmd[S]{Kind: kindModify, F: f})
	return eff.MonadMap(e, func(any) struct{} { return struct{}{} })
}

// Run interprets every Cmd[S] occurrence, threading s0 through the
// program, and pairs the final value with the final state — the same
// result shape as running a state.State[S, A].
func Run[R, Out, S, A any](w eff.Member[Cmd[S], R, Out], s0 S, e eff.Eff[R, A]) eff.Eff[Out, eff.Pair2[A, S]] {
	return eff.InterpretState[Cmd[S], any, S, R, Out, A, eff.Pair2[A, S]](
		w, s0,
		func(a A, s S) eff.Pair2[A, S] { return eff.Pair2[A, S]{First: a, Second: s} },
		func(mx Cmd[S], s S) eff.Do[any, S, Out, eff.Pair2[A, S]] {
			switch mx.Kind {
			case kindGet:
				return eff.Continue[any, S, Out, eff.Pair2[A, S]](s, s)
			case kindPut:
				return eff.Continue[any, S, Out, eff.Pair2[A, S]](struct{}{}, mx.Value)
			default:
				return eff.Continue[any, S, Out, eff.Pair2[A, S]](struct{}{}, mx.F(s))
			}
		},
		// State is inherently sequential: two State sends batched by Ap
		// still depend on each other's effect on S, so an applicative
		// batch here always falls back to running doFn once per
		// element in order.
		func(_ []Cmd[S], s S) ([]any, S, bool) { return nil, s, false },
		e,
	)
}
