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

// package writerfx is an effect module that accumulates a log value W
// under a monoid.Monoid[W], the same accumulation the teacher's writer
// package builds by pairing a value with an accumulator. The teacher's
// retrieval pack carries writer_test.go/bind_test.go but not the
// writer.go implementation itself, so this module is grounded directly
// on monoid.Monoid/monoid.MakeMonoid instead (see DESIGN.md).
package writerfx

import "github.com/sourya7/go-eff/eff"

// Monoid mirrors the teacher's monoid.Monoid[W]: a Concat operation
// plus its identity element Empty.
type Monoid[W any] interface {
	Concat(x, y W) W
	Empty() W
}

// Cmd is the single effect constructor of this module: Tell appends w
// to the accumulated log and produces no value.
type Cmd[W any] struct {
	W W
}

// NewTag mints the Tag a Tell/Run pair shares for one concrete W.
func NewTag[W any](name string) eff.Tag[Cmd[W]] {
	return eff.NewTag[Cmd[W]](name)
}

// Tell appends w to the log.
func Tell[R, Out, W any](w eff.Member[Cmd[W], R, Out], value W) eff.Eff[R, struct{}] {
	e := eff.Send[Cmd[W], R, Out, any](w, Cmd[W]{W: value})
	return eff.MonadMap(e, func(any) struct{} { return struct{}{} })
}

// Run interprets every Tell, accumulating the logged values under m
// starting from m.Empty(), and pairs the program's value with the
// final log — the same shape the teacher's writer.Writer[W, A] pairs.
func Run[R, Out, W, A any](w eff.Member[Cmd[W], R, Out], m Monoid[W], e eff.Eff[R, A]) eff.Eff[Out, eff.Pair2[A, W]] {
	return eff.InterpretState[Cmd[W], any, W, R, Out, A, eff.Pair2[A, W]](
		w, m.Empty(),
		func(a A, acc W) eff.Pair2[A, W] { return eff.Pair2[A, W]{First: a, Second: acc} },
		func(mx Cmd[W], acc W) eff.Do[any, W, Out, eff.Pair2[A, W]] {
			return eff.Continue[any, W, Out, eff.Pair2[A, W]](struct{}{}, m.Concat(acc, mx.W))
		},
		// Tell's accumulation is associative and order-preserving, so a
		// batch of Tells collected by Ap can genuinely be folded in
		// their original left-to-right order without losing anything a
		// one-at-a-time interpretation would have produced.
		func(mxs []Cmd[W], acc W) ([]any, W, bool) {
			xs := make([]any, len(mxs))
			for i, mx := range mxs {
				acc = m.Concat(acc, mx.W)
				xs[i] = struct{}{}
			}
			return xs, acc, true
		},
		e,
	)
}
