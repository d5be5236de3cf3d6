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

// package optionfx is an effect module for a single short-circuiting
// absence, grounded on the teacher's option.Option[A]: None aborts the
// program the same way option.None[A]() discards a computation, and
// Run folds the result back to option.Option[A] the same way
// option.MonadFold collapses an Option to a plain value.
package optionfx

import (
	"github.com/sourya7/go-eff/eff"
	"github.com/sourya7/go-eff/option"
)

// Cmd is the single effect constructor of this module: sending it
// always means "abort", so it carries no payload.
type Cmd struct{}

// NewTag mints the Tag a None/Run pair shares.
func NewTag(name string) eff.Tag[Cmd] {
	return eff.NewTag[Cmd](name)
}

// None aborts the program. Its result type A is never produced, so any
// continuation after it is unreachable once interpreted.
func None[R, Out, A any](w eff.Member[Cmd, R, Out]) eff.Eff[R, A] {
	e := eff.Send[Cmd, R, Out, any](w, Cmd{})
	return eff.MonadMap(e, func(any) A { var zero A; return zero })
}

// Run interprets the program to option.Option[A]: option.Some of the
// final value if no None was ever reached, option.None otherwise.
func Run[R, Out, A any](w eff.Member[Cmd, R, Out], e eff.Eff[R, A]) eff.Eff[Out, option.Option[A]] {
	return eff.Interpret[Cmd, any, R, Out, A, option.Option[A]](
		w,
		func(a A) option.Option[A] { return option.Some(a) },
		func(Cmd) eff.Do[any, struct{}, Out, option.Option[A]] {
			return eff.Terminate[any, struct{}, Out, option.Option[A]](eff.Pure[Out, option.Option[A]](option.None[A]()))
		},
		func(mxs []Cmd) ([]any, bool) {
			// Any None in a batch aborts the whole batch; doFn's
			// per-element fallback already reaches the same Terminate.
			return nil, false
		},
		e,
	)
}
