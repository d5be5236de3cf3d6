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

// package errorfx is an effect module for a single typed failure
// channel, grounded on the teacher's either.Either[E, A]: Throw aborts
// the program carrying an E the same way either.Left[A](e) discards a
// computation, Run folds the result back to either.Either[E, A] the
// same way either.MonadFold collapses an Either to a plain value, and
// Catch recovers from a failure mid-program the way either.OrElse
// substitutes a fallback computation for a Left.
package errorfx

import (
	"github.com/sourya7/go-eff/eff"
	"github.com/sourya7/go-eff/either"
)

// Cmd is the single effect constructor of this module: throwing always
// means "abort with E", so it carries only the failure value.
type Cmd[E any] struct {
	Err E
}

// NewTag mints the Tag a Throw/Run/Catch set shares for one concrete E.
func NewTag[E any](name string) eff.Tag[Cmd[E]] {
	return eff.NewTag[Cmd[E]](name)
}

// Throw aborts the program with err.
func Throw[R, Out, E, A any](w eff.Member[Cmd[E], R, Out], err E) eff.Eff[R, A] {
	e := eff.Send[Cmd[E], R, Out, any](w, Cmd[E]{Err: err})
	return eff.MonadMap(e, func(any) A { var zero A; return zero })
}

// Run interprets the program to either.Either[E, A]: either.Right of
// the final value if no Throw was ever reached, either.Left of the
// first thrown E otherwise.
func Run[R, Out, E, A any](w eff.Member[Cmd[E], R, Out], e eff.Eff[R, A]) eff.Eff[Out, either.Either[E, A]] {
	return eff.Interpret[Cmd[E], any, R, Out, A, either.Either[E, A]](
		w,
		func(a A) either.Either[E, A] { return either.Right[E](a) },
		func(mx Cmd[E]) eff.Do[any, struct{}, Out, either.Either[E, A]] {
			return eff.Terminate[any, struct{}, Out, either.Either[E, A]](
				eff.Pure[Out, either.Either[E, A]](either.Left[A](mx.Err)))
		},
		func(mxs []Cmd[E]) ([]any, bool) {
			// The first Throw in a batch aborts the whole batch; the
			// per-element fallback reaches the same Terminate.
			return nil, false
		},
		e,
	)
}

// Catch recovers from a Throw by running handler on the thrown E and
// continuing the program from its result, the way either.OrElse
// substitutes a fallback Either for a Left without touching a Right.
func Catch[R, Out, E, A any](w eff.Member[Cmd[E], R, Out], handler func(E) eff.Eff[Out, A], e eff.Eff[R, A]) eff.Eff[Out, A] {
	return eff.Translate[Cmd[E], A, R, Out, A](w, func(mx Cmd[E]) eff.Eff[Out, A] {
		return handler(mx.Err)
	}, e)
}
