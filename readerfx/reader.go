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

// package readerfx is an effect module for a read-only environment R,
// grounded on the teacher's reader.Reader[R, A]: Ask and Asks keep the
// teacher's names and shapes, reader.Ask[R]()/reader.Asks[R, A](f), but
// as effect sends resolved once by Run rather than a function R -> A.
package readerfx

import "github.com/sourya7/go-eff/eff"

// Cmd is the single effect constructor of this module: Asking always
// asks for the whole environment; Asks (the public API) projects out
// of it with f after the Send resolves.
type Cmd[Env any] struct{}

// NewTag mints the Tag an Ask/Asks/Run set shares for one concrete Env.
func NewTag[Env any](name string) eff.Tag[Cmd[Env]] {
	return eff.NewTag[Cmd[Env]](name)
}

// Ask retrieves the whole environment.
func Ask[R, Out, Env any](w eff.Member[Cmd[Env], R, Out]) eff.Eff[R, Env] {
	e := eff.Send[Cmd[Env], R, Out, any](w, Cmd[Env]{})
	return eff.MonadMap(e, func(a any) Env { return a.(Env) })
}

// Asks projects a value out of the environment, mirroring reader.Asks.
func Asks[R, Out, Env, A any](w eff.Member[Cmd[Env], R, Out], f func(Env) A) eff.Eff[R, A] {
	return eff.MonadMap(Ask[R, Out, Env](w), f)
}

// Run interprets every Ask by answering with the fixed environment env.
func Run[R, Out, Env, A any](w eff.Member[Cmd[Env], R, Out], env Env, e eff.Eff[R, A]) eff.Eff[Out, A] {
	return eff.Interpret[Cmd[Env], any, R, Out, A, A](
		w,
		func(a A) A { return a },
		func(Cmd[Env]) eff.Do[any, struct{}, Out, A] {
			return eff.Continue[any, struct{}, Out, A](env, struct{}{})
		},
		// Every Ask answers with the same env regardless of batching, so
		// a genuine applicative batch is always available.
		func(mxs []Cmd[Env]) ([]any, bool) {
			xs := make([]any, len(mxs))
			for i := range mxs {
				xs[i] = env
			}
			return xs, true
		},
		e,
	)
}
