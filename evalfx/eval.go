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

// package evalfx is an effect module distinguishing deferred from
// eager evaluation, grounded on the teacher's lazy.Lazy[A] (a deferred
// thunk, lazy.Do/lazy.Bind) and identity.Of (an already-evaluated
// value, identity.Of(a) == a with no wrapping at all). Delay defers
// eff.Lazy[A] the same way lazy.Lazy[A] defers a func() A; Now lifts an
// already-computed value the same way identity.Of hands a value back
// unchanged.
package evalfx

import "github.com/sourya7/go-eff/eff"

// Cmd is the single effect constructor of this module: Delay carries
// the thunk to run when the effect is interpreted.
type Cmd struct {
	Thunk func() any
}

// NewTag mints the Tag a Delay/Run pair shares.
func NewTag(name string) eff.Tag[Cmd] {
	return eff.NewTag[Cmd](name)
}

// Delay defers thunk until Run evaluates the program.
func Delay[R, Out, A any](w eff.Member[Cmd, R, Out], thunk eff.Lazy[A]) eff.Eff[R, A] {
	e := eff.Send[Cmd, R, Out, any](w, Cmd{Thunk: func() any { return thunk() }})
	return eff.MonadMap(e, func(a any) A { return a.(A) })
}

// Now lifts an already-evaluated value, mirroring identity.Of: no
// effect is sent at all, since there is nothing left to defer.
func Now[R, A any](a A) eff.Eff[R, A] {
	return eff.Pure[R, A](a)
}

// Run interprets every Delay by invoking its thunk exactly once, in
// program order, the moment the effect is reached.
func Run[R, Out, A any](w eff.Member[Cmd, R, Out], e eff.Eff[R, A]) eff.Eff[Out, A] {
	return eff.InterpretUnsafe[Cmd, any, R, Out, A](w, func(mx Cmd) any {
		return mx.Thunk()
	}, e)
}
