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

// package listfx is a non-determinism effect module: Choose resolves
// to every one of its options, and Run collects every resulting
// program into the list of all of its outcomes. Its Choose/Run shape
// mirrors the teacher's array package folded over option.Option (every
// element tried, every success kept), but unlike the other modules in
// this repository it cannot be built on eff.Interpret: a single Do
// call resumes a continuation exactly once, while a single Choose must
// resume it once per option. Run is therefore written directly against
// eff.Match, recursing once per branch.
package listfx

import "github.com/sourya7/go-eff/eff"

// Cmd is the single effect constructor of this module: Choose sends
// one, carrying every option it may resolve to.
type Cmd[A any] struct {
	Options []A
}

// NewTag mints the Tag a Choose/Run pair shares for one concrete A.
func NewTag[A any](name string) eff.Tag[Cmd[A]] {
	return eff.NewTag[Cmd[A]](name)
}

// Choose resolves non-deterministically to one of options.
func Choose[R, Out, A any](w eff.Member[Cmd[A], R, Out], options []A) eff.Eff[R, A] {
	e := eff.Send[Cmd[A], R, Out, any](w, Cmd[A]{Options: options})
	return eff.MonadMap(e, func(x any) A { return x.(A) })
}

// Run collects every outcome of e, one per combination of Choose
// resolutions encountered along the way, in left-to-right order.
func Run[R, Out, A any](w eff.Member[Cmd[A], R, Out], e eff.Eff[R, A]) eff.Eff[Out, []A] {
	return eff.Match(e,
		func(a A) eff.Eff[Out, []A] {
			return eff.Pure[Out, []A]([]A{a})
		},
		func(u eff.Union[R, any], k eff.Arrs[R, any, A]) eff.Eff[Out, []A] {
			outU, mx, ok := eff.Project[Cmd[A], R, Out, any](w, u)
			if !ok {
				newK := eff.ArrsSingleton[Out, any, []A](func(x any) eff.Eff[Out, []A] {
					return Run[R, Out, A](w, eff.ArrsApply(k, x))
				})
				return eff.Impure[Out, any, []A](outU, newK)
			}
			acc := eff.Pure[Out, []A](([]A)(nil))
			for _, opt := range mx.Options {
				branch := eff.ArrsApply(k, opt)
				acc = eff.MonadChain(acc, func(prefix []A) eff.Eff[Out, []A] {
					return eff.MonadMap(Run[R, Out, A](w, branch), func(results []A) []A {
						return append(prefix, results...)
					})
				})
			}
			return acc
		},
		func(us eff.Unions[R, any], zf func([]any) A) eff.Eff[Out, []A] {
			// Every ImpureAp collapses into an equivalent Impure node
			// under MonadChain(e, Pure) (monad.go's own effImpureAp
			// branch does exactly this via apToImpureCore), so recursing
			// once more here always lands in the onImpure arm above;
			// this arm only exists to satisfy Match's signature.
			normalized := eff.MonadChain(e, func(a A) eff.Eff[R, A] { return eff.Pure[R, A](a) })
			return Run[R, Out, A](w, normalized)
		},
	)
}
