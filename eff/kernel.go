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

// Step is what a Loop callback returns: either "keep going" with a new
// program and state (typed in the original row R and value A), or
// "stop", handing back the interpreter's final program (typed in the
// reduced row Out and the handler's own result type B).
type Step[R, A, S, Out, B any] struct {
	done bool
	next Eff[R, A]
	s    S
	term Eff[Out, B]
}

// StepContinue asks the driver to keep looping with a new program and
// state.
func StepContinue[R, A, S, Out, B any](e Eff[R, A], s S) Step[R, A, S, Out, B] {
	return Step[R, A, S, Out, B]{next: e, s: s}
}

// StepDone asks the driver to stop and hand back t.
func StepDone[R, A, S, Out, B any](t Eff[Out, B]) Step[R, A, S, Out, B] {
	return Step[R, A, S, Out, B]{done: true, term: t}
}

// Loop is the fully general handler protocol every other combinator in
// handlers.go is built from (spec.md §4.F). M is the effect being
// consumed, X its result type, S the handler's private running state,
// R the row being interpreted, Out what remains of it once M is
// removed, and B the value type the handler ultimately produces.
type Loop[M, X, S, R, A, Out, B any] struct {
	Init                S
	OnPure              func(a A, s S) Step[R, A, S, Out, B]
	OnEffect            func(mx M, k Arrs[R, X, A], s S) Step[R, A, S, Out, B]
	OnApplicativeEffect func(mxs []M, k func([]any) Eff[Out, B], s S) Step[R, A, S, Out, B]
}

// InterpretLoop is the single trampoline every handler combinator
// drives: it never recurses into the program tree, so arbitrarily long
// monadic chains and arbitrarily large applicative batches are consumed
// in bounded stack (spec.md §5, §8.4). Whenever it meets an effect
// foreign to w it rebuilds that node in the reduced row and lazily
// re-enters the loop once the enclosing interpreter resumes it — the
// only recursion InterpretLoop performs is this one, and it happens at
// most once per foreign node encountered, not once per step.
func InterpretLoop[M, X, S, R, Out, A, B any](w Member[M, R, Out], loop Loop[M, X, S, R, A, Out, B], e0 Eff[R, A]) Eff[Out, B] {
	cur := e0
	s := loop.Init
	for {
		core := effDown(cur)
		switch core.kind {
		case effPure:
			step := loop.OnPure(core.pureVal.(A), s)
			if step.done {
				return step.term
			}
			cur, s = step.next, step.s

		case effImpure:
			outU, m, ok := Project[M, R, Out, any](w, Union[R, any](core.u))
			if ok {
				k := arrsUp[R, X, A](core.k)
				step := loop.OnEffect(m, k, s)
				if step.done {
					return step.term
				}
				cur, s = step.next, step.s
				continue
			}
			// Foreign effect: rebuild it in the reduced row and lazily
			// re-drive the remaining program through this same loop
			// once the outer handler resumes the continuation. This
			// is what keeps independently composed handlers
			// stack-safe with respect to each other.
			innerK := arrsUp[R, any, A](core.k)
			capturedS := s
			newK := ArrsSingleton[Out, any, B](func(x any) Eff[Out, B] {
				return InterpretLoop[M, X, S, R, Out, A, B](w, Loop[M, X, S, R, A, Out, B]{
					Init:                capturedS,
					OnPure:              loop.OnPure,
					OnEffect:            loop.OnEffect,
					OnApplicativeEffect: loop.OnApplicativeEffect,
				}, ArrsApply(innerK, x))
			})
			return Impure[Out, any, B](outU, newK)

		default:
			collected := UnionsProject[M, R, Out, any](w, unionsUp[R, any](core.us))
			total := UnionsSize(unionsUp[R, any](core.us))
			zf := core.apF
			capturedS := s

			if len(collected.Effects) == 0 {
				// The whole batch is foreign: rebuild it under Out,
				// run it, and resume this same loop on the Pure result
				// once it resolves.
				us := rebuildOthers[Out](collected.Others)
				rebuilt := ImpureAp[Out, any, A](us, func(xs []any) A {
					return zf(reorder(total, nil, nil, xs, collected.OtherIndices)).(A)
				})
				return MonadChain(rebuilt, func(a A) Eff[Out, B] {
					return InterpretLoop[M, X, S, R, Out, A, B](w, Loop[M, X, S, R, A, Out, B]{
						Init:                capturedS,
						OnPure:              loop.OnPure,
						OnEffect:            loop.OnEffect,
						OnApplicativeEffect: loop.OnApplicativeEffect,
					}, Pure[R, A](a))
				})
			}

			k := func(ls []any) Eff[Out, B] {
				finish := func(a A) Eff[Out, B] {
					return InterpretLoop[M, X, S, R, Out, A, B](w, Loop[M, X, S, R, A, Out, B]{
						Init:                capturedS,
						OnPure:              loop.OnPure,
						OnEffect:            loop.OnEffect,
						OnApplicativeEffect: loop.OnApplicativeEffect,
					}, Pure[R, A](a))
				}
				if len(collected.Others) == 0 {
					a := zf(reorder(total, ls, collected.Indices, nil, nil)).(A)
					return finish(a)
				}
				us := rebuildOthers[Out](collected.Others)
				rebuiltA := ImpureAp[Out, any, A](us, func(xs []any) A {
					return zf(reorder(total, ls, collected.Indices, xs, collected.OtherIndices)).(A)
				})
				return MonadChain(rebuiltA, finish)
			}
			step := loop.OnApplicativeEffect(collected.Effects, k, s)
			if step.done {
				return step.term
			}
			cur, s = step.next, step.s
		}
	}
}

// rebuildOthers turns the non-matching slice a CollectedUnions
// produced back into a Unions batch typed in the reduced row.
func rebuildOthers[Out any](others []Union[Out, any]) Unions[Out, any] {
	us := UnionsOf[Out, any](others[0])
	for _, o := range others[1:] {
		us = UnionsAppend(us, UnionsOf[Out, any](o))
	}
	return us
}
