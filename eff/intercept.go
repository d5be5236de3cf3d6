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

// InterceptLoop is InterpretLoop's in-place counterpart (spec.md §4.F):
// M is not removed from the row, so every non-matching effect is
// rebuilt untouched in the same R rather than retagged into a smaller
// Out, and the witness is the weaker "M /= R" shape — a Member[M, R, R]
// used only for its tag, via Extract instead of Project.
func InterceptLoop[M, X, S, R, A, B any](w Member[M, R, R], loop Loop[M, X, S, R, A, R, B], e0 Eff[R, A]) Eff[R, B] {
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
			u := Union[R, any](core.u)
			m, ok := Extract[M, R, R, any](w, u)
			if ok {
				k := arrsUp[R, X, A](core.k)
				step := loop.OnEffect(m, k, s)
				if step.done {
					return step.term
				}
				cur, s = step.next, step.s
				continue
			}
			innerK := arrsUp[R, any, A](core.k)
			capturedS := s
			newK := ArrsSingleton[R, any, B](func(x any) Eff[R, B] {
				return InterceptLoop[M, X, S, R, A, B](w, Loop[M, X, S, R, A, R, B]{
					Init:                capturedS,
					OnPure:              loop.OnPure,
					OnEffect:            loop.OnEffect,
					OnApplicativeEffect: loop.OnApplicativeEffect,
				}, ArrsApply(innerK, x))
			})
			return Impure[R, any, B](u, newK)

		default:
			us := unionsUp[R, any](core.us)
			extracted := UnionsExtract[M, R, R, any](w, us)
			total := UnionsSize(us)
			zf := core.apF
			capturedS := s

			resume := func(a A) Eff[R, B] {
				return InterceptLoop[M, X, S, R, A, B](w, Loop[M, X, S, R, A, R, B]{
					Init:                capturedS,
					OnPure:              loop.OnPure,
					OnEffect:            loop.OnEffect,
					OnApplicativeEffect: loop.OnApplicativeEffect,
				}, Pure[R, A](a))
			}

			if len(extracted.Effects) == 0 {
				rebuilt := ImpureAp[R, any, A](us, func(xs []any) A { return zf(xs).(A) })
				return MonadChain(rebuilt, resume)
			}

			k := func(ls []any) Eff[R, B] {
				if len(extracted.Others) == 0 {
					a := zf(reorder(total, ls, extracted.Indices, nil, nil)).(A)
					return resume(a)
				}
				others := rebuildOthers[R](extracted.Others)
				rebuiltA := ImpureAp[R, any, A](others, func(xs []any) A {
					return zf(reorder(total, ls, extracted.Indices, xs, extracted.OtherIndices)).(A)
				})
				return MonadChain(rebuiltA, resume)
			}
			step := loop.OnApplicativeEffect(extracted.Effects, k, s)
			if step.done {
				return step.term
			}
			cur, s = step.next, step.s
		}
	}
}

// InterceptState is InterpretState's in-place counterpart: M is
// rewritten wherever it occurs but stays a member of R.
func InterceptState[M, X, S, R, A, B any](
	w Member[M, R, R],
	init S,
	pure func(a A, s S) B,
	doFn func(mx M, s S) Do[X, S, R, B],
	doApplicative func(mxs []M, s S) ([]X, S, bool),
	e Eff[R, A],
) Eff[R, B] {
	loop := Loop[M, X, S, R, A, R, B]{
		Init: init,
		OnPure: func(a A, s S) Step[R, A, S, R, B] {
			return StepDone[R, A, S, R, B](Pure[R, B](pure(a, s)))
		},
		OnEffect: func(mx M, k Arrs[R, X, A], s S) Step[R, A, S, R, B] {
			d := doFn(mx, s)
			if !d.Ok {
				return StepDone[R, A, S, R, B](d.Term)
			}
			return StepContinue[R, A, S, R, B](ArrsApply(k, d.X), d.S)
		},
		OnApplicativeEffect: func(mxs []M, k func([]any) Eff[R, B], s S) Step[R, A, S, R, B] {
			xs, _, ok := doApplicative(mxs, s)
			if ok {
				anyXs := make([]any, len(xs))
				for i, x := range xs {
					anyXs[i] = x
				}
				return StepDone[R, A, S, R, B](k(anyXs))
			}
			cur := s
			anyXs := make([]any, len(mxs))
			for i, mx := range mxs {
				d := doFn(mx, cur)
				if !d.Ok {
					return StepDone[R, A, S, R, B](d.Term)
				}
				anyXs[i] = d.X
				cur = d.S
			}
			return StepDone[R, A, S, R, B](k(anyXs))
		},
	}
	return InterceptLoop[M, X, S, R, A, B](w, loop, e)
}

// Intercept is InterceptState without a handler state.
func Intercept[M, X, R, A, B any](
	w Member[M, R, R],
	pure func(a A) B,
	doFn func(mx M) Do[X, struct{}, R, B],
	doApplicative func(mxs []M) ([]X, bool),
	e Eff[R, A],
) Eff[R, B] {
	return InterceptState[M, X, struct{}, R, A, B](
		w, struct{}{},
		func(a A, _ struct{}) B { return pure(a) },
		func(mx M, _ struct{}) Do[X, struct{}, R, B] { return doFn(mx) },
		func(mxs []M, _ struct{}) ([]X, struct{}, bool) {
			xs, ok := doApplicative(mxs)
			return xs, struct{}{}, ok
		},
		e,
	)
}

// InterpretStatelessLoop is InterpretLoop with the handler state forced
// to struct{} (spec.md §6's name for this shape) — for a fully general
// Loop handler that has no running accumulator of its own.
func InterpretStatelessLoop[M, X, R, Out, A, B any](w Member[M, R, Out], loop Loop[M, X, struct{}, R, A, Out, B], e Eff[R, A]) Eff[Out, B] {
	return InterpretLoop[M, X, struct{}, R, Out, A, B](w, loop, e)
}

// InterceptStatelessLoop is InterceptLoop with the handler state forced
// to struct{}.
func InterceptStatelessLoop[M, X, R, A, B any](w Member[M, R, R], loop Loop[M, X, struct{}, R, A, R, B], e Eff[R, A]) Eff[R, B] {
	return InterceptLoop[M, X, struct{}, R, A, B](w, loop, e)
}
