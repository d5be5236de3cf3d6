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

// Do is the per-effect decision a stateful handler makes when it meets
// one occurrence of M in a monadic (Impure) position: produce the
// value to resume the continuation with and the handler's next private
// state, or set Term to short-circuit the whole interpretation with an
// already-finished program (spec.md §4.G, the short-circuiting
// handlers optionfx and errorfx both return Term).
type Do[X, S, Out, B any] struct {
	X    X
	S    S
	Term Eff[Out, B]
	Ok   bool
}

// Continue builds the "keep going with this value" branch of Do.
func Continue[X, S, Out, B any](x X, s S) Do[X, S, Out, B] {
	return Do[X, S, Out, B]{X: x, S: s, Ok: true}
}

// Terminate builds the "stop, the answer is already known" branch of
// Do.
func Terminate[X, S, Out, B any](term Eff[Out, B]) Do[X, S, Out, B] {
	return Do[X, S, Out, B]{Term: term}
}

// InterpretState is the general stateful handler combinator (spec.md
// §4.G): it removes M from the row, threading a private state S across
// every occurrence and transforming the final pure value with pure.
// doFn decides each monadic occurrence; doApplicative decides whether a
// whole batch can be resolved together, falling back to doFn run once
// per element (in original order) when it returns ok=false — the same
// sequencing an interpreter without a genuine batched operation would
// produce by construction.
func InterpretState[M, X, S, R, Out, A, B any](
	w Member[M, R, Out],
	init S,
	pure func(a A, s S) B,
	doFn func(mx M, s S) Do[X, S, Out, B],
	doApplicative func(mxs []M, s S) ([]X, S, bool),
	e Eff[R, A],
) Eff[Out, B] {
	loop := Loop[M, X, S, R, A, Out, B]{
		Init: init,
		OnPure: func(a A, s S) Step[R, A, S, Out, B] {
			return StepDone[R, A, S, Out, B](Pure[Out, B](pure(a, s)))
		},
		OnEffect: func(mx M, k Arrs[R, X, A], s S) Step[R, A, S, Out, B] {
			d := doFn(mx, s)
			if !d.Ok {
				return StepDone[R, A, S, Out, B](d.Term)
			}
			return StepContinue[R, A, S, Out, B](ArrsApply(k, d.X), d.S)
		},
		OnApplicativeEffect: func(mxs []M, k func([]any) Eff[Out, B], s S) Step[R, A, S, Out, B] {
			xs, s2, ok := doApplicative(mxs, s)
			if ok {
				anyXs := make([]any, len(xs))
				for i, x := range xs {
					anyXs[i] = x
				}
				return StepDone[R, A, S, Out, B](k(anyXs))
			}
			// Fall back: resolve the batch one element at a time, in
			// original order, stopping early if any element demands
			// termination.
			cur := s
			anyXs := make([]any, len(mxs))
			for i, mx := range mxs {
				d := doFn(mx, cur)
				if !d.Ok {
					return StepDone[R, A, S, Out, B](d.Term)
				}
				anyXs[i] = d.X
				cur = d.S
			}
			return StepDone[R, A, S, Out, B](k(anyXs))
		},
	}
	return InterpretLoop[M, X, S, R, Out, A, B](w, loop, e)
}

// Interpret is InterpretState without a handler state, for effects
// whose handling of one occurrence never depends on prior occurrences
// (statefx's Ask-like reads, optionfx, errorfx).
func Interpret[M, X, R, Out, A, B any](
	w Member[M, R, Out],
	pure func(a A) B,
	doFn func(mx M) Do[X, struct{}, Out, B],
	doApplicative func(mxs []M) ([]X, bool),
	e Eff[R, A],
) Eff[Out, B] {
	return InterpretState[M, X, struct{}, R, Out, A, B](
		w, struct{}{},
		func(a A, _ struct{}) B { return pure(a) },
		func(mx M, _ struct{}) Do[X, struct{}, Out, B] { return doFn(mx) },
		func(mxs []M, _ struct{}) ([]X, struct{}, bool) {
			xs, ok := doApplicative(mxs)
			return xs, struct{}{}, ok
		},
		e,
	)
}

// InterpretUnsafe runs side effects directly as it walks the program,
// rather than building up a description of them — the shape
// loggingfx's real backend and retryfx's sleep/attempt loop both need.
// Handlers reached for by this instead of Interpret must be unable to
// express what they do as a pure value transform (spec.md §6).
func InterpretUnsafe[M, X, R, Out, A any](w Member[M, R, Out], run func(mx M) X, e Eff[R, A]) Eff[Out, A] {
	return Interpret[M, X, R, Out, A, A](
		w,
		func(a A) A { return a },
		func(mx M) Do[X, struct{}, Out, A] {
			return Continue[X, struct{}, Out, A](run(mx), struct{}{})
		},
		func(mxs []M) ([]X, bool) {
			xs := make([]X, len(mxs))
			for i, mx := range mxs {
				xs[i] = run(mx)
			}
			return xs, true
		},
		e,
	)
}

// Translate rewrites every occurrence of M into a program over the
// reduced row RN, rather than into a plain value (spec.md §6's
// Translate shape) — the mechanism errorfx uses to recover from a
// failure by substituting a different effect, and listfx uses to
// desugar Choose into repeated Sends of a simpler primitive. Unlike
// Interpret, the replacement can itself perform further effects, so it
// is written directly against the kernel rather than through Do.
func Translate[M, X, R, RN, A any](w Member[M, R, RN], into func(mx M) Eff[RN, X], e Eff[R, A]) Eff[RN, A] {
	loop := Loop[M, X, struct{}, R, A, RN, A]{
		Init: struct{}{},
		OnPure: func(a A, _ struct{}) Step[R, A, struct{}, RN, A] {
			return StepDone[R, A, struct{}, RN, A](Pure[RN, A](a))
		},
		OnEffect: func(mx M, k Arrs[R, X, A], _ struct{}) Step[R, A, struct{}, RN, A] {
			rest := MonadChain(into(mx), func(x X) Eff[RN, A] {
				return Translate[M, X, R, RN, A](w, into, ArrsApply(k, x))
			})
			return StepDone[R, A, struct{}, RN, A](rest)
		},
		OnApplicativeEffect: func(mxs []M, k func([]any) Eff[RN, A], _ struct{}) Step[R, A, struct{}, RN, A] {
			progs := make([]Eff[RN, X], len(mxs))
			for i, mx := range mxs {
				progs[i] = into(mx)
			}
			rest := MonadChain(Sequence(progs), func(xs []X) Eff[RN, A] {
				anyXs := make([]any, len(xs))
				for i, x := range xs {
					anyXs[i] = x
				}
				return k(anyXs)
			})
			return StepDone[R, A, struct{}, RN, A](rest)
		},
	}
	return InterpretLoop[M, X, struct{}, R, RN, A, A](w, loop, e)
}
