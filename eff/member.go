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

// Member is the witness that effect constructor M occurs somewhere in
// row R, with Out naming R with that one occurrence removed. Go has no
// typeclass resolution, so unlike the Scala original a Member value is
// never derived implicitly: an effect module builds it once, by a short
// chain of MemberAppendL/MemberAppendR calls walking down to the Fx1
// leaf that carries its tag, and hands the result to Send and to its
// runXxx interpreter.
//
// A Member carries nothing but the M tag: Out only ever matters at the
// type level, since the run-time representation of every Union is the
// same tag+payload pair regardless of row shape.
type Member[M, R, Out any] struct {
	tag Tag[M]
}

// MemberFx1 is the base case: M is the only effect of the singleton row
// Fx1[M], so removing it leaves NoFx.
func MemberFx1[M any](tag Tag[M]) Member[M, Fx1[M], NoFx] {
	return Member[M, Fx1[M], NoFx]{tag: tag}
}

// MemberAppendL lifts a witness for the left branch of an append: if M
// is removed from L leaving Out, it is removed from FxAppend[L, Rr]
// leaving FxAppend[Out, Rr].
func MemberAppendL[M, L, Rr, Out any](w Member[M, L, Out]) Member[M, FxAppend[L, Rr], FxAppend[Out, Rr]] {
	return Member[M, FxAppend[L, Rr], FxAppend[Out, Rr]]{tag: w.tag}
}

// MemberAppendR lifts a witness for the right branch of an append: if M
// is removed from Rr leaving Out, it is removed from FxAppend[L, Rr]
// leaving FxAppend[L, Out].
func MemberAppendR[M, L, Rr, Out any](w Member[M, Rr, Out]) Member[M, FxAppend[L, Rr], FxAppend[L, Out]] {
	return Member[M, FxAppend[L, Rr], FxAppend[L, Out]]{tag: w.tag}
}

// Member2L and Member2R are the ready-made witnesses for the two slots
// of Fx2[M1, M2].
func Member2L[M1, M2 any](tag Tag[M1]) Member[M1, Fx2[M1, M2], Fx1[M2]] {
	return MemberAppendL[M1, Fx1[M1], Fx1[M2]](MemberFx1(tag))
}

func Member2R[M1, M2 any](tag Tag[M2]) Member[M2, Fx2[M1, M2], Fx1[M1]] {
	return MemberAppendR[M2, Fx1[M1], Fx1[M2]](MemberFx1(tag))
}

// Member3L, Member3M and Member3R are the ready-made witnesses for the
// three slots of Fx3[M1, M2, M3].
func Member3L[M1, M2, M3 any](tag Tag[M1]) Member[M1, Fx3[M1, M2, M3], Fx2[M2, M3]] {
	return MemberAppendL[M1, Fx2[M1, M2], Fx1[M3]](Member2L[M1, M2](tag))
}

func Member3M[M1, M2, M3 any](tag Tag[M2]) Member[M2, Fx3[M1, M2, M3], Fx2[M1, M3]] {
	return MemberAppendL[M2, Fx2[M1, M2], Fx1[M3]](Member2R[M1, M2](tag))
}

func Member3R[M1, M2, M3 any](tag Tag[M3]) Member[M3, Fx3[M1, M2, M3], Fx2[M1, M2]] {
	return MemberAppendR[M3, Fx2[M1, M2], Fx1[M3]](MemberFx1(tag))
}

// Inject wraps an effect payload as a Union of row R, using w only for
// its tag.
func Inject[M, R, Out, X any](w Member[M, R, Out], mx M) Union[R, X] {
	return Union[R, X]{tag: w.tag.ref(), payload: mx}
}

// Project discriminates a Union[R, X]: if its tag matches w, the M
// payload is returned with ok=true; otherwise the Union is handed back
// re-tagged under the smaller row Out (the payload is untouched, only
// the phantom row parameter changes), with ok=false.
func Project[M, R, Out, X any](w Member[M, R, Out], u Union[R, X]) (Union[Out, X], M, bool) {
	if w.tag.equal(u.tag) {
		return Union[Out, X]{}, u.payload.(M), true
	}
	return retag[R, Out, X](u), *new(M), false
}

// Accept re-embeds a Union known to live in the smaller row Out back
// into R. It never inspects the payload.
func Accept[M, R, Out, X any](w Member[M, R, Out], u Union[Out, X]) Union[R, X] {
	return retag[Out, R, X](u)
}

// Extract is the weaker, in-place discriminator used by intercept*: it
// keeps R unchanged, only reporting whether u happens to carry M.
func Extract[M, R, Out, X any](w Member[M, R, Out], u Union[R, X]) (M, bool) {
	if w.tag.equal(u.tag) {
		return u.payload.(M), true
	}
	return *new(M), false
}
