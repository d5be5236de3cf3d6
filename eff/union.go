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

// union is the untyped carrier behind every Union[R, X]: a tag
// identifying which effect constructor is present, and its opaque
// payload. This mirrors the teacher's pair package, which likewise
// backs its strongly typed Pair[A,B] with an unexported struct of two
// `any` fields and recovers the static type at the accessor boundary
// with a single type assertion.
type union struct {
	tag     tagKeyRef
	payload any
}

// Union is a tagged disjoint sum over effect row R carrying a payload
// whose static type is determined by whichever row member the tag
// names. R never appears in the run-time representation; it exists
// purely so the API surface (Inject/Project/Accept/Extract, and every
// handler built on them) can be written against a specific row shape.
type Union[R, X any] union

// Union1 injects a payload into the single-effect row Fx1[M].
func Union1[M, X any](tag Tag[M], mx M) Union[Fx1[M], X] {
	return Union[Fx1[M], X]{tag: tag.ref(), payload: mx}
}

// UnionAppendL re-tags a Union known to live in the left branch L of an
// appended row FxAppend[L, Rr], without touching the payload.
func UnionAppendL[L, Rr, X any](u Union[L, X]) Union[FxAppend[L, Rr], X] {
	return retag[L, FxAppend[L, Rr], X](u)
}

// UnionAppendR re-tags a Union known to live in the right branch Rr of
// an appended row FxAppend[L, Rr], without touching the payload.
func UnionAppendR[L, Rr, X any](u Union[Rr, X]) Union[FxAppend[L, Rr], X] {
	return retag[Rr, FxAppend[L, Rr], X](u)
}

// Union2L and Union2R are convenience constructors for the common
// two-effect row Fx2[M1, M2], injecting into the left or right leaf.
func Union2L[M1, M2, X any](tag Tag[M1], m1 M1) Union[Fx2[M1, M2], X] {
	return UnionAppendL[Fx1[M1], Fx1[M2]](Union1[M1, X](tag, m1))
}

func Union2R[M1, M2, X any](tag Tag[M2], m2 M2) Union[Fx2[M1, M2], X] {
	return UnionAppendR[Fx1[M1], Fx1[M2]](Union1[M2, X](tag, m2))
}

// Union3L, Union3M and Union3R are the three-effect-row counterparts of
// Union2L/Union2R, injecting into the first, second or third leaf of
// Fx3[M1, M2, M3].
func Union3L[M1, M2, M3, X any](tag Tag[M1], m1 M1) Union[Fx3[M1, M2, M3], X] {
	return UnionAppendL[Fx2[M1, M2], Fx1[M3]](Union2L[M1, M2, X](tag, m1))
}

func Union3M[M1, M2, M3, X any](tag Tag[M2], m2 M2) Union[Fx3[M1, M2, M3], X] {
	return UnionAppendL[Fx2[M1, M2], Fx1[M3]](Union2R[M1, M2, X](tag, m2))
}

func Union3R[M1, M2, M3, X any](tag Tag[M3], m3 M3) Union[Fx3[M1, M2, M3], X] {
	return UnionAppendR[Fx2[M1, M2], Fx1[M3]](Union1[M3, X](tag, m3))
}

// retag rebuilds a Union under a different phantom row, keeping the
// run-time tag and payload untouched. Every accept/weakening operation
// in this package is this one cast, confined here and in member.go per
// the invariant documented in spec.md §3/§9.
func retag[From, To, X any](u Union[From, X]) Union[To, X] {
	return Union[To, X]{tag: u.tag, payload: u.payload}
}
