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

// NoFx is the empty effect row: a program typed Eff[NoFx, A] cannot
// invoke any effect and can only ever be a Pure value.
type NoFx struct{}

// Fx1 is a row leaf: a single effect constructor M.
type Fx1[M any] struct{}

// FxAppend is the append of two rows, forming the binary-tree shape
// every larger row is built from.
type FxAppend[L, Rr any] struct{}

// Fx2, Fx3, Fx4 and Fx5 are convenience aliases for the common small
// rows, all expressed as a left-leaning FxAppend tree of Fx1 leaves so
// that membership search always has a single, structural shape to
// recurse on.
type (
	Fx2[M1, M2 any]             = FxAppend[Fx1[M1], Fx1[M2]]
	Fx3[M1, M2, M3 any]         = FxAppend[Fx2[M1, M2], Fx1[M3]]
	Fx4[M1, M2, M3, M4 any]     = FxAppend[Fx3[M1, M2, M3], Fx1[M4]]
	Fx5[M1, M2, M3, M4, M5 any] = FxAppend[Fx4[M1, M2, M3, M4], Fx1[M5]]
)

// tagKey is the run-time identity of one effect constructor. Two Union
// values carry the same effect iff their tags are the same *tagKey,
// following the same "unexported comparable key" idiom the standard
// library's context package uses for context.WithValue keys.
type tagKey struct{ name string }

// Tag is the run-time witness that row-position bookkeeping is built on.
// Every leaf Fx1[M] has exactly one Tag[M] minted for it by NewTag; the
// membership machinery in member.go compares Tags by identity, never by
// inspecting M's payload.
type Tag[M any] struct {
	key *tagKey
}

// NewTag mints a fresh, globally unique Tag for effect constructor M. An
// effect module calls this once, in a package-level var, and shares the
// resulting Tag across all of its Send/Member constructors.
func NewTag[M any](name string) Tag[M] {
	return Tag[M]{key: &tagKey{name: name}}
}

// String returns the human-readable name the tag was minted with, for
// diagnostics (fatal-error messages in run.go use it).
func (t Tag[M]) String() string {
	if t.key == nil {
		return "<nil-tag>"
	}
	return t.key.name
}

// equal reports whether other is this tag's own erased identity,
// the comparison every Project/Extract does to discriminate a Union.
func (t Tag[M]) equal(other tagKeyRef) bool {
	return t.key == other
}

// tagKeyRef is the type-erased form of a Tag's identity, used internally
// by Union so that a single concrete struct can carry a tag for any row
// shape without needing one Union variant per shape.
type tagKeyRef = *tagKey

func (t Tag[M]) ref() tagKeyRef {
	return t.key
}
