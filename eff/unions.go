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

// unionsCore is the untyped, non-empty ordered list of Union values
// every Unions[R, X] is defined over: a head (kept separate only so
// the monadic normalization in apToImpureCore knows which element to
// evaluate first) and the erased remainder.
type unionsCore struct {
	head union
	rest []union
}

// Unions is a non-empty ordered batch of independent effects, produced
// by Send and merged by Ap. size is always >= 1.
type Unions[R, X any] unionsCore

func unionsUp[R, X any](u unionsCore) Unions[R, X]   { return Unions[R, X](u) }
func unionsDown[R, X any](u Unions[R, X]) unionsCore { return unionsCore(u) }

// UnionsOf wraps a single Union as a size-1 Unions.
func UnionsOf[R, X any](head Union[R, X]) Unions[R, X] {
	return unionsUp[R, X](unionsCore{head: union(head)})
}

// UnionsSize reports how many effects the batch carries.
func UnionsSize[R, X any](us Unions[R, X]) int {
	return 1 + len(us.rest)
}

// UnionsHead returns the first effect of the batch, with its true
// static result type X restored.
func UnionsHead[R, X any](us Unions[R, X]) Union[R, X] {
	return Union[R, X](us.head)
}

// UnionsAppend concatenates two batches, preserving the head of the
// left operand (spec.md §4.C: "preserving the head of this").
func UnionsAppend[R, X any](a Unions[R, X], b Unions[R, any]) Unions[R, X] {
	bc := unionsDown(b)
	rest := make([]union, 0, len(a.rest)+1+len(bc.rest))
	rest = append(rest, a.rest...)
	rest = append(rest, bc.head)
	rest = append(rest, bc.rest...)
	return unionsUp[R, X](unionsCore{head: a.head, rest: rest})
}

// UnionsInto maps every element of the batch through a row-to-row
// transformation, preserving order and the head/rest split.
func UnionsInto[R, U, X any](us Unions[R, X], f func(Union[R, any]) Union[U, any]) Unions[U, X] {
	core := unionsDown(us)
	headU := f(Union[R, any](core.head))
	rest := make([]union, len(core.rest))
	for i, u := range core.rest {
		rest[i] = union(f(Union[R, any](u)))
	}
	return unionsUp[U, X](unionsCore{head: union(headU), rest: rest})
}

// all returns the batch flattened into a single slice, head first.
func (us unionsCore) all() []union {
	out := make([]union, 0, 1+len(us.rest))
	out = append(out, us.head)
	out = append(out, us.rest...)
	return out
}

// CollectedUnions is the partition of a Unions[R, X] produced by a
// Member witness: the targeted effects in original order, the
// remaining effects (re-tagged under Out) in original order, and the
// original index of each so the final zipper can restore the exact
// input order (spec.md §4.C, "positional reordering").
type CollectedUnions[M, Out any] struct {
	Effects      []M
	Others       []Union[Out, any]
	Indices      []int
	OtherIndices []int
}

// UnionsProject partitions us into the effects matching w and the rest,
// preserving order on both sides. It is the batch analogue of Project.
func UnionsProject[M, R, Out, X any](w Member[M, R, Out], us Unions[R, X]) CollectedUnions[M, Out] {
	var c CollectedUnions[M, Out]
	for i, u := range unionsDown(us).all() {
		outU, m, ok := Project[M, R, Out, any](w, Union[R, any](u))
		if ok {
			c.Effects = append(c.Effects, m)
			c.Indices = append(c.Indices, i)
		} else {
			c.Others = append(c.Others, outU)
			c.OtherIndices = append(c.OtherIndices, i)
		}
	}
	return c
}

// UnionsExtract is UnionsProject's in-place counterpart for intercept*
// handlers: matching effects are collected, but the row is not
// narrowed, so "others" stays typed Union[R, any] rather than
// Union[Out, any].
type ExtractedUnions[M, R any] struct {
	Effects      []M
	Others       []Union[R, any]
	Indices      []int
	OtherIndices []int
}

func UnionsExtract[M, R, Out, X any](w Member[M, R, Out], us Unions[R, X]) ExtractedUnions[M, R] {
	var c ExtractedUnions[M, R]
	for i, u := range unionsDown(us).all() {
		m, ok := Extract[M, R, Out, any](w, Union[R, any](u))
		if ok {
			c.Effects = append(c.Effects, m)
			c.Indices = append(c.Indices, i)
		} else {
			c.Others = append(c.Others, Union[R, any](u))
			c.OtherIndices = append(c.OtherIndices, i)
		}
	}
	return c
}

// reorder rebuilds the argument list a zipper expects from the two
// halves an interpreter produced separately: ls at their original
// indices, xs at theirs. total is the original batch size.
func reorder(total int, ls []any, indices []int, xs []any, otherIndices []int) []any {
	out := make([]any, total)
	for i, idx := range indices {
		out[idx] = ls[i]
	}
	for i, idx := range otherIndices {
		out[idx] = xs[i]
	}
	return out
}
