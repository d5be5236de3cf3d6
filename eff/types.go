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

// Lazy is a suspended computation producing an A, used by Suspend and
// by the retry/loop combinators.
type Lazy[A any] = func() A

// Predicate tests a value of type A.
type Predicate[A any] = func(A) bool

// Kleisli is an effectful function from A to Eff[R, B], the fundamental
// building block Chain, Traverse and every handler compose with.
type Kleisli[R, A, B any] = func(A) Eff[R, B]

// Operator transforms Eff[R, A] into Eff[R, B]; Map and Chain both
// return one once partially applied.
type Operator[R, A, B any] = func(Eff[R, A]) Eff[R, B]

// Pair2 is the minimal two-field product Product and Traverse build on.
// It intentionally does not reuse the teacher's pair.Pair: that type
// erases both fields behind `any` for a general-purpose library type,
// while here the fields are already concrete generic parameters and a
// plain struct is the simpler, equally idiomatic choice.
type Pair2[A, B any] struct {
	First  A
	Second B
}
