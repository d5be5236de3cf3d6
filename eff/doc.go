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

// package eff implements an extensible-effects runtime: a free monad over
// an open, user-extensible row of effect constructors.
//
// A program is a value of type Eff[R, A] built from pure, Send, Map,
// Chain and Ap. The row R names which effect constructors the program may
// invoke; it is resolved structurally via Member witnesses rather than by
// implicit search, since Go has no typeclass resolution. Running a
// program means peeling effects off one at a time with the handler
// combinators in handlers.go until R is empty, at which point run,
// detach or runPure extract the final value.
//
// The package performs no I/O and starts no goroutines; every effect
// module built on top (see the sibling packages statefx, writerfx,
// listfx, readerfx, evalfx, optionfx, errorfx, loggingfx, retryfx) is
// responsible for its own side effects when its interpreter runs.
package eff
