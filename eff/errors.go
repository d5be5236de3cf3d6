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

import "fmt"

// Violation is the kind of row-discipline violation a ViolationError
// reports. These are all programmer errors — they mean a program was
// built or run against the wrong row — and are never expected to
// surface once a module's effect row accounting is correct.
type Violation int

const (
	// ViolationNonEmptyRow means run or runPure was called on a program
	// that still had at least one un-interpreted effect left.
	ViolationNonEmptyRow Violation = iota
	// ViolationArityMismatch means an ImpureAp's zipper was invoked with
	// a different number of results than the batch it was built from.
	ViolationArityMismatch
	// ViolationNotAMonad means detach was asked to peel an effect whose
	// carrier type does not implement Monad.
	ViolationNotAMonad
)

func (v Violation) String() string {
	switch v {
	case ViolationNonEmptyRow:
		return "non-empty effect row"
	case ViolationArityMismatch:
		return "applicative arity mismatch"
	case ViolationNotAMonad:
		return "detach target is not a monad"
	default:
		return "unknown violation"
	}
}

// ViolationError reports a row-discipline violation caught at run time.
// It always indicates a bug in how a program's row was constructed or
// interpreted, never a domain-level failure — domain failures belong in
// an effect module's own result type (errorfx, optionfx), not here.
type ViolationError struct {
	Kind    Violation
	Message string
}

func (e *ViolationError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is a ViolationError of the same Kind,
// supporting errors.Is(err, &ViolationError{Kind: ...}).
func (e *ViolationError) Is(target error) bool {
	other, ok := target.(*ViolationError)
	return ok && other.Kind == e.Kind
}

func newViolation(kind Violation, format string, args ...any) *ViolationError {
	return &ViolationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
