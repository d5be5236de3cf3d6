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

// package retryfx layers retry semantics over an already-interpreted
// program, grounded directly on the teacher's retry.RetryStatus,
// retry.RetryPolicy and retry.ApplyPolicy: WithRetry drives repeated
// attempts the same way the teacher's own policies are meant to be
// driven, consulting the policy after each failed attempt and sleeping
// for the delay it returns, stopping the moment the policy answers
// option.None.
package retryfx

import (
	"time"

	"github.com/sourya7/go-eff/either"
	"github.com/sourya7/go-eff/option"
	R "github.com/sourya7/go-eff/retry"
)

// WithRetry runs attempt, and while it returns a Left, consults policy
// against the accumulating retry.RetryStatus: a Some delay sleeps and
// retries, a None delay stops and returns the last Left.
func WithRetry[E, A any](policy R.RetryPolicy, attempt func() either.Either[E, A]) either.Either[E, A] {
	status := R.DefaultRetryStatus
	for {
		result := attempt()
		if either.MonadFold(result, func(E) bool { return false }, func(A) bool { return true }) {
			return result
		}
		delay := policy(status)
		shouldRetry := option.MonadFold(delay, func() bool { return false }, func(time.Duration) bool { return true })
		if !shouldRetry {
			return result
		}
		d := option.GetOrElse(func() time.Duration { return 0 })(delay)
		time.Sleep(d)
		status = R.ApplyPolicy(policy, status)
	}
}
