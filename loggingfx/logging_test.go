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

package loggingfx

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sourya7/go-eff/eff"
)

var logTag = NewTag("log")
var logMember = eff.MemberFx1(logTag)

func TestInfoAndWarnWriteThroughTheGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	prog := eff.MonadChain(
		Info[eff.Fx1[Cmd], eff.NoFx](logMember, "starting %s", "up"),
		func(struct{}) eff.Eff[eff.Fx1[Cmd], struct{}] {
			return Warn[eff.Fx1[Cmd], eff.NoFx](logMember, "retrying %d", 3)
		})

	eff.Run(Run[eff.Fx1[Cmd], eff.NoFx, struct{}](logMember, prog, logger))

	out := buf.String()
	assert.Contains(t, out, "starting up")
	assert.Contains(t, out, "retrying 3")
}
