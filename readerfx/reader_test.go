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

package readerfx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sourya7/go-eff/eff"
)

type config struct {
	Name string
}

var configTag = NewTag[config]("config")
var configMember = eff.MemberFx1(configTag)

func TestAsk(t *testing.T) {
	prog := Ask[eff.Fx1[Cmd[config]], eff.NoFx, config](configMember)
	got := eff.Run(Run[eff.Fx1[Cmd[config]], eff.NoFx, config, config](configMember, config{Name: "prod"}, prog))
	assert.Equal(t, "prod", got.Name)
}

func TestAsks(t *testing.T) {
	prog := Asks[eff.Fx1[Cmd[config]], eff.NoFx, config, int](configMember, func(c config) int { return len(c.Name) })
	got := eff.Run(Run[eff.Fx1[Cmd[config]], eff.NoFx, config, int](configMember, config{Name: "prod"}, prog))
	assert.Equal(t, 4, got)
}

func TestEnvironmentIsFixedAcrossMultipleAsks(t *testing.T) {
	prog := eff.Product(
		Ask[eff.Fx1[Cmd[config]], eff.NoFx, config](configMember),
		Ask[eff.Fx1[Cmd[config]], eff.NoFx, config](configMember),
	)
	got := eff.Run(Run[eff.Fx1[Cmd[config]], eff.NoFx, config, eff.Pair2[config, config]](configMember, config{Name: "x"}, prog))
	assert.Equal(t, got.First, got.Second)
}
