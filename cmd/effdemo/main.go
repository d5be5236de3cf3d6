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

// Command effdemo runs the end-to-end scenarios of the effect system
// as urfave/cli/v2 subcommands, one per scenario, mirroring the
// teacher's own cli package (Commands() []*cli.Command, one Command
// per module, each with a short Action).
package main

import (
	"fmt"
	"log"
	"os"

	C "github.com/urfave/cli/v2"

	"github.com/sourya7/go-eff/eff"
	"github.com/sourya7/go-eff/listfx"
	"github.com/sourya7/go-eff/statefx"
	"github.com/sourya7/go-eff/writerfx"
)

func scenario1() *C.Command {
	return &C.Command{
		Name:  "pure",
		Usage: "pure(3) run over NoFx",
		Action: func(ctx *C.Context) error {
			result := eff.Run(eff.Pure[eff.NoFx, int](3))
			fmt.Println(result)
			return nil
		},
	}
}

func scenario2() *C.Command {
	return &C.Command{
		Name:  "list-product",
		Usage: "send(List(1,2,3)) then send(List(10,20)), multiplied, run by runList",
		Action: func(ctx *C.Context) error {
			tag := listfx.NewTag[int]("ints")
			w := eff.MemberFx1(tag)
			prog := eff.MonadChain(
				listfx.Choose[eff.Fx1[listfx.Cmd[int]], eff.NoFx, int](w, []int{1, 2, 3}),
				func(x int) eff.Eff[eff.Fx1[listfx.Cmd[int]], int] {
					return eff.MonadMap(
						listfx.Choose[eff.Fx1[listfx.Cmd[int]], eff.NoFx, int](w, []int{10, 20}),
						func(y int) int { return x * y })
				})
			results := eff.Run(listfx.Run[eff.Fx1[listfx.Cmd[int]], eff.NoFx, int](w, prog))
			fmt.Println(results)
			return nil
		},
	}
}

func scenario3() *C.Command {
	return &C.Command{
		Name:  "writer-log",
		Usage: "tell(a) *> tell(b) *> pure(7) run by runWriter",
		Action: func(ctx *C.Context) error {
			tag := writerfx.NewTag[[]string]("log")
			w := eff.MemberFx1(tag)
			m := stringListMonoid{}
			prog := eff.MonadChain(
				writerfx.Tell[eff.Fx1[writerfx.Cmd[[]string]], eff.NoFx, []string](w, []string{"a"}),
				func(struct{}) eff.Eff[eff.Fx1[writerfx.Cmd[[]string]], struct{}] {
					return writerfx.Tell[eff.Fx1[writerfx.Cmd[[]string]], eff.NoFx, []string](w, []string{"b"})
				})
			full := eff.MonadChain(prog, func(struct{}) eff.Eff[eff.Fx1[writerfx.Cmd[[]string]], int] {
				return eff.Pure[eff.Fx1[writerfx.Cmd[[]string]], int](7)
			})
			pair := eff.Run(writerfx.Run[eff.Fx1[writerfx.Cmd[[]string]], eff.NoFx, []string, int](w, m, full))
			fmt.Printf("(%d, %v)\n", pair.First, pair.Second)
			return nil
		},
	}
}

func scenario5() *C.Command {
	return &C.Command{
		Name:  "state-counter",
		Usage: "(get.flatMap(x => put(x+1))) *> get, initial 41, run by runState",
		Action: func(ctx *C.Context) error {
			tag := statefx.NewTag[int]("counter")
			w := eff.MemberFx1(tag)
			step := eff.MonadChain(
				statefx.Get[eff.Fx1[statefx.Cmd[int]], eff.NoFx, int](w),
				func(x int) eff.Eff[eff.Fx1[statefx.Cmd[int]], struct{}] {
					return statefx.Put[eff.Fx1[statefx.Cmd[int]], eff.NoFx, int](w, x+1)
				})
			prog := eff.MonadChain(step, func(struct{}) eff.Eff[eff.Fx1[statefx.Cmd[int]], int] {
				return statefx.Get[eff.Fx1[statefx.Cmd[int]], eff.NoFx, int](w)
			})
			pair := eff.Run(statefx.Run[eff.Fx1[statefx.Cmd[int]], eff.NoFx, int, int](w, 41, prog))
			fmt.Printf("(%d, %d)\n", pair.First, pair.Second)
			return nil
		},
	}
}

func scenario4() *C.Command {
	return &C.Command{
		Name:  "list-ap",
		Usage: "ap(send(List(+1,*2)))(send(List(10,20))), run by runList",
		Action: func(ctx *C.Context) error {
			tag := listfx.NewTag[int]("ap-ints")
			w := eff.MemberFx1(tag)
			fns := []func(int) int{
				func(a int) int { return a + 1 },
				func(a int) int { return a * 2 },
			}
			fa := listfx.Choose[eff.Fx1[listfx.Cmd[int]], eff.NoFx, int](w, []int{10, 20})
			ff := eff.MonadMap(
				listfx.Choose[eff.Fx1[listfx.Cmd[int]], eff.NoFx, int](w, []int{0, 1}),
				func(idx int) func(int) int { return fns[idx] })
			results := eff.Run(listfx.Run[eff.Fx1[listfx.Cmd[int]], eff.NoFx, int](w, eff.MonadAp[eff.Fx1[listfx.Cmd[int]], int, int](ff, fa)))
			fmt.Println(results)
			return nil
		},
	}
}

func scenario6() *C.Command {
	return &C.Command{
		Name:  "writer-then-state",
		Usage: "a Writer program weakened into a {Writer, State} row, Writer run first, State left untouched",
		Action: func(ctx *C.Context) error {
			writerTag := writerfx.NewTag[[]string]("events")
			stateTag := statefx.NewTag[int]("counter")
			writerW := eff.Member2L[writerfx.Cmd[[]string], statefx.Cmd[int]](writerTag)
			stateW := eff.MemberFx1(stateTag)

			writerOnly := eff.MonadChain(
				writerfx.Tell[eff.Fx1[writerfx.Cmd[[]string]], eff.NoFx, []string](eff.MemberFx1(writerTag), []string{"start"}),
				func(struct{}) eff.Eff[eff.Fx1[writerfx.Cmd[[]string]], int] {
					return eff.Pure[eff.Fx1[writerfx.Cmd[[]string]], int](1)
				})
			combined := eff.WeakenL[eff.Fx1[writerfx.Cmd[[]string]], eff.Fx1[statefx.Cmd[int]], int](writerOnly)

			afterWriter := writerfx.Run[eff.Fx2[writerfx.Cmd[[]string], statefx.Cmd[int]], eff.Fx1[statefx.Cmd[int]], []string, int](writerW, stringListMonoid{}, combined)
			stillState := eff.MonadMap(afterWriter, func(p eff.Pair2[int, []string]) int { return p.First })
			pair := eff.Run(statefx.Run[eff.Fx1[statefx.Cmd[int]], eff.NoFx, int, int](stateW, 0, stillState))
			fmt.Printf("(%d, %d)\n", pair.First, pair.Second)
			return nil
		},
	}
}

type stringListMonoid struct{}

func (stringListMonoid) Concat(x, y []string) []string { return append(append([]string{}, x...), y...) }
func (stringListMonoid) Empty() []string               { return nil }

// Commands returns every scenario subcommand, mirroring the teacher's
// own cli.Commands.
func Commands() []*C.Command {
	return []*C.Command{
		scenario1(),
		scenario2(),
		scenario3(),
		scenario4(),
		scenario5(),
		scenario6(),
	}
}

func main() {
	app := &C.App{
		Name:     "effdemo",
		Usage:    "run the extensible-effects end-to-end scenarios",
		Commands: Commands(),
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
