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

// package loggingfx is an effect module for structured-ish logging,
// grounded directly on the teacher's Logging.LoggingCallbacks: like
// either.Logger/option.Logger, it resolves to a pair of *log.Logger
// Printf callbacks (left for the failure path, right for the success
// path), here repurposed as the Warn/Info sinks an interpreted program
// writes through.
package loggingfx

import (
	"log"

	L "github.com/sourya7/go-eff/logging"

	"github.com/sourya7/go-eff/eff"
)

type level uint8

const (
	levelInfo level = iota
	levelWarn
)

// Cmd is the single effect constructor of this module: every log call
// sends one, carrying its level, a printf-style format and its args.
type Cmd struct {
	Level  level
	Format string
	Args   []any
}

// NewTag mints the Tag an Info/Warn/Run set shares.
func NewTag(name string) eff.Tag[Cmd] {
	return eff.NewTag[Cmd](name)
}

// Info logs at the success/informational level.
func Info[R, Out any](w eff.Member[Cmd, R, Out], format string, args ...any) eff.Eff[R, struct{}] {
	e := eff.Send[Cmd, R, Out, any](w, Cmd{Level: levelInfo, Format: format, Args: args})
	return eff.MonadMap(e, func(any) struct{} { return struct{}{} })
}

// Warn logs at the failure/warning level.
func Warn[R, Out any](w eff.Member[Cmd, R, Out], format string, args ...any) eff.Eff[R, struct{}] {
	e := eff.Send[Cmd, R, Out, any](w, Cmd{Level: levelWarn, Format: format, Args: args})
	return eff.MonadMap(e, func(any) struct{} { return struct{}{} })
}

// Run interprets every Info/Warn by dispatching to the pair of
// Printf-shaped callbacks LoggingCallbacks resolves, exactly as
// either.Logger/option.Logger do for their own Left/Right paths.
func Run[R, Out, A any](w eff.Member[Cmd, R, Out], e eff.Eff[R, A], loggers ...*log.Logger) eff.Eff[Out, A] {
	warn, info := L.LoggingCallbacks(loggers...)
	return eff.InterpretUnsafe[Cmd, any, R, Out, A](w, func(mx Cmd) any {
		switch mx.Level {
		case levelWarn:
			warn(mx.Format, mx.Args...)
		default:
			info(mx.Format, mx.Args...)
		}
		return struct{}{}
	}, e)
}
