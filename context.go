// Copyright 2024 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package promise

import "context"

// Snapshot is an opaque capture of whatever a LocalContext considers
// "current" at the moment Save is called. The core never looks inside a
// Snapshot; it only asks a LocalContext to produce and later install one.
type Snapshot any

// LocalContext is the narrow seam this module uses for per-task context
// propagation: a continuation captures the caller's context at
// registration time (via Save) and observes that context, not the
// completer's, when it eventually runs (via Restore, paired around the
// call).
type LocalContext interface {
	// Save captures whatever is current right now.
	Save() Snapshot
	// Restore installs a previously captured Snapshot as current.
	Restore(s Snapshot)
}

// CtxLocalContext is a LocalContext backed by a single mutable
// context.Context cell. newBarePromise gives every promise its own
// instance. It does no locking: Save/Restore pairs are safe while they
// nest within one goroutine's call stack, not when several goroutines
// use the same instance at once.
type CtxLocalContext struct {
	cur context.Context
}

// NewCtxLocalContext returns a CtxLocalContext whose initial current
// value is base, or context.Background() if base is nil.
func NewCtxLocalContext(base context.Context) *CtxLocalContext {
	if base == nil {
		base = context.Background()
	}
	return &CtxLocalContext{cur: base}
}

func (c *CtxLocalContext) Save() Snapshot { return c.cur }

func (c *CtxLocalContext) Restore(s Snapshot) {
	ctx, ok := s.(context.Context)
	if !ok || ctx == nil {
		return
	}
	c.cur = ctx
}

// Current returns the context.Context currently installed.
func (c *CtxLocalContext) Current() context.Context { return c.cur }

// withSavedContext runs fn with ctx's current value swapped to saved for
// the duration of the call, restoring whatever was current before on
// every exit path, including a panic propagating out of fn.
func withSavedContext(ctx LocalContext, saved Snapshot, fn func()) {
	if ctx == nil {
		fn()
		return
	}
	prev := ctx.Save()
	ctx.Restore(saved)
	defer ctx.Restore(prev)
	fn()
}
