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

import "sync/atomic"

var kSeq atomic.Int64

// K is a continuation: a callback closure plus everything needed to
// invoke it faithfully, exactly once, after the Promise it was registered
// on reaches Done.
type K[A any] struct {
	// saved is the caller's local-context snapshot, captured at
	// registration time via LocalContext.Save.
	saved Snapshot

	// traceCtx is an opaque tag recorded via TraceRecorder.Record just
	// before k runs.
	traceCtx any

	// k is the callback body.
	k func(Try[A])

	// depth orders dispatch: continuations run in non-decreasing depth
	// order.
	depth int16

	// monitored controls whether a panic from k is caught and handed to
	// the ambient Monitor, or left to propagate to the scheduler worker
	// running it.
	monitored bool

	// seq is a registration sequence number, used only to break ties
	// between same-depth continuations when runQueue sorts the ones
	// deeper than 1: depth order is the contract, seq just makes that
	// sort deterministic instead of following queue-storage order, which
	// push's fast-slot/overflow split does not keep in registration
	// order. Depth 0 and depth 1 run in queue-storage order.
	seq int64
}

// newK captures ctx's current snapshot (if ctx is non-nil) and returns a
// ready-to-queue continuation.
func newK[A any](ctx LocalContext, traceCtx any, depth int16, monitored bool, k func(Try[A])) K[A] {
	var saved Snapshot
	if ctx != nil {
		saved = ctx.Save()
	}
	return K[A]{saved: saved, traceCtx: traceCtx, k: k, depth: depth, monitored: monitored, seq: kSeq.Add(1)}
}

// run records the trace tag, restores the continuation's saved context
// for the duration of the call (guaranteed to be undone afterward even if
// k panics), and invokes k with res. If monitored, a panic from k is
// caught and handed to mon instead of propagating.
func (kk K[A]) run(ctx LocalContext, tr TraceRecorder, mon Monitor, res Try[A]) {
	if tr != nil {
		tr.Record(kk.traceCtx)
	}
	debug(evDispatchStart, kk.depth)
	defer debug(evDispatchEnd, kk.depth)

	call := func() {
		if kk.monitored {
			defer func() {
				if v := recover(); v != nil {
					if mon == nil {
						mon = DefaultMonitor
					}
					mon.Caught(PanicOrError{Panic: v})
				}
			}()
		}
		kk.k(res)
	}

	if ctx != nil && kk.saved != nil {
		withSavedContext(ctx, kk.saved, call)
	} else {
		call()
	}
}
