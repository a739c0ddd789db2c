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

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Promise is a lock-free, write-once cell. Its entire mutable state
// lives in one atomic.Pointer, swapped via CompareAndSwap; every
// transition builds a brand new promState value rather than mutating
// the one currently installed.
//
// state is the field every Continue/Update/Raise call CASes against;
// _ pads it to its own cache line so a densely packed slice or array of
// Promises doesn't false-share that hot pointer
// across adjacent elements.
type Promise[A any] struct {
	state atomic.Pointer[promState[A]]
	_     cpu.CacheLinePad

	ctx   LocalContext
	tr    TraceRecorder
	mon   Monitor
	sched Scheduler
}

// Option configures a collaborator seam at construction time.
type Option[A any] func(*Promise[A])

func WithLocalContext[A any](ctx LocalContext) Option[A] {
	return func(p *Promise[A]) { p.ctx = ctx }
}

func WithTraceRecorder[A any](tr TraceRecorder) Option[A] {
	return func(p *Promise[A]) { p.tr = tr }
}

func WithMonitor[A any](mon Monitor) Option[A] {
	return func(p *Promise[A]) { p.mon = mon }
}

func WithScheduler[A any](sched Scheduler) Option[A] {
	return func(p *Promise[A]) { p.sched = sched }
}

func newBarePromise[A any](opts ...Option[A]) *Promise[A] {
	p := &Promise[A]{
		ctx:   NewCtxLocalContext(nil),
		tr:    NopTraceRecorder,
		mon:   DefaultMonitor,
		sched: DefaultScheduler,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPromise returns a fresh Promise in the Waiting state.
func NewPromise[A any](opts ...Option[A]) *Promise[A] {
	p := newBarePromise(opts...)
	p.store(waitingState[A]{q: emptyWaitQueue[A]()})
	return p
}

// NewInterruptible returns a fresh Promise in the Interruptible state,
// with handler installed from the start.
func NewInterruptible[A any](handler InterruptHandler, opts ...Option[A]) *Promise[A] {
	p := newBarePromise(opts...)
	if handler == nil {
		p.store(waitingState[A]{q: emptyWaitQueue[A]()})
	} else {
		p.store(interruptibleState[A]{q: emptyWaitQueue[A](), handler: handler})
	}
	return p
}

// Done returns a Promise that starts out already settled with t.
func Done[A any](t Try[A], opts ...Option[A]) *Promise[A] {
	p := newBarePromise(opts...)
	p.store(doneState[A]{result: t})
	return p
}

// store installs s unconditionally. Only used at construction, before p
// is visible to any other goroutine.
func (p *Promise[A]) store(s promState[A]) {
	p.state.Store(&s)
}

// load returns the currently installed state value together with the raw
// pointer it was read from, so callers can CompareAndSwap against that
// exact pointer.
func (p *Promise[A]) load() (promState[A], *promState[A]) {
	old := p.state.Load()
	return *old, old
}

// cas attempts to install next in place of old, identified by the
// pointer returned from a prior load. Returns false if another goroutine
// raced ahead; callers retry by reloading.
func (p *Promise[A]) cas(old *promState[A], next promState[A]) bool {
	return p.state.CompareAndSwap(old, &next)
}

// root follows Linked states to the promise that actually owns the
// result, the way a union-find structure follows parent pointers, and
// compresses the path on the way: every Linked promise it passed is
// CASed to point straight at that root. A failed CAS means another
// goroutine rewrote the pointer first, which is harmless, since any
// target reachable from it forwards to the same result.
func root[A any](p *Promise[A]) *Promise[A] {
	r := p
	for {
		s, _ := r.load()
		ls, ok := s.(linkedState[A])
		if !ok {
			break
		}
		r = ls.target
	}
	for p != r {
		s, old := p.load()
		ls, ok := s.(linkedState[A])
		if !ok {
			break
		}
		if ls.target != r {
			p.cas(old, linkedState[A]{target: r})
		}
		p = ls.target
	}
	return r
}

// Kind reports which of the five states p is currently in.
func (p *Promise[A]) Kind() Kind {
	s, _ := root(p).load()
	return s.kind()
}

// Continue registers k to run once the promise this was called on
// settles, at the given dispatch depth. If the promise (or the one it's
// since become linked to) is already Done, k is submitted to the
// scheduler immediately instead of being queued.
func (p *Promise[A]) Continue(depth int16, monitored bool, traceCtx any, k func(Try[A])) {
	p.continueK(newK(p.ctx, traceCtx, depth, monitored, k))
}

// continueK registers an already-built continuation, preserving whatever
// local-context snapshot it already carries instead of capturing a fresh
// one. link.go's merge protocol uses this to move a queue of
// continuations from a promise that's becoming Linked onto its new
// target without disturbing each one's originally captured snapshot.
func (p *Promise[A]) continueK(nk K[A]) {
	target := root(p)
	for {
		s, old := target.load()
		switch st := s.(type) {
		case waitingState[A]:
			next := waitingState[A]{q: st.q.push(nk)}
			if target.cas(old, next) {
				debug(evContinueQueued, nk.depth)
				return
			}
		case interruptibleState[A]:
			next := interruptibleState[A]{q: st.q.push(nk), handler: st.handler}
			if target.cas(old, next) {
				debug(evContinueQueued, nk.depth)
				return
			}
		case interruptedState[A]:
			next := interruptedState[A]{q: st.q.push(nk), signal: st.signal}
			if target.cas(old, next) {
				debug(evContinueQueued, nk.depth)
				return
			}
		case doneState[A]:
			target.dispatchOne(nk, st.result)
			return
		case linkedState[A]:
			target = root(st.target)
		}
	}
}

// UpdateIfEmpty attempts to settle the promise with t. A Linked promise
// forwards the attempt to the promise it is linked to. It succeeds
// (returns true) only if the promise that owns the result was not
// already Done; any queued continuations are submitted to the scheduler,
// as one work unit, before it returns.
func (p *Promise[A]) UpdateIfEmpty(t Try[A]) bool {
	target := root(p)
	for {
		s, old := target.load()
		switch st := s.(type) {
		case waitingState[A]:
			if target.cas(old, doneState[A]{result: t}) {
				debug(evResolved)
				target.dispatchAll(st.q, t)
				return true
			}
		case interruptibleState[A]:
			if target.cas(old, doneState[A]{result: t}) {
				debug(evResolved)
				target.dispatchAll(st.q, t)
				return true
			}
		case interruptedState[A]:
			if target.cas(old, doneState[A]{result: t}) {
				debug(evResolved)
				target.dispatchAll(st.q, t)
				return true
			}
		case doneState[A]:
			return false
		case linkedState[A]:
			target = root(st.target)
		}
	}
}

// Update settles the promise with t, the way UpdateIfEmpty does, but
// surfaces an already-settled promise as ErrImmutableResult to its
// caller, rather than swallowing the attempt: this is a protocol
// violation, not a monitored callback failure, so it goes to Update's
// caller, never to the ambient Monitor.
func (p *Promise[A]) Update(t Try[A]) error {
	if !p.UpdateIfEmpty(t) {
		return ErrImmutableResult
	}
	return nil
}

// SetValue is sugar for Update(Return(v)).
func (p *Promise[A]) SetValue(v A) error { return p.Update(Return(v)) }

// SetException is sugar for Update(Throw(err)).
func (p *Promise[A]) SetException(err error) error { return p.Update(Throw[A](err)) }
