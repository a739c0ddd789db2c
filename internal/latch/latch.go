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

// Package latch provides a one-way-door wait primitive used by
// Promise.Get to block a caller until either a result arrives or a
// deadline elapses.
//
// It is adapted from two teacher idioms at once: the CAS-guarded
// done-flag design of llxisdsh/synx's Latch type (latch.go), and
// asmsh/promise's own closed-channel wait gate (its syncChan/closedChan
// pair in internal.go) used as the actual parking mechanism, since a
// closed channel naturally broadcasts to every waiter (arrived before or
// after the close) without needing to track a waiter count at all.
package latch

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Latch is a single-fire wait gate: Open is idempotent, and every Wait
// call, whether it arrived before or after Open, returns once Open has
// been called.
//
// opened is the field Open CASes and IsOpen reads; _
// pads it to its own cache line so a Latch embedded next to other
// frequently-written fields doesn't false-share with them.
type Latch struct {
	opened atomic.Bool
	_      cpu.CacheLinePad
	ch     chan struct{}
}

// New returns a ready-to-use Latch.
func New() *Latch {
	return &Latch{ch: make(chan struct{})}
}

// Open opens the latch, waking every blocked and future Wait call. Open
// is safe to call more than once; only the first call has any effect.
func (l *Latch) Open() {
	if l.opened.CompareAndSwap(false, true) {
		close(l.ch)
	}
}

// Wait blocks until Open is called or done fires, whichever happens
// first. It returns true if the latch opened, false if done fired first.
func (l *Latch) Wait(done <-chan struct{}) bool {
	select {
	case <-l.ch:
		return true
	case <-done:
		return false
	}
}

// IsOpen reports whether Open has been called.
func (l *Latch) IsOpen() bool {
	return l.opened.Load()
}

// Done returns the channel Open closes, for callers that want to select
// on it directly alongside a deadline rather than going through Wait.
func (l *Latch) Done() <-chan struct{} {
	return l.ch
}
