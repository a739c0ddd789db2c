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

// SetInterruptHandler installs handler as the promise's interrupt
// handler. Installing a handler on a Waiting promise moves it to
// Interruptible; installing on one that is already Interrupted (a
// signal arrived before any handler existed) runs handler against the
// recorded signal immediately, on the calling goroutine, rather than
// losing the signal.
//
// SetInterruptHandler is not idempotent: calling it again on a promise
// that is still Interrupted re-invokes the new handler against the same
// recorded signal. The partial-function contract doesn't promise
// "exactly once", only "applied if and when a handler exists".
func (p *Promise[A]) SetInterruptHandler(handler InterruptHandler) {
	if handler == nil {
		return
	}
	target := root(p)
	for {
		s, old := target.load()
		switch st := s.(type) {
		case waitingState[A]:
			if target.cas(old, interruptibleState[A]{q: st.q, handler: handler}) {
				return
			}
		case interruptibleState[A]:
			if target.cas(old, interruptibleState[A]{q: st.q, handler: handler}) {
				return
			}
		case interruptedState[A]:
			debug(evInterruptHandlerRun, st.signal)
			handler(st.signal)
			return
		case doneState[A]:
			return
		case linkedState[A]:
			target = root(st.target)
		}
	}
}

// Raise delivers sig to the promise as an interrupt signal. It returns
// true if this call recorded sig as the current signal. A promise that
// has already settled (Done) never records one.
//
// The handler, if any, only ever runs once: on the Interruptible →
// Interrupted transition. A promise that is already Interrupted simply
// has its recorded signal overwritten by each further Raise (IsInterrupted
// always reports the latest one), with no handler left to re-invoke -
// Interrupted doesn't carry a handler, only Interruptible does.
//
// When a handler does run, it runs synchronously on the caller's
// goroutine, with no recover around it: a panicking handler propagates
// to whoever called Raise, mirroring how Continue's continuations are
// the only place a panic is ever caught (and then only when monitored).
func (p *Promise[A]) Raise(sig error) bool {
	if sig == nil {
		return false
	}
	target := root(p)
	for {
		s, old := target.load()
		switch st := s.(type) {
		case waitingState[A]:
			if target.cas(old, interruptedState[A]{q: st.q, signal: sig}) {
				debug(evInterruptRecorded, sig)
				return true
			}
		case interruptibleState[A]:
			if target.cas(old, interruptedState[A]{q: st.q, signal: sig}) {
				debug(evInterruptRecorded, sig)
				if st.handler != nil {
					debug(evInterruptHandlerRun, sig)
					st.handler(sig)
				}
				return true
			}
		case interruptedState[A]:
			if target.cas(old, interruptedState[A]{q: st.q, signal: sig}) {
				debug(evInterruptRecorded, sig)
				return true
			}
		case doneState[A]:
			return false
		case linkedState[A]:
			target = root(st.target)
		}
	}
}

// IsInterrupted reports the signal currently recorded on the promise, if
// any. It reflects live state, not history: once the promise settles
// (Done), IsInterrupted reports false even if an interrupt was delivered
// along the way.
func (p *Promise[A]) IsInterrupted() (error, bool) {
	s, _ := root(p).load()
	if st, ok := s.(interruptedState[A]); ok {
		return st.signal, true
	}
	return nil, false
}
