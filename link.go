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

// Become declares this and other observationally equivalent: this stays
// canonical, and other's state is drained into it, so that after Become
// returns, every query on other forwards through Linked to this. Any
// continuations already queued on other are moved onto this, preserving
// their originally captured local-context snapshots; any interrupt
// handler or pending interrupt signal on other is forwarded to this the
// same way.
//
// Become operates on the root of each argument, so linking through an
// already-linked promise is transparent: Become(x, y) where y is already
// linked to z behaves as Become(x, z).
//
// If this and other share a root, Become returns a SelfLinkError. If
// other was already Done and this was independently already Done with a
// different result, Become returns a ConflictingLinkError instead of
// silently picking one side; if the two results are equal (reflect.
// DeepEqual, via tryEqual) it's treated as a harmless no-op merge.
//
// Become does not detect an UpdateIfEmpty on this that runs concurrently
// with it.
func Become[A any](this, other *Promise[A]) error {
	d := root(this)
	s := root(other)
	if s == d {
		return SelfLinkError{}
	}

	for {
		cur, old := s.load()
		switch st := cur.(type) {
		case waitingState[A]:
			if s.cas(old, linkedState[A]{target: d}) {
				compress(s, d, st.q)
				return nil
			}
		case interruptibleState[A]:
			if s.cas(old, linkedState[A]{target: d}) {
				compress(s, d, st.q)
				d.SetInterruptHandler(st.handler)
				return nil
			}
		case interruptedState[A]:
			if s.cas(old, linkedState[A]{target: d}) {
				compress(s, d, st.q)
				d.Raise(st.signal)
				return nil
			}
		case doneState[A]:
			return settleLinkTarget(d, st.result)
		case linkedState[A]:
			// s was read as root(other) but lost a race with a concurrent
			// Become that linked it onward; follow and retry against the
			// new root.
			s = root(st.target)
			d = root(this)
			if s == d {
				return SelfLinkError{}
			}
		}
	}
}

// settleLinkTarget pushes a source's already-settled result onto dst. If
// dst is also already settled with a different result, that's a real
// conflict; an equal result is a harmless no-op.
func settleLinkTarget[A any](dst *Promise[A], result Try[A]) error {
	if dst.UpdateIfEmpty(result) {
		debug(evLinked)
		return nil
	}
	cur, _ := dst.load()
	if dr, ok := cur.(doneState[A]); ok {
		if tryEqual(dr.result, result) {
			return nil
		}
		return &ConflictingLinkError[A]{Source: result, Target: dr.result}
	}
	// dst raced to Linked between UpdateIfEmpty's failure and this read;
	// forward the settle attempt to its new root.
	return settleLinkTarget(root(dst), result)
}

// compress moves every continuation queued on a promise that just became
// Linked onto its new target, then marks the merge in the trace/debug
// stream. Named for the same idea as union-find path compression: once
// this returns, nothing is left waiting on the old promise, so later
// Continue calls on it find an empty detour straight to target via root.
func compress[A any](from, target *Promise[A], q waitQueue[A]) {
	for _, kk := range q.all() {
		target.continueK(kk)
	}
	debug(evCompressed)
	debug(evLinked)
}
