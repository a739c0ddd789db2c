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

// waitQueue is the registered-but-not-yet-dispatched continuation list
// carried by the Waiting, Interruptible, and Interrupted states.
//
// first is the one-slot fast path: the overwhelming majority of
// promises only ever pick up a single continuation, so they never touch
// rest at all. It mirrors the single-call-plus-overflow-slice shape of
// asmsh/promise's extQueue[T]{call, extra} in promise.go, generalized
// from "one extension call slot" to "one continuation slot".
type waitQueue[A any] struct {
	first *K[A]
	rest  []K[A]
}

// emptyWaitQueue is the queue every fresh Waiting promise starts with.
func emptyWaitQueue[A any]() waitQueue[A] {
	return waitQueue[A]{}
}

// push returns a new waitQueue with k added, filling the fast slot first.
// It never mutates wq: every transition allocates a fresh state value.
func (wq waitQueue[A]) push(k K[A]) waitQueue[A] {
	if wq.first == nil {
		return waitQueue[A]{first: &k, rest: wq.rest}
	}
	rest := make([]K[A], 0, len(wq.rest)+1)
	rest = append(rest, k)
	rest = append(rest, wq.rest...)
	return waitQueue[A]{first: wq.first, rest: rest}
}

// all returns every continuation in the queue, fast slot first, in the
// order push built it (most-recently-pushed-into-rest first, since
// continue prepends to the front of rest).
func (wq waitQueue[A]) all() []K[A] {
	if wq.first == nil {
		return wq.rest
	}
	out := make([]K[A], 0, len(wq.rest)+1)
	out = append(out, *wq.first)
	out = append(out, wq.rest...)
	return out
}

func (wq waitQueue[A]) empty() bool {
	return wq.first == nil && len(wq.rest) == 0
}
