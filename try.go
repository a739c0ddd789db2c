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

import "fmt"

// Try is the outcome of a completed Promise: either a successful value of
// type A (Return) or a failure (Throw). It is the payload carried by a
// Done state and by every continuation invocation.
type Try[A any] interface {
	// Val returns the carried value. For a Throw, it returns the zero
	// value of A.
	Val() A
	// Err returns the carried failure, or nil for a Return.
	Err() error
}

type returnTry[A any] struct{ val A }

func (r returnTry[A]) Val() A     { return r.val }
func (r returnTry[A]) Err() error { return nil }
func (r returnTry[A]) String() string {
	return fmt.Sprintf("Return(%v)", r.val)
}

type throwTry[A any] struct{ err error }

func (t throwTry[A]) Val() (a A)  { return a }
func (t throwTry[A]) Err() error { return t.err }
func (t throwTry[A]) String() string {
	return fmt.Sprintf("Throw(%v)", t.err)
}

// Return wraps a successful value as a Try.
func Return[A any](a A) Try[A] { return returnTry[A]{val: a} }

// Throw wraps a failure as a Try. Passing a nil error is a caller bug; it
// produces a Try whose Err reports nil, which is indistinguishable from a
// Return and will confuse any code branching on it.
func Throw[A any](err error) Try[A] { return throwTry[A]{err: err} }

// isFailure reports whether t carries a non-nil error.
func isFailure[A any](t Try[A]) bool {
	return t != nil && t.Err() != nil
}

// tryEqual compares two Try values the way link (see link.go) needs to
// when two already-Done promises are merged: same error-ness, and equal
// payloads by deep structural comparison.
func tryEqual[A any](a, b Try[A]) bool {
	ae, be := a.Err(), b.Err()
	if (ae == nil) != (be == nil) {
		return false
	}
	if ae != nil {
		return ae.Error() == be.Error()
	}
	return deepEqual(a.Val(), b.Val())
}
