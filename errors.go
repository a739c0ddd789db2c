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
	"errors"
	"fmt"
)

// ErrImmutableResult is returned by Update when the promise is already
// Done: Done is terminal, and its result is immutable.
var ErrImmutableResult = errors.New("promise: result is immutable, promise is already done")

// ErrChainOverflow is the panic value raised when a chained future would
// carry a depth beyond maxDepth.
// It is fatal and surfaces at chain-construction time, not at dispatch
// time.
var ErrChainOverflow = errors.New("promise: chain depth overflow")

// maxDepth is the largest depth a continuation may carry, capped one
// short of int16's top end so that one past it remains available as an
// unambiguous overflow sentinel within the 16-bit signed range.
const maxDepth int16 = 32766

// ErrTimeout is returned by Get when its deadline elapses before the
// promise completes. The promise itself is unaffected; a later Get may
// still succeed.
var ErrTimeout = errors.New("promise: get timed out")

// ConflictingLinkError is raised when link merges two already-Done
// promises whose results disagree: both promises were independently
// satisfied, and the caller violated become's precondition that at most
// one side may already be settled in a way that disagrees with the
// other.
type ConflictingLinkError[A any] struct {
	Source Try[A]
	Target Try[A]
}

func (e *ConflictingLinkError[A]) Error() string {
	return fmt.Sprintf("promise: conflicting link: source resolved to %v, target already resolved to %v", e.Source, e.Target)
}

// SelfLinkError is raised when become/link would link a promise to
// itself, which would form a one-node cycle the compress/link protocol
// is not designed to terminate on.
type SelfLinkError struct{}

func (SelfLinkError) Error() string {
	return "promise: cannot link a promise to itself"
}
