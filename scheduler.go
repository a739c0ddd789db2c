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

import "github.com/nilsocket/promise/internal/worker"

// Scheduler is the narrow seam this module uses to actually run
// continuations. The core never runs a callback inline on a completer's
// or registerer's goroutine; it always Submits a work unit.
type Scheduler interface {
	// Submit enqueues work for later execution and returns promptly.
	Submit(work func())
	// Flush drains work already submitted, so a caller that would
	// otherwise deadlock waiting on its own submitted work can make
	// progress.
	Flush()
}

// DefaultScheduler is the Scheduler used by constructors that don't take
// an explicit one: an internal/worker.Pool created with worker.New(0),
// which puts no practical bound on concurrency.
var DefaultScheduler Scheduler = worker.New(0)

// NewBoundedScheduler returns a Scheduler whose background workers run at
// most maxConcurrency submitted tasks at once (a Flush can run up to as
// many again; see worker.New).
func NewBoundedScheduler(maxConcurrency int) Scheduler {
	return worker.New(maxConcurrency)
}
