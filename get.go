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
	"time"

	"github.com/nilsocket/promise/internal/latch"
)

// Poll returns the promise's result without blocking: (result, true) if
// it's Done, (nil, false) otherwise.
func (p *Promise[A]) Poll() (Try[A], bool) {
	s, _ := root(p).load()
	if st, ok := s.(doneState[A]); ok {
		return st.result, true
	}
	return nil, false
}

// Get blocks the calling goroutine until the promise settles or timeout
// elapses, whichever comes first. A timeout <= 0 does not wait: Get
// flushes the Scheduler once, then returns the result if the promise has
// settled by then, or ErrTimeout if it hasn't.
//
// Before parking, Get flushes the ambient Scheduler so that a caller who
// is themselves the only goroutine driving work forward (for example, a
// single-goroutine program that submitted its own completion as
// scheduled work) doesn't deadlock waiting on work nobody else will ever
// run.
func (p *Promise[A]) Get(timeout time.Duration) (Try[A], error) {
	if t, ok := p.Poll(); ok {
		return t, nil
	}
	if timeout <= 0 {
		root(p).schedulerOrDefault().Flush()
		if t, ok := p.Poll(); ok {
			return t, nil
		}
		return nil, ErrTimeout
	}

	root := root(p)
	l := latch.New()
	root.Continue(0, false, nil, func(Try[A]) {
		l.Open()
	})

	root.schedulerOrDefault().Flush()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-l.Done():
		t, _ := root.Poll()
		return t, nil
	case <-timer.C:
		return nil, ErrTimeout
	}
}
