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

// Package worker provides the default Scheduler implementation: a
// bounded-concurrency work queue that lets a caller drain it directly.
//
// Submit's concurrency bound is the same idea as asmsh/promise's
// pipelineCore/groupCore (pipeline.go, group.go): a buffered channel used
// as a reservation token, generalized here from "bound how many
// constructor/follow goroutines a Pipeline/Group may run" into "bound how
// many background workers this Pool may run at once".
package worker

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool is a bounded-concurrency Scheduler: Submit enqueues work and
// starts a background worker (subject to the concurrency bound) to run
// it; Flush drains whatever is still queued, joining an errgroup bounded
// by the same limit before returning, so a caller that is itself the
// only thread making progress (see Promise.Get) doesn't deadlock waiting
// on work that would otherwise only run in the background.
type Pool struct {
	mu    sync.Mutex
	queue []func()
	sem   chan struct{}
	limit int
}

// New returns a Pool whose background workers run at most maxConcurrency
// submitted tasks at once. Flush runs its drained batch on a separate
// errgroup with the same limit, so while a Flush is in progress up to
// twice that many tasks can run. A maxConcurrency <= 0 means effectively
// unbounded.
func New(maxConcurrency int) *Pool {
	if maxConcurrency <= 0 {
		maxConcurrency = 1 << 20
	}
	return &Pool{
		sem:   make(chan struct{}, maxConcurrency),
		limit: maxConcurrency,
	}
}

// Submit enqueues work and returns promptly; work runs on a background
// goroutine, subject to the Pool's concurrency bound.
func (p *Pool) Submit(work func()) {
	if work == nil {
		return
	}
	p.mu.Lock()
	p.queue = append(p.queue, work)
	p.mu.Unlock()

	go func() {
		p.sem <- struct{}{}
		defer func() { <-p.sem }()
		if w := p.pop(); w != nil {
			w()
		}
	}()
}

// pop removes and returns the oldest queued task, or nil if the queue is
// empty. It's the only place tasks are removed from the queue, so
// Submit's background goroutine and Flush never run the same task twice.
func (p *Pool) pop() func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return nil
	}
	w := p.queue[0]
	p.queue = p.queue[1:]
	return w
}

// Flush drains every task submitted before this call, running the
// drained batch through an errgroup bounded by the Pool's concurrency
// limit and waiting for it to finish before returning.
func (p *Pool) Flush() {
	var g errgroup.Group
	g.SetLimit(p.limit)
	for {
		w := p.pop()
		if w == nil {
			break
		}
		g.Go(func() error {
			w()
			return nil
		})
	}
	_ = g.Wait()
}

// Pending reports how many tasks are currently queued but not yet
// started. It's a diagnostic, not part of the Scheduler contract.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}
