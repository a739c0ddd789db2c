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

import "sort"

// dispatchOne submits a single continuation that was registered after
// the promise had already settled. There's nothing to order it against,
// so it just runs.
func (p *Promise[A]) dispatchOne(k K[A], res Try[A]) {
	p.schedulerOrDefault().Submit(func() {
		k.run(p.ctx, p.tr, p.mon, res)
	})
}

// dispatchAll submits the whole wait-queue collected at the moment a
// promise transitioned to Done, as a single unit of scheduler work, so
// that the depth-ordering guarantee in runQueue is enforced by one
// goroutine running continuations back to back rather than by N
// independently scheduled, unordered goroutines.
func (p *Promise[A]) dispatchAll(q waitQueue[A], res Try[A]) {
	if q.empty() {
		return
	}
	p.schedulerOrDefault().Submit(func() {
		p.runQueue(q, res)
	})
}

func (p *Promise[A]) schedulerOrDefault() Scheduler {
	if p.sched != nil {
		return p.sched
	}
	return DefaultScheduler
}

// runQueue runs every continuation in q against res, in non-decreasing
// depth order.
//
// The common case - exactly one continuation total, sitting in the
// queue's fast slot - skips bucketing and sorting entirely: q.first is
// correct with respect to depth because there's nothing to order it
// against. Once a second continuation is present, every continuation
// (fast slot included) is bucketed by depth: depth 0 and depth 1 are
// common enough (chains rarely run deep) to run straight from their
// buckets in queue order (the fast slot first, then the rest most
// recently registered first); anything deeper is sorted by
// (depth, registration sequence) first.
func (p *Promise[A]) runQueue(q waitQueue[A], res Try[A]) {
	ctx, tr, mon := p.ctx, p.tr, p.mon

	if q.first != nil && len(q.rest) == 0 {
		q.first.run(ctx, tr, mon, res)
		debug(evContinueDispatchedDone, q.first.depth)
		return
	}

	var depth0, depth1, rest []K[A]
	for _, kk := range q.all() {
		switch kk.depth {
		case 0:
			depth0 = append(depth0, kk)
		case 1:
			depth1 = append(depth1, kk)
		default:
			rest = append(rest, kk)
		}
	}

	run := func(list []K[A]) {
		for _, kk := range list {
			kk.run(ctx, tr, mon, res)
			debug(evContinueDispatchedDone, kk.depth)
		}
	}

	run(depth0)
	run(depth1)
	if len(rest) > 1 {
		sort.Slice(rest, func(i, j int) bool {
			if rest[i].depth != rest[j].depth {
				return rest[i].depth < rest[j].depth
			}
			return rest[i].seq < rest[j].seq
		})
	}
	run(rest)
}
