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
	"sync"
	"testing"
	"time"
)

func TestTransformFailureFoldsIntoResult(t *testing.T) {
	p := NewPromise[int]()

	var mu sync.Mutex
	var monitorHits int
	mon := MonitorFunc(func(PanicOrError) {
		mu.Lock()
		monitorHits++
		mu.Unlock()
	})
	p.mon = mon

	next := NewChain(p).Transform(nil, func(Try[int]) Try[int] {
		panic("boom")
	})

	if err := p.SetValue(1); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	res, err := next.Promise().Get(time.Second)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if res.Err() == nil {
		t.Fatal("Transform result: want failure")
	}

	mu.Lock()
	defer mu.Unlock()
	if monitorHits != 0 {
		t.Fatalf("monitorHits = %d, want 0 (transform's panic must not reach the ambient Monitor)", monitorHits)
	}
}

func TestTransformAppliesFunctionToResult(t *testing.T) {
	p := NewPromise[int]()
	next := NewChain(p).Transform(nil, func(t Try[int]) Try[int] {
		return Return(t.Val() * 10)
	})

	if err := p.SetValue(4); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	res, err := next.Promise().Get(time.Second)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if res.Val() != 40 {
		t.Fatalf("res.Val() = %v, want 40", res.Val())
	}
}

func TestTransformForwardsInterruptToPredecessor(t *testing.T) {
	p := NewPromise[int]()
	var raised error
	p.SetInterruptHandler(func(sig error) bool {
		raised = sig
		return true
	})

	next := NewChain(p).Transform(nil, func(t Try[int]) Try[int] { return t })

	sig := errors.New("cancel")
	next.Promise().Raise(sig)

	if raised != sig {
		t.Fatalf("predecessor saw %v, want %v", raised, sig)
	}
}

// A chain built out to the deepest representable depth succeeds; one
// more Respond past that panics at construction instead of wrapping or
// silently colliding depths.
func TestChainAtMaxDepthSucceeds(t *testing.T) {
	p := NewPromise[int]()

	c := Chain[int]{p: p, depth: maxDepth - 1}
	c = c.Respond(nil, func(Try[int]) {}) // now at maxDepth
	if c.Depth() != maxDepth {
		t.Fatalf("Depth() = %v, want %v", c.Depth(), maxDepth)
	}
}

func TestChainOverflowPastMaxDepthPanics(t *testing.T) {
	p := NewPromise[int]()
	c := Chain[int]{p: p, depth: maxDepth}

	defer func() {
		v := recover()
		if v != ErrChainOverflow {
			t.Fatalf("recover() = %v, want %v", v, ErrChainOverflow)
		}
	}()
	c.Respond(nil, func(Try[int]) {}) // requests maxDepth+1: overflow
	t.Fatal("Respond past maxDepth: want panic, got none")
}
