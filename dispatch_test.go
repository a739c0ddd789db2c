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
	"sync"
	"testing"
	"time"
)

func TestRespondDepthOrdering(t *testing.T) {
	p := NewPromise[struct{}]()

	var mu sync.Mutex
	var log []string
	record := func(tag string) func(Try[struct{}]) {
		return func(Try[struct{}]) {
			mu.Lock()
			log = append(log, tag)
			mu.Unlock()
		}
	}

	done := make(chan struct{})
	chain := NewChain(p)
	chain.Respond(nil, record("r0")).
		Respond(nil, record("r1")).
		Respond(nil, func(Try[struct{}]) {
			record("r2")(nil)
			close(done)
		})

	if err := p.SetValue(struct{}{}); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	waitOn(t, done, time.Second)

	mu.Lock()
	defer mu.Unlock()
	want := []string{"r0", "r1", "r2"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

// Two continuations registered directly on the same root at depth 0
// both run (in either order, as far as this test checks), and anything
// chained off either one runs strictly after both.
func TestSiblingContinuationsRunBeforeTheirChainedFollowers(t *testing.T) {
	p := NewPromise[int]()
	var mu sync.Mutex
	var log []string
	done := make(chan struct{})

	chain := NewChain(p)
	chain.Respond(nil, func(Try[int]) {
		mu.Lock()
		log = append(log, "f")
		mu.Unlock()
	})
	chain.Respond(nil, func(Try[int]) {
		mu.Lock()
		log = append(log, "g")
		mu.Unlock()
	}).Respond(nil, func(Try[int]) {
		mu.Lock()
		log = append(log, "h")
		mu.Unlock()
		close(done)
	})

	if err := p.SetValue(1); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	waitOn(t, done, time.Second)

	mu.Lock()
	defer mu.Unlock()
	if len(log) != 3 || log[2] != "h" {
		t.Fatalf("log = %v, want f,g before h", log)
	}
	if !(log[0] == "f" || log[0] == "g") || !(log[1] == "f" || log[1] == "g") || log[0] == log[1] {
		t.Fatalf("log = %v, want f and g (either order) before h", log)
	}
}

func TestManyDeepContinuationsRunInAscendingDepthOrder(t *testing.T) {
	p := NewPromise[int]()
	var mu sync.Mutex
	var log []int

	last := NewChain(p)
	const n = 10
	// Registering through ever-deeper chain links before the promise
	// settles exercises runQueue's sort-by-depth path for depth > 1.
	for i := 0; i < n; i++ {
		d := last.Depth()
		last = last.Respond(nil, func(Try[int]) {
			mu.Lock()
			log = append(log, int(d))
			mu.Unlock()
		})
	}
	done := make(chan struct{})
	last.Respond(nil, func(Try[int]) { close(done) })

	if err := p.SetValue(0); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	waitOn(t, done, time.Second)

	mu.Lock()
	defer mu.Unlock()
	if len(log) != n {
		t.Fatalf("log = %v, want %d entries", log, n)
	}
	for i := 1; i < len(log); i++ {
		if log[i] < log[i-1] {
			t.Fatalf("log = %v, not ascending", log)
		}
	}
}
