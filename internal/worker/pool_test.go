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

package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolSubmitRunsWork(t *testing.T) {
	p := New(4)
	var n atomic.Int32
	done := make(chan struct{})

	p.Submit(func() {
		n.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("submitted work never ran")
	}
	require.EqualValues(t, 1, n.Load())
}

func TestPoolFlushDrainsQueuedWork(t *testing.T) {
	p := New(2)
	var n atomic.Int32
	var wg sync.WaitGroup
	const total = 8
	wg.Add(total)
	for i := 0; i < total; i++ {
		p.Submit(func() {
			n.Add(1)
			wg.Done()
		})
	}

	p.Flush()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("work submitted before Flush never completed")
	}
	require.EqualValues(t, total, n.Load())
}

func TestPoolNilWorkIsIgnored(t *testing.T) {
	p := New(1)
	require.NotPanics(t, func() {
		p.Submit(nil)
	})
	require.Equal(t, 0, p.Pending())
}

func TestPoolUnboundedWhenNonPositiveLimit(t *testing.T) {
	p := New(0)
	var n atomic.Int32
	var wg sync.WaitGroup
	const total = 20
	wg.Add(total)
	for i := 0; i < total; i++ {
		p.Submit(func() {
			n.Add(1)
			wg.Done()
		})
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("unbounded pool never finished submitted work")
	}
	require.EqualValues(t, total, n.Load())
}
