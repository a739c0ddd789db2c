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

	"github.com/stretchr/testify/require"
)

func TestBecomeMergesWaitQueues(t *testing.T) {
	a := NewPromise[int]()
	b := NewPromise[int]()

	var mu sync.Mutex
	var log []string
	done := make(chan struct{})
	b.Continue(0, true, nil, func(Try[int]) {
		mu.Lock()
		log = append(log, "b")
		mu.Unlock()
		close(done)
	})

	require.NoError(t, Become(a, b)) // a canonical; b drains into a

	require.NoError(t, a.SetValue(42))
	waitOn(t, done, time.Second)

	mu.Lock()
	require.Equal(t, []string{"b"}, log)
	mu.Unlock()

	ares, aok := a.Poll()
	bres, bok := b.Poll()
	require.True(t, aok)
	require.True(t, bok)
	require.Equal(t, 42, ares.Val())
	require.Equal(t, 42, bres.Val())
}

func TestBecomeSelfLinkReturnsError(t *testing.T) {
	a := NewPromise[int]()
	err := Become(a, a)
	require.Error(t, err)
	require.IsType(t, SelfLinkError{}, err)
}

func TestBecomeOnAlreadyLinkedOtherIsTransparent(t *testing.T) {
	a := NewPromise[int]()
	b := NewPromise[int]()
	c := NewPromise[int]()

	require.NoError(t, Become(a, b)) // b -> a
	require.NoError(t, Become(a, c)) // c -> a too

	require.NoError(t, a.SetValue(5))
	for _, p := range []*Promise[int]{a, b, c} {
		res, ok := p.Poll()
		require.True(t, ok)
		require.Equal(t, 5, res.Val())
	}
}

func TestBecomeConflictingDoneResultsReturnsError(t *testing.T) {
	a := Done[int](Return(1))
	b := Done[int](Return(2))

	err := Become(a, b)
	require.Error(t, err)
	var clerr *ConflictingLinkError[int]
	require.ErrorAs(t, err, &clerr)
	require.Equal(t, 2, clerr.Source.Val())
	require.Equal(t, 1, clerr.Target.Val())
}

func TestBecomeEqualDoneResultsIsHarmlessNoop(t *testing.T) {
	a := Done[int](Return(7))
	b := Done[int](Return(7))
	require.NoError(t, Become(a, b))
}

func TestBecomeForwardsInterruptHandlerFromOther(t *testing.T) {
	a := NewPromise[int]()
	b := NewPromise[int]()

	var got error
	b.SetInterruptHandler(func(sig error) bool {
		got = sig
		return true
	})

	require.NoError(t, Become(a, b))

	sig := errors.New("cancel")
	a.Raise(sig)
	require.Equal(t, sig, got)
}

func TestBecomeForwardsPendingInterruptSignalFromOther(t *testing.T) {
	a := NewPromise[int]()
	b := NewPromise[int]()

	sig := errors.New("cancel")
	b.Raise(sig)

	require.NoError(t, Become(a, b))

	cur, ok := a.IsInterrupted()
	require.True(t, ok)
	require.Equal(t, sig, cur)
}
