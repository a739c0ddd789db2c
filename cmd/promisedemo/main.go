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

// Command promisedemo is a small smoke test that exercises a promise
// chain, an interrupt, and a merge end to end, printing what happened as
// it goes.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/nilsocket/promise"
)

func main() {
	runChainDemo()
	runInterruptDemo()
	runLinkDemo()
}

func runChainDemo() {
	p := promise.NewPromise[int]()
	chain := promise.NewChain(p)

	chain.
		Respond(nil, func(t promise.Try[int]) {
			fmt.Println("first:", t.Val())
		}).
		Transform(nil, func(t promise.Try[int]) promise.Try[int] {
			return promise.Return(t.Val() * 2)
		}).
		Respond(nil, func(t promise.Try[int]) {
			fmt.Println("doubled:", t.Val())
		})

	p.SetValue(21)

	if res, err := p.Get(time.Second); err == nil {
		fmt.Println("settled:", res.Val())
	}
}

func runInterruptDemo() {
	sig := errors.New("cancel")
	p := promise.NewInterruptible[string](func(err error) bool {
		fmt.Println("handled interrupt:", err)
		return true
	})

	p.Raise(sig)
	if cur, ok := p.IsInterrupted(); ok {
		fmt.Println("still interrupted with:", cur)
	}
	p.SetValue("done anyway")
}

func runLinkDemo() {
	src := promise.NewPromise[int]()
	dst := promise.NewPromise[int]()

	dst.Continue(0, false, nil, func(t promise.Try[int]) {
		fmt.Println("dst observed:", t.Val())
	})

	if err := promise.Become(dst, src); err != nil {
		fmt.Println("become failed:", err)
		return
	}
	src.SetValue(7)

	if res, err := dst.Get(time.Second); err == nil {
		fmt.Println("dst settled:", res.Val())
	}
}
