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

// Interruptible is anything that can receive an interrupt signal. Every
// *Promise[A] satisfies it, regardless of A, since Raise's signature
// doesn't mention the payload type.
type Interruptible interface {
	Raise(sig error) bool
}

// Interrupts constructs an empty, Interruptible promise whose interrupt
// handler forwards any raised signal to every future in fs. Transform
// uses the one-element form of this to give its returned promise a way
// to forward an interrupt back to the promise it was derived from.
func Interrupts[A any](fs ...Interruptible) *Promise[A] {
	return NewInterruptible[A](func(sig error) bool {
		forwarded := false
		for _, f := range fs {
			if f == nil {
				continue
			}
			if f.Raise(sig) {
				forwarded = true
			}
		}
		return forwarded
	})
}
