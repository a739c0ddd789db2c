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

// debugEvent identifies a point of interest in a Promise's lifecycle that
// the enable_promise_debug build can record. It exists purely to give
// tests and diagnostics a stable vocabulary; it has no effect on behavior.
type debugEvent int

const (
	_ debugEvent = iota

	evContinueQueued
	evContinueDispatchedDone
	evResolved
	evInterruptRecorded
	evInterruptHandlerRun
	evLinked
	evCompressed
	evDispatchStart
	evDispatchEnd
)

// debugCallback, when non-nil, receives every debugEvent fired by a build
// tagged enable_promise_debug. It is nil (and every debug() call is a
// no-op) otherwise.
var debugCallback func(debugEvent, ...any)

// SetDebugCallback installs cb as the receiver of debug events fired by a
// build tagged enable_promise_debug. Passing nil disables event delivery
// again. On a build without that tag, this is a harmless no-op: debug()
// never fires and cb is never called.
func SetDebugCallback(cb func(debugEvent, ...any)) {
	debugCallback = cb
}
