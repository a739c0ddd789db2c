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

import "log"

// PanicOrError is what a Monitor receives when a monitored continuation
// fails: either a recovered panic value, or a non-nil error surfaced some
// other way.
type PanicOrError struct {
	Panic any
	Err   error
}

// Monitor is the ambient uncaught-failure handler. A monitored
// continuation's failure is caught and delivered here; dispatch then
// continues with the next continuation. An unmonitored continuation's
// failure is never delivered here — it propagates to the caller instead
// (in practice, the scheduler worker running it).
type Monitor interface {
	Caught(poe PanicOrError)
}

// MonitorFunc adapts a plain function to a Monitor.
type MonitorFunc func(PanicOrError)

func (f MonitorFunc) Caught(poe PanicOrError) { f(poe) }

// nopMonitor discards everything. Used where a promise is constructed
// without an explicit Monitor and the caller has made clear (e.g. via
// NewPromise's variadic options) that it doesn't want one.
type nopMonitor struct{}

func (nopMonitor) Caught(PanicOrError) {}

// NopMonitor is a Monitor that discards every failure it's handed.
var NopMonitor Monitor = nopMonitor{}

// logMonitor logs every failure it's handed via the standard log package.
type logMonitor struct{}

func (logMonitor) Caught(poe PanicOrError) {
	if poe.Panic != nil {
		log.Printf("promise: uncaught panic in monitored continuation: %v", poe.Panic)
		return
	}
	log.Printf("promise: uncaught error in monitored continuation: %v", poe.Err)
}

// DefaultMonitor is the Monitor used by constructors that don't take an
// explicit one. It logs via the standard log package.
var DefaultMonitor Monitor = logMonitor{}
