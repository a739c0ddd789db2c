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

// TraceRecorder is the narrow seam this module uses for tracing. Record
// is called with a continuation's trace tag immediately before that
// continuation's callback runs.
type TraceRecorder interface {
	Record(tag any)
}

type nopTraceRecorder struct{}

func (nopTraceRecorder) Record(any) {}

// NopTraceRecorder discards every trace tag. It is the default
// TraceRecorder for constructors that don't take an explicit one.
var NopTraceRecorder TraceRecorder = nopTraceRecorder{}

// TraceRecorderFunc adapts a plain function to a TraceRecorder.
type TraceRecorderFunc func(tag any)

func (f TraceRecorderFunc) Record(tag any) { f(tag) }
