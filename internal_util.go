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
	"fmt"
	"reflect"
)

// deepEqual is the equality used to detect a conflicting link: two
// independently-completed promises being merged together.
// reflect.DeepEqual is the pragmatic default for an arbitrary type
// parameter A; callers whose A has no meaningful deep equality should
// avoid racing two independent completions into Become.
func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// panicToError normalizes a recovered panic value into an error, the way
// Chain.Transform folds a panicking f into the next link's failure.
func panicToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("promise: panic: %v", v)
}
