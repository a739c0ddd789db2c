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

// Package promise implements the write-once deferred-value primitive that
// underlies an asynchronous programming library: a cell that eventually
// carries either a successful value or a failure, plus the machinery to
// register callbacks against it and to fuse two such cells into one.
//
// The hard engineering lives in three places:
//
//   - the lock-free state machine (Waiting, Interruptible, Interrupted,
//     Done, Linked) that every Promise moves through exactly once per
//     transition, mediated entirely by atomic compare-and-swap;
//   - the depth-ordered callback dispatch that runs on completion, so a
//     chain of derived futures observes callbacks in causal order even
//     though later links in the chain register their callbacks after
//     earlier ones;
//   - the Become/link/compress merge protocol, which lets a long chain of
//     intermediate promises collapse to a single root as each link
//     completes, bounding the space a tail-recursive composition uses.
//
// Deliberately out of scope: the end-user Future combinator surface
// (Map/FlatMap/Select, timeouts), built on top of Respond/Transform;
// actually running submitted work (Scheduler is a narrow seam, with one
// default implementation in internal/worker); per-task context
// propagation beyond the LocalContext seam; and reclaiming completed
// promises beyond what normal Go garbage collection already does.
//
// # States and fates
//
// A Promise is always in exactly one of five states. Waiting and
// Interruptible/Interrupted carry no result; Done is terminal and
// immutable; Linked forwards every operation to another Promise. Kind
// names the five states.
//
// # Depth
//
// Every continuation carries a depth: the number of Respond hops between
// the Chain handle it is registered through and the root of that chain.
// Respond keeps the same root promise and adds one to the depth;
// Transform starts a new chain, on a new promise, at depth 0. Dispatch
// runs continuations in non-decreasing depth order, which is what makes
//
//	a.Respond(ctx, f)
//	a.Respond(ctx, g).Respond(ctx, h)
//
// run f, then g, then h, even though h is registered after both, one
// depth deeper than g.
package promise
