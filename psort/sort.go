// Copyright 2025 go-parsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package psort

import "github.com/ajroetker/go-parsort/psort/workerpool"

// DefaultCutoff is the range size below which recursive calls run inline on
// the current worker instead of being spawned as tasks. Below this point
// scheduling overhead dominates the work a task would do.
const DefaultCutoff = 10000

// Sort sorts data in place using a worker pool sized to the available
// hardware concurrency and the default cutoff. It returns only after every
// spawned task has completed, so on return the slice is fully sorted.
//
// Slices of length 0 or 1 are returned unchanged without spawning anything.
func Sort[T Signed](data []T) {
	if len(data) <= 1 {
		return
	}
	pool := workerpool.New(0)
	defer pool.Close()
	SortWithPool(pool, data, DefaultCutoff)
}

// SortWithPool sorts data in place using the given pool and cutoff. The
// pool's worker count is the sort's degree of parallelism; pass a pool
// created with workerpool.New(0) for the hardware default. A cutoff below 1
// is treated as 1.
//
// The pool is not closed and may be reused for further sorts.
func SortWithPool[T Signed](pool *workerpool.Pool, data []T, cutoff int) {
	SortScheduled(poolScheduler{g: pool.NewGroup()}, data, cutoff)
}

// SortScheduled sorts data in place, spawning above-cutoff recursive calls
// through s. It calls s.Wait before returning, so completion of the call is
// the join barrier: any failure inside a spawned task is rethrown here in
// the caller's goroutine.
func SortScheduled[T Signed](s Scheduler, data []T, cutoff int) {
	if len(data) <= 1 {
		return
	}
	if cutoff < 1 {
		cutoff = 1
	}
	sortRange(s, data, 0, len(data)-1, cutoff)
	s.Wait()
}

// sortRange sorts the inclusive range [left, right]. Ranges smaller than
// the cutoff are sorted inline; otherwise each non-trivial side of the
// partition is spawned as its own task. A task's body is itself a sortRange
// call, so each task guarantees its own subtree is sorted by the time it
// finishes; no per-call join is needed.
func sortRange[T Signed](s Scheduler, data []T, left, right, cutoff int) {
	if left >= right {
		return
	}
	if right-left < cutoff {
		sortSpan(data, left, right)
		return
	}
	i, j := Partition(data, left, right)
	if left < j {
		l, r := left, j
		s.Spawn(Task{Left: l, Right: r, Run: func() {
			sortRange(s, data, l, r, cutoff)
		}})
	}
	if i < right {
		l, r := i, right
		s.Spawn(Task{Left: l, Right: r, Run: func() {
			sortRange(s, data, l, r, cutoff)
		}})
	}
}
