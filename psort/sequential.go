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

// span is a pending [left, right] range awaiting sorting.
type span struct {
	left, right int
}

// SortSequential sorts data in place on the calling goroutine, with no task
// spawning. It is the single-threaded baseline the parallel sort is measured
// against, and the routine the coordinator falls back to below the cutoff.
func SortSequential[T Signed](data []T) {
	if len(data) <= 1 {
		return
	}
	sortSpan(data, 0, len(data)-1)
}

// sortSpan quicksorts data[left:right+1] using an explicit stack of pending
// ranges instead of call-stack recursion. After each partition it continues
// with the smaller side and pushes the larger, so the pending stack stays
// O(log n) deep even when the deterministic midpoint pivot degenerates on
// adversarial input.
func sortSpan[T Signed](data []T, left, right int) {
	stack := make([]span, 0, 48)
	stack = append(stack, span{left, right})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for s.left < s.right {
			i, j := Partition(data, s.left, s.right)
			if j-s.left < s.right-i {
				if i < s.right {
					stack = append(stack, span{i, s.right})
				}
				s.right = j
			} else {
				if s.left < j {
					stack = append(stack, span{s.left, j})
				}
				s.left = i
			}
		}
	}
}
