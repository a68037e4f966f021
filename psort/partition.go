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

// Signed is a constraint for signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Partition rearranges data[left:right+1] in place around the midpoint
// pivot data[(left+right)/2] using Hoare's scheme and returns the final
// cursor pair (i, j).
//
// On return:
//   - every element in data[left:j+1] is <= pivot
//   - every element in data[i:right+1] is >= pivot
//   - i > j, and the child ranges [left, j] and [i, right] are disjoint
//     subranges whose union (with any elements in between, already equal
//     to the pivot) covers [left, right]
//
// Requires 0 <= left <= right < len(data); out-of-range bounds panic.
// No allocation, O(right-left) time, O(1) extra space.
func Partition[T Signed](data []T, left, right int) (i, j int) {
	pivot := data[(left+right)/2]
	i, j = left, right
	for i <= j {
		for data[i] < pivot {
			i++
		}
		for data[j] > pivot {
			j--
		}
		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
	}
	return i, j
}
