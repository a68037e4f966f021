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

import (
	"math/rand"
	"testing"
)

// checkPartition verifies the Partition postconditions on data[left:right+1]
// after a call that returned (i, j) for the given pivot value.
func checkPartition[T Signed](t *testing.T, data []T, left, right, i, j int, pivot T) {
	t.Helper()

	if i <= j {
		t.Errorf("Partition returned i=%d <= j=%d, cursors must have crossed", i, j)
	}
	if j < left-1 || i > right+1 {
		t.Errorf("Partition cursors out of range: i=%d, j=%d for [%d,%d]", i, j, left, right)
	}
	for k := left; k <= j; k++ {
		if data[k] > pivot {
			t.Errorf("data[%d]=%v left of split but > pivot %v", k, data[k], pivot)
		}
	}
	for k := i; k <= right; k++ {
		if data[k] < pivot {
			t.Errorf("data[%d]=%v right of split but < pivot %v", k, data[k], pivot)
		}
	}
}

// TestPartitionConcrete tests partitioning a small known array
func TestPartitionConcrete(t *testing.T) {
	data := []int{5, 3, 8, 1, 9, 2}
	pivot := data[(0+5)/2] // 8
	i, j := Partition(data, 0, 5)
	checkPartition(t, data, 0, 5, i, j, pivot)
}

// TestPartitionRandom tests postconditions across random inputs and sizes
func TestPartitionRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{1, 2, 3, 4, 7, 8, 15, 16, 100, 1000}
	for _, n := range sizes {
		data := make([]int32, n)
		for k := range data {
			data[k] = rng.Int31n(100) - 50
		}
		pivot := data[(n-1)/2]
		i, j := Partition(data, 0, n-1)
		checkPartition(t, data, 0, n-1, i, j, pivot)
	}
}

// TestPartitionSubrange tests partitioning an interior range only
func TestPartitionSubrange(t *testing.T) {
	data := []int{99, -7, 4, 2, 8, 6, -1, 42}
	left, right := 2, 6
	before := []int{data[0], data[1], data[7]}
	pivot := data[(left+right)/2]

	i, j := Partition(data, left, right)
	checkPartition(t, data, left, right, i, j, pivot)

	// Elements outside [left, right] must be untouched
	after := []int{data[0], data[1], data[7]}
	for k := range before {
		if before[k] != after[k] {
			t.Errorf("element outside range modified: %v -> %v", before, after)
			break
		}
	}
}

// TestPartitionAllEqual tests that an all-equal range terminates
func TestPartitionAllEqual(t *testing.T) {
	data := []int16{5, 5, 5, 5}
	i, j := Partition(data, 0, 3)
	checkPartition(t, data, 0, 3, i, j, int16(5))
	for k, v := range data {
		if v != 5 {
			t.Errorf("data[%d] = %d, want 5", k, v)
		}
	}
}

// TestPartitionSingleElement tests a one-element range
func TestPartitionSingleElement(t *testing.T) {
	data := []int{7}
	i, j := Partition(data, 0, 0)
	if i <= j {
		t.Errorf("Partition(single) returned i=%d <= j=%d", i, j)
	}
	if data[0] != 7 {
		t.Errorf("data[0] = %d, want 7", data[0])
	}
}

// TestPartitionChildRangesDisjoint tests that the two child ranges produced
// by one partition never share an index and jointly cover the parent
func TestPartitionChildRangesDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(200)
		data := make([]int64, n)
		for k := range data {
			data[k] = rng.Int63n(32)
		}
		i, j := Partition(data, 0, n-1)

		// Disjoint: [0,j] and [i,n-1] with i > j
		if i <= j {
			t.Fatalf("child ranges overlap: [0,%d] and [%d,%d]", j, i, n-1)
		}
		// Cover: at most one index between them, and any such element
		// already equals the pivot, so it is in final position
		if i-j > 2 {
			t.Fatalf("child ranges leave a gap: j=%d, i=%d", j, i)
		}
	}
}
