// Package psort provides a fork-join parallel in-place quicksort for slices
// of signed integers.
//
// # Algorithm
//
// The sort is a classic divide-and-conquer quicksort built from two parts:
//
//   - Partition: an in-place Hoare partition around a deterministic
//     midpoint pivot, returning the cursor pair that delimits the two
//     child ranges.
//   - Coordinator: recursively partitions shrinking ranges and decides,
//     per recursive call, whether to run it inline or hand it to a
//     scheduler as an independently schedulable task. Below a size cutoff
//     no new tasks are created, bounding task-spawn overhead where
//     scheduling would dominate the actual work.
//
// The cutoff governs task creation only, never algorithm choice: recursion
// below the cutoff continues the same quicksort on the calling worker.
//
// # Concurrency
//
// Partitioning a range produces two disjoint child ranges, so tasks sorting
// sibling ranges never touch the same index and the element buffer needs no
// locking. The only synchronization is the join barrier at the top-level
// call: Sort does not return until every spawned task, transitively, has
// completed, at which point the slice is fully sorted in place.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-parsort/psort"
//
//	func ProcessData(data []int32) {
//	    psort.Sort(data) // In-place ascending sort
//	}
//
// For repeated sorts, create one pool and reuse it:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	for _, batch := range batches {
//	    psort.SortWithPool(pool, batch, psort.DefaultCutoff)
//	}
//
// # Limitations
//
// The pivot is the midpoint element, chosen deterministically. Adversarial
// inputs can therefore trigger quadratic behavior; this is an accepted
// property of the algorithm, not a bug. Equal elements are not kept stable,
// and there is no comparator form: the element type must be a signed
// integer type.
package psort
