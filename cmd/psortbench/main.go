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

// psortbench times the sequential baseline against the fork-join parallel
// sort on identical pseudo-random input, and optionally the Monte Carlo π
// estimator in both forms. Elapsed time is measured by timestamping
// immediately before and after each call; return from a sort implies the
// full join has occurred.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-parsort/psort"
	"github.com/ajroetker/go-parsort/psort/contrib/montecarlo"
	"github.com/ajroetker/go-parsort/psort/workerpool"
)

var (
	numToSort = flag.Int("n", 1_000_000, "Number of values to sort")
	cutoff    = flag.Int("cutoff", psort.DefaultCutoff, "Range size below which no new tasks are spawned")
	workers   = flag.Int("workers", 0, "Worker count (0 = hardware concurrency)")
	tosses    = flag.Int("tosses", 0, "Monte Carlo π tosses (0 = skip π benchmark)")
	seed      = flag.Int64("seed", 0, "Base seed for input generation (0 = time-derived)")
)

func main() {
	flag.Parse()

	if *numToSort <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive\n")
		os.Exit(1)
	}
	if *cutoff < 1 {
		fmt.Fprintf(os.Stderr, "Error: -cutoff must be positive\n")
		os.Exit(1)
	}

	pool := workerpool.New(*workers)
	defer pool.Close()

	fmt.Printf("CPUs: %d, GOMAXPROCS: %d, workers: %d, AVX2: %v, AVX-512: %v\n\n",
		runtime.NumCPU(), runtime.GOMAXPROCS(0), pool.NumWorkers(),
		cpu.X86.HasAVX2, cpu.X86.HasAVX512)

	base := *seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	// Fill in parallel with one derived seed per chunk, then copy so both
	// sorts operate on identical input.
	arrSeq := make([]int, *numToSort)
	pool.ParallelFor(len(arrSeq), func(start, end int) {
		rng := rand.New(rand.NewSource(base + int64(start)))
		for i := start; i < end; i++ {
			arrSeq[i] = rng.Int()
		}
	})
	arrPar := make([]int, len(arrSeq))
	copy(arrPar, arrSeq)

	fmt.Printf("Sorting %d values sequentially...\n", *numToSort)
	start := time.Now()
	psort.SortSequential(arrSeq)
	fmt.Printf("Took %v\n\n", time.Since(start))

	fmt.Printf("Sorting %d values in parallel (cutoff %d)...\n", *numToSort, *cutoff)
	start = time.Now()
	psort.SortWithPool(pool, arrPar, *cutoff)
	fmt.Printf("Took %v\n\n", time.Since(start))

	if !slices.IsSorted(arrPar) || !slices.Equal(arrSeq, arrPar) {
		fmt.Fprintf(os.Stderr, "Error: parallel sort output does not match sequential baseline\n")
		os.Exit(1)
	}
	fmt.Println("Outputs verified identical.")

	if *tosses > 0 {
		fmt.Printf("\nEstimating π sequentially from %d tosses...\n", *tosses)
		start = time.Now()
		pi := montecarlo.EstimatePiSequential(*tosses)
		fmt.Printf("π ≈ %.6f, took %v\n\n", pi, time.Since(start))

		fmt.Printf("Estimating π in parallel from %d tosses...\n", *tosses)
		start = time.Now()
		pi = montecarlo.EstimatePi(pool, *tosses)
		fmt.Printf("π ≈ %.6f, took %v\n", pi, time.Since(start))
	}
}
