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

// Package montecarlo estimates π by random sampling: the fraction of points
// uniformly drawn from [-1,1]² that land inside the unit circle approaches
// π/4. The counting loop is embarrassingly parallel, so the parallel
// estimator splits the tosses into one chunk per worker, each with its own
// random source, and reduces the per-chunk hit counts after the join. There
// is no shared mutable state between chunks.
//
// Seeds are derived from the wall clock per chunk, so estimates vary from
// run to run; only the tolerance is reproducible.
package montecarlo

import (
	"math/rand"
	"time"

	"github.com/ajroetker/go-parsort/psort/workerpool"
)

// EstimatePi estimates π from the given number of tosses, distributing the
// counting across the pool's workers.
func EstimatePi(pool *workerpool.Pool, tosses int) float64 {
	if tosses <= 0 {
		return 0
	}

	chunks := pool.NumWorkers()
	if chunks > tosses {
		chunks = tosses
	}
	perChunk := tosses / chunks

	// Each chunk writes only its own slot; the reduction happens after
	// ParallelFor's join.
	counts := make([]int, chunks)
	base := time.Now().UnixNano()
	pool.ParallelFor(chunks, func(start, end int) {
		for c := start; c < end; c++ {
			n := perChunk
			if c == chunks-1 {
				n = tosses - perChunk*(chunks-1)
			}
			rng := rand.New(rand.NewSource(base + int64(c)))
			counts[c] = countInCircle(rng, n)
		}
	})

	inCircle := 0
	for _, c := range counts {
		inCircle += c
	}
	return 4 * float64(inCircle) / float64(tosses)
}

// EstimatePiSequential estimates π on the calling goroutine with a single
// random source. Baseline for timing comparisons.
func EstimatePiSequential(tosses int) float64 {
	if tosses <= 0 {
		return 0
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return 4 * float64(countInCircle(rng, tosses)) / float64(tosses)
}

// countInCircle draws n points from [-1,1]² and returns how many fall
// strictly inside the unit circle.
func countInCircle(rng *rand.Rand, n int) int {
	hits := 0
	for i := 0; i < n; i++ {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		if x*x+y*y < 1 {
			hits++
		}
	}
	return hits
}
