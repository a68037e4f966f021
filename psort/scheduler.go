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

// Task is one unit of deferred or immediate work: sorting the inclusive
// range [Left, Right] of the slice being sorted. Run performs the sort.
type Task struct {
	Left, Right int
	Run         func()
}

// Scheduler decides where spawned Tasks execute. A Task handed to Spawn may
// run on any worker, or immediately on the calling goroutine; the only
// requirement is that every spawned Task eventually runs, and that Wait does
// not return before every Task, including Tasks spawned by other Tasks, has
// finished.
//
// Wait rethrows the first failure raised inside any Task, so a broken sort
// surfaces at the top-level call instead of being swallowed on a worker.
type Scheduler interface {
	Spawn(t Task)
	Wait()
}

// SyncScheduler executes every Task immediately on the calling goroutine.
// It turns the coordinator into a plain recursive quicksort, which makes the
// fork/join logic testable without any concurrency, and doubles as a
// degenerate scheduler when parallelism is unwanted.
type SyncScheduler struct{}

func (SyncScheduler) Spawn(t Task) { t.Run() }

// Wait is a no-op: every Task already ran inside Spawn.
func (SyncScheduler) Wait() {}

// poolScheduler adapts a workerpool fork-join Group to the Scheduler seam.
type poolScheduler struct {
	g *workerpool.Group
}

func (s poolScheduler) Spawn(t Task) { s.g.Spawn(t.Run) }
func (s poolScheduler) Wait()        { s.g.Wait() }
