// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlset/avl"
)

// BenchReport summarises a stress run.
type BenchReport struct {
	Keys         int
	PeakHeight   int
	HeightBound  int
	Rotations    uint64
	InsertTime   time.Duration
	RemoveTime   time.Duration
	Verification bool
}

func (r BenchReport) String() string {
	return fmt.Sprintf("keys: %d\npeak height: %d (bound %d)\nrotations: %d\ninsert: %v\nremove: %v\nverified every step: %t",
		r.Keys, r.PeakHeight, r.HeightBound, r.Rotations, r.InsertTime, r.RemoveTime, r.Verification)
}

// runBench inserts n shuffled keys, then removes them in another order.
// With verify set the invariants are checked after every step and the
// first violation aborts the run. progress may be nil.
func runBench(n int, seed int64, verify bool, progress io.Writer) (BenchReport, error) {
	if n < 0 {
		return BenchReport{}, fmt.Errorf("keys must not be negative, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	keys := rng.Perm(n)
	tree := avl.New[int]()
	report := BenchReport{Keys: n, HeightBound: avl.MaxHeight(n), Verification: verify}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(2*n,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	start := time.Now()
	for i, k := range keys {
		if r := tree.Insert(k); r != avl.Inserted {
			return report, fmt.Errorf("insert %d: %s", k, r)
		}
		if verify {
			if err := tree.Check(); err != nil {
				return report, fmt.Errorf("after insert #%d (%d): %w", i, k, err)
			}
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	report.InsertTime = time.Since(start)
	report.PeakHeight = tree.Height()
	if report.PeakHeight > report.HeightBound {
		return report, fmt.Errorf("height %d exceeds bound %d for %d keys", report.PeakHeight, report.HeightBound, n)
	}

	start = time.Now()
	for i, idx := range rng.Perm(n) {
		k := keys[idx]
		if r := tree.Remove(k); r != avl.Removed {
			return report, fmt.Errorf("remove %d: %s", k, r)
		}
		if verify {
			if err := tree.Check(); err != nil {
				return report, fmt.Errorf("after remove #%d (%d): %w", i, k, err)
			}
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	report.RemoveTime = time.Since(start)
	report.Rotations = tree.Rotations()

	if !tree.IsEmpty() {
		return report, fmt.Errorf("%d keys left after removing everything", tree.Len())
	}
	return report, nil
}
