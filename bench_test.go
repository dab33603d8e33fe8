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
	"bytes"
	"strings"
	"testing"
)

func TestRunBenchVerified(t *testing.T) {
	report, err := runBench(300, 7, true, nil)
	if err != nil {
		t.Fatalf("runBench: %v", err)
	}
	if report.Keys != 300 || !report.Verification {
		t.Errorf("unexpected report %+v", report)
	}
	if report.PeakHeight == 0 || report.PeakHeight > report.HeightBound {
		t.Errorf("peak height %d outside (0, %d]", report.PeakHeight, report.HeightBound)
	}
	if report.Rotations == 0 {
		t.Error("300 shuffled keys should need rotations")
	}
	if !strings.Contains(report.String(), "verified every step: true") {
		t.Errorf("report text:\n%s", report)
	}
}

func TestRunBenchProgress(t *testing.T) {
	var progress bytes.Buffer
	if _, err := runBench(50, 1, false, &progress); err != nil {
		t.Fatalf("runBench: %v", err)
	}
	if !strings.Contains(progress.String(), "Stressing tree...") {
		t.Errorf("progress bar not written: %q", progress.String())
	}
}

func TestRunBenchEmpty(t *testing.T) {
	report, err := runBench(0, 1, true, nil)
	if err != nil {
		t.Fatalf("runBench: %v", err)
	}
	if report.PeakHeight != 0 || report.Rotations != 0 {
		t.Errorf("empty bench report %+v", report)
	}
}

func TestRunBenchNegativeKeys(t *testing.T) {
	_, err := runBench(-5, 1, false, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "must not be negative") {
		t.Errorf("expected negative keys error, got %v", err)
	}
}
