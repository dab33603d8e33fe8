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

package avl

// Result is the outcome of a tree operation.
type Result int

const (
	Inserted Result = iota
	Removed
	Found
	Duplicate
	NotFound
)

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r == Inserted || r == Removed || r == Found
}

func (r Result) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Found:
		return "found"
	case Duplicate:
		return "duplicate key"
	case NotFound:
		return "key not found"
	default:
		return "unknown"
	}
}
