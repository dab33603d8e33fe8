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

package commands

import (
	"strings"

	"github.com/atotto/clipboard"
)

// CopyHandler puts the in-order keys on the system clipboard
type CopyHandler struct {
	keys      func() []string
	writeAll  func(string) error
	separator string
}

func NewCopyHandler(keys func() []string) *CopyHandler {
	return &CopyHandler{keys: keys, writeAll: clipboard.WriteAll, separator: "\n"}
}

func (c *CopyHandler) Supports(name string) bool { return name == "copy" }
func (c *CopyHandler) Priority() int             { return 5 }
func (c *CopyHandler) Summary() string           { return ":copy     copy the keys to the clipboard" }

func (c *CopyHandler) Run(cmd *Command) (string, error) {
	text := strings.Join(c.keys(), c.separator)
	if err := c.writeAll(text); err != nil {
		return "", err
	}
	return "copied", nil
}
