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
	"fmt"
	"strings"

	"github.com/cybrota/avlset/avl"
)

// PrintHandler draws the tree sideways
type PrintHandler struct {
	tree *avl.Tree[string]
}

func NewPrintHandler(tree *avl.Tree[string]) *PrintHandler {
	return &PrintHandler{tree: tree}
}

func (p *PrintHandler) Supports(name string) bool { return name == "print" || name == "p" }
func (p *PrintHandler) Priority() int             { return 1 }
func (p *PrintHandler) Summary() string           { return ":print    draw the tree, right subtree on top" }

func (p *PrintHandler) Run(cmd *Command) (string, error) {
	if p.tree.IsEmpty() {
		return "(empty)", nil
	}
	var b strings.Builder
	p.tree.Fprint(&b)
	return strings.TrimRight(b.String(), "\n"), nil
}

// KeysHandler lists the keys in order, optionally only those with a
// given prefix
type KeysHandler struct {
	tree *avl.Tree[string]
}

func NewKeysHandler(tree *avl.Tree[string]) *KeysHandler {
	return &KeysHandler{tree: tree}
}

func (k *KeysHandler) Supports(name string) bool { return name == "keys" || name == "k" }
func (k *KeysHandler) Priority() int             { return 2 }
func (k *KeysHandler) Summary() string           { return ":keys [prefix]  list keys in order" }

func (k *KeysHandler) Run(cmd *Command) (string, error) {
	prefix := cmd.GetArg(0)
	var keys []string
	k.tree.Walk(func(n *avl.Node[string]) bool {
		if strings.HasPrefix(n.Key(), prefix) {
			keys = append(keys, n.Key())
		}
		return true
	})
	return strings.Join(keys, "\n"), nil
}

// StatsHandler reports size, height and rotation count
type StatsHandler struct {
	tree *avl.Tree[string]
}

func NewStatsHandler(tree *avl.Tree[string]) *StatsHandler {
	return &StatsHandler{tree: tree}
}

func (s *StatsHandler) Supports(name string) bool { return name == "stats" || name == "s" }
func (s *StatsHandler) Priority() int             { return 3 }
func (s *StatsHandler) Summary() string           { return ":stats    key count, height and rotations" }

func (s *StatsHandler) Run(cmd *Command) (string, error) {
	return FormatStats(s.tree), nil
}

// FormatStats is the one-line summary shared by the shell and the TUI.
func FormatStats(tree *avl.Tree[string]) string {
	return fmt.Sprintf("keys=%d height=%d bound=%d rotations=%d",
		tree.Len(), tree.Height(), avl.MaxHeight(tree.Len()), tree.Rotations())
}

// CheckHandler verifies the tree invariants
type CheckHandler struct {
	tree *avl.Tree[string]
}

func NewCheckHandler(tree *avl.Tree[string]) *CheckHandler {
	return &CheckHandler{tree: tree}
}

func (c *CheckHandler) Supports(name string) bool { return name == "check" }
func (c *CheckHandler) Priority() int             { return 4 }
func (c *CheckHandler) Summary() string           { return ":check    verify order, balance and heights" }

func (c *CheckHandler) Run(cmd *Command) (string, error) {
	if err := c.tree.Check(); err != nil {
		return "", err
	}
	return "consistent", nil
}
