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

// Package commands holds the shell's meta commands (":print", ":stats",
// ...) and the manager that dispatches them.
package commands

import (
	"errors"
	"strings"
)

// Prefix marks a shell line as a meta command rather than a protocol line.
const Prefix = ":"

var (
	ErrNoArguments    = errors.New("no command provided")
	ErrUnknownCommand = errors.New("unknown command")
)

// Handler defines the interface for a meta command
type Handler interface {
	Run(cmd *Command) (string, error)
	Supports(name string) bool
	Priority() int // Lower number = higher priority
	Summary() string
}

// Command represents a parsed meta command with its parts
type Command struct {
	Parts    []string
	Name     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from command parts. The leading ':'
// is stripped from the name.
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Name:     strings.TrimPrefix(parts[0], Prefix),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasArg checks if command has at least n arguments
func (c *Command) HasArg(n int) bool {
	return len(c.Args) >= n
}

// GetArg returns the nth argument (0-indexed)
func (c *Command) GetArg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// IsMeta reports whether a shell token starts a meta command.
func IsMeta(token string) bool {
	return strings.HasPrefix(token, Prefix)
}
