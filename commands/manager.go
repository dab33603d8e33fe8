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
	"sort"
	"strings"
)

// Manager manages the registered meta command handlers
type Manager struct {
	handlers []Handler
}

func NewManager() *Manager {
	return &Manager{}
}

// Register adds a handler, keeping the list ordered by priority
func (m *Manager) Register(handler Handler) {
	m.handlers = append(m.handlers, handler)
	sort.SliceStable(m.handlers, func(i, j int) bool {
		return m.handlers[i].Priority() < m.handlers[j].Priority()
	})
}

// Run dispatches the command parts to the highest priority handler that
// supports the command name.
func (m *Manager) Run(parts []string) (string, error) {
	if len(parts) == 0 {
		return "", ErrNoArguments
	}

	cmd := NewCommand(parts)
	for _, handler := range m.handlers {
		if handler.Supports(cmd.Name) {
			out, err := handler.Run(cmd)
			if err != nil {
				return "", fmt.Errorf("%s: %w", cmd.FullName, err)
			}
			return out, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCommand, cmd.FullName)
}

// Summary lists every registered handler's summary line
func (m *Manager) Summary() string {
	lines := make([]string, 0, len(m.handlers))
	for _, handler := range m.handlers {
		lines = append(lines, handler.Summary())
	}
	return strings.Join(lines, "\n")
}
