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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() Model {
	interp := NewInterpreter(DefaultConfig().Interpreter, nil)
	render := func(topic string) (string, error) {
		return "HELP[" + topic + "]", nil
	}
	m := InitialModel(interp, NewHelpCache(), render, false)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func typeLine(m Model, line string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestModelExecutesProtocolLines(t *testing.T) {
	m := newTestModel()

	m = typeLine(m, "+ a")
	if !m.interp.Tree().Contains("a") {
		t.Fatal("+ a was not applied")
	}
	if !m.statusOK || !strings.HasPrefix(m.status, "OK") {
		t.Errorf("status = %q, ok=%t", m.status, m.statusOK)
	}
	if m.textInput.Value() != "" {
		t.Errorf("input not cleared: %q", m.textInput.Value())
	}

	m = typeLine(m, "+ a")
	if m.statusOK || !strings.Contains(m.status, "duplicate key") {
		t.Errorf("duplicate status = %q", m.status)
	}

	m = typeLine(m, "?")
	if m.status != "missing key" {
		t.Errorf("malformed status = %q", m.status)
	}

	m = typeLine(m, "* a")
	if !strings.Contains(m.status, "unknown command") {
		t.Errorf("unknown status = %q", m.status)
	}

	if view := m.View(); !strings.Contains(view, "keys=1") {
		t.Errorf("view missing stats:\n%s", view)
	}
}

func TestModelDeletesSelectedKey(t *testing.T) {
	m := newTestModel()
	m = typeLine(m, "+ b")
	m = typeLine(m, "+ c")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.focusIndex != focusKeys {
		t.Fatal("tab did not move focus to the keys list")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = next.(Model)
	if m.interp.Tree().Contains("b") {
		t.Error("selected key b was not removed")
	}
	if !m.interp.Tree().Contains("c") {
		t.Error("unselected key c was removed")
	}
	if len(m.keysList.Items()) != 1 {
		t.Errorf("keys list has %d items; want 1", len(m.keysList.Items()))
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel()
	if m.View() == "Initializing..." {
		t.Fatal("model not ready after window size")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(Model)
	if !m.showHelp || !strings.Contains(m.treeViewport.View(), "HELP[protocol]") {
		t.Errorf("help page not shown:\n%s", m.treeViewport.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit")
	}
}

func TestModelTinyTerminal(t *testing.T) {
	interp := NewInterpreter(DefaultConfig().Interpreter, nil)
	m := InitialModel(interp, NewHelpCache(), func(string) (string, error) { return "", nil }, false)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 5, Height: 3})
	m = typeLine(next.(Model), "+ a")

	if view := m.View(); !strings.Contains(view, "Terminal too small") {
		t.Errorf("view = %q", view)
	}
	if !m.interp.Tree().Contains("a") {
		t.Error("input ignored on a small terminal")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if view := next.(Model).View(); !strings.Contains(view, "keys=1") {
		t.Errorf("view after resize missing stats:\n%s", view)
	}
}
