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
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlset/commands"
)

const (
	focusInput = iota
	focusKeys
)

// smallest terminal the layout fits in
const (
	minWidth  = 20
	minHeight = 10
)

// keyItem represents a key in the keys list
type keyItem struct {
	key string
}

func (i keyItem) FilterValue() string { return i.key }
func (i keyItem) Title() string       { return i.key }
func (i keyItem) Description() string { return "" }

// Model represents the Bubble Tea application state. The tree is only
// touched from Update, which bubbletea runs on a single goroutine.
type Model struct {
	ready bool

	textInput    textinput.Model
	keysList     list.Model
	treeViewport viewport.Model

	interp    *Interpreter
	helpCache *cache.Cache
	render    func(string) (string, error)

	focusIndex int
	showHelp   bool
	status     string
	statusOK   bool

	styles *Styles

	width  int
	height int
}

func InitialModel(interp *Interpreter, hc *cache.Cache, render func(string) (string, error), color bool) Model {
	ti := textinput.New()
	ti.Placeholder = "+ key, - key or ? key"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	keysList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	keysList.SetShowTitle(false)
	keysList.SetShowHelp(false)

	treeViewport := viewport.New(0, 0)

	m := Model{
		textInput:    ti,
		keysList:     keysList,
		treeViewport: treeViewport,
		interp:       interp,
		helpCache:    hc,
		render:       render,
		focusIndex:   focusInput,
		styles:       NewStyles(color),
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.toggleFocus()
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refresh()
			return m, nil
		}

		if m.focusIndex == focusKeys {
			return m.updateKeys(msg)
		}
		return m.updateInput(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *Model) toggleFocus() {
	if m.focusIndex == focusInput {
		m.focusIndex = focusKeys
		m.textInput.Blur()
	} else {
		m.focusIndex = focusInput
		m.textInput.Focus()
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.execute(m.textInput.Value())
		m.textInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d", "delete", "backspace":
		if item, ok := m.keysList.SelectedItem().(keyItem); ok {
			m.apply(opRemove, item.key)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.keysList, cmd = m.keysList.Update(msg)
	return m, cmd
}

// execute runs one protocol line typed into the input box
func (m *Model) execute(line string) {
	op, key, err := parseLine(line)
	if err != nil {
		if !errors.Is(err, errBlankLine) {
			m.setStatus("missing key", false)
		}
		return
	}
	m.apply(op, key)
}

func (m *Model) apply(op byte, key string) {
	result, known := m.interp.Exec(op, key)
	if !known {
		m.setStatus(fmt.Sprintf("unknown command %q", string(op)), false)
		return
	}
	m.setStatus(fmt.Sprintf("%s %c %s: %s", reply(result), op, key, result), result.OK())
	m.refresh()
}

func (m *Model) setStatus(text string, ok bool) {
	m.status = text
	m.statusOK = ok
}

// refresh rebuilds the keys list and the tree picture after a change
func (m *Model) refresh() {
	tree := m.interp.Tree()

	keys := tree.Keys()
	items := make([]list.Item, len(keys))
	for i, k := range keys {
		items[i] = keyItem{key: k}
	}
	m.keysList.SetItems(items)

	if m.showHelp {
		page, err := GetOrFillCache(m.helpCache, "protocol", m.render)
		if err != nil {
			page = err.Error()
		}
		m.treeViewport.SetContent(page)
		return
	}

	if tree.IsEmpty() {
		m.treeViewport.SetContent("(empty tree)")
		return
	}
	var b strings.Builder
	tree.Fprint(&b)
	m.treeViewport.SetContent(b.String())
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	if m.tooSmall() {
		return
	}

	inputHeight := 3
	bodyHeight := m.height - inputHeight - 6
	keysWidth := (m.width * 3 / 10) - 1
	treeWidth := m.width - keysWidth - 3

	m.textInput.Width = m.width - 8
	m.keysList.SetSize(keysWidth-2, bodyHeight-2)
	m.treeViewport.Width = treeWidth - 2
	m.treeViewport.Height = bodyHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.tooSmall() {
		return "Terminal too small. Please resize your terminal."
	}

	inputBorder, keysBorder := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focusIndex == focusKeys {
		inputBorder, keysBorder = keysBorder, inputBorder
	}

	title := m.styles.Title.Render("avlset " + commands.FormatStats(m.interp.Tree()))
	input := inputBorder.Width(m.width - 2).Render(m.textInput.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		keysBorder.Render(m.keysList.View()),
		m.styles.BorderBlurred.Render(m.treeViewport.View()),
	)

	status := m.styles.HelpDesc.Render(m.status)
	if m.status != "" && m.statusOK {
		status = m.styles.SuccessMessage.Render(m.status)
	} else if m.status != "" {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, input, body, status, m.renderHelp())
}

func (m Model) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}

// renderHelp renders the key binding footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "d", "f1", "esc"}
	descs := []string{"run", "switch focus", "delete selected", "protocol help", "quit"}

	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = m.styles.HelpKey.Render(keys[i]) + " " + m.styles.HelpDesc.Render(descs[i])
	}
	return strings.Join(parts, "  ")
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(interp *Interpreter, hc *cache.Cache, render func(string) (string, error), color bool) error {
	program := tea.NewProgram(
		InitialModel(interp, hc, render, color),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
