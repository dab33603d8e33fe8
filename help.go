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
	"runtime"
	"sort"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/glamour"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlset %s**

A balanced (AVL) ordered key set driven by a tiny line protocol.

Built with Go %s

# 1. Protocol
* %s insert a key, prints OK or FAIL when the key is already present
* %s remove a key, prints OK or FAIL when the key is absent
* %s look a key up, prints OK or FAIL

Input ends at end of stream or at a command line without a key.

# 2. Commands
* avlset run [file...]: run the protocol over files or stdin (default)
* avlset shell: interactive prompt with meta commands (:help)
* avlset tui: terminal explorer showing the tree as it changes
* avlset bench: randomized stress run with invariant checks
* avlset settings: show ~/.avlset.yaml

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), "`+ key`", "`- key`", "`? key`")
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// helpTopics are the markdown pages behind the shell's ":help [topic]"
var helpTopics = map[string]string{
	"": `# avlset shell

Type protocol lines (` + "`+ key`, `- key`, `? key`" + `) or meta commands.
Keys may be quoted to include spaces: ` + "`+ \"new york\"`" + `.

Topics: ` + "`:help protocol`, `:help meta`" + `.`,

	"protocol": `# Protocol

| Line | Effect | Reply |
|------|--------|-------|
| ` + "`+ k`" + ` | insert k | OK, FAIL if present |
| ` + "`- k`" + ` | remove k | OK, FAIL if absent |
| ` + "`? k`" + ` | search k | OK, FAIL if absent |`,

	"meta": `# Meta commands

* ` + "`:print`" + ` draw the tree
* ` + "`:keys [prefix]`" + ` list keys in order
* ` + "`:stats`" + ` size, height and rotations
* ` + "`:check`" + ` verify the invariants
* ` + "`:copy`" + ` copy the keys to the clipboard
* ` + "`:quit`" + ` leave the shell`,
}

// newHelpRenderer returns a function rendering help topics to terminal
// markdown with glamour.
func newHelpRenderer(color bool, width int) (func(string) (string, error), error) {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create help renderer: %w", err)
	}

	return func(topic string) (string, error) {
		page, ok := helpTopics[topic]
		if !ok {
			return "", fmt.Errorf("no help for %q, topics: %s", topic, strings.Join(helpTopicNames(), ", "))
		}
		out, err := renderer.Render(page)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(out, "\n"), nil
	}, nil
}

func helpTopicNames() []string {
	names := make([]string, 0, len(helpTopics))
	for name := range helpTopics {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
