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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlset/commands"
)

// Shell is the interactive front end: protocol lines plus ":" meta
// commands. Unlike the batch interpreter it keeps going after a bad line.
type Shell struct {
	interp  *Interpreter
	manager *commands.Manager
	styles  *Styles
	prompt  string
	reader  *bufio.Reader
	out     io.Writer
}

// NewShell wires the meta commands to the interpreter's tree. render
// produces help pages; they are cached in helpCache.
func NewShell(interp *Interpreter, config ShellConfig, in io.Reader, out io.Writer,
	helpCache *cache.Cache, render func(string) (string, error)) *Shell {
	tree := interp.Tree()

	manager := commands.NewManager()
	manager.Register(commands.NewHelpHandler(func(topic string) (string, error) {
		page, err := GetOrFillCache(helpCache, topic, render)
		if err != nil {
			return "", err
		}
		if topic == "meta" || topic == "" {
			page += "\n\n" + manager.Summary()
		}
		return page, nil
	}))
	manager.Register(commands.NewPrintHandler(tree))
	manager.Register(commands.NewKeysHandler(tree))
	manager.Register(commands.NewStatsHandler(tree))
	manager.Register(commands.NewCheckHandler(tree))
	manager.Register(commands.NewCopyHandler(tree.Keys))

	return &Shell{
		interp:  interp,
		manager: manager,
		styles:  NewStyles(config.Color),
		prompt:  config.Prompt,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run reads lines until EOF or :quit.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, s.styles.InputPrompt.Render(s.prompt))
		input, err := s.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			fmt.Fprintln(s.out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !s.handleLine(strings.TrimSpace(input)) {
			return nil
		}
	}
}

// handleLine executes one line and reports whether the shell continues.
func (s *Shell) handleLine(input string) bool {
	if input == "" {
		return true
	}

	tokens, err := splitLine(input)
	if err != nil {
		fmt.Fprintln(s.out, s.styles.ErrorMessage.Render(err.Error()))
		return true
	}

	switch tokens[0] {
	case ":quit", ":q", ":exit":
		return false
	}

	if commands.IsMeta(tokens[0]) {
		out, err := s.manager.Run(tokens)
		if err != nil {
			fmt.Fprintln(s.out, s.styles.ErrorMessage.Render(err.Error()))
			return true
		}
		if out != "" {
			fmt.Fprintln(s.out, out)
		}
		return true
	}

	op, key, err := parseTokens(tokens)
	if err != nil {
		fmt.Fprintln(s.out, s.styles.ErrorMessage.Render("missing key, try :help protocol"))
		return true
	}
	result, known := s.interp.Exec(op, key)
	if !known {
		fmt.Fprintln(s.out, s.styles.ErrorMessage.Render(fmt.Sprintf("unknown command %q, try :help", string(op))))
		return true
	}
	fmt.Fprintln(s.out, s.styles.Reply(reply(result)))
	return true
}

// splitLine splits a shell line into words, honouring quotes.
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("failed to parse %q: no words", line)
	}
	return args, nil
}
