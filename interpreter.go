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
	"log"
	"strings"

	"github.com/cybrota/avlset/avl"
)

// Protocol commands, one per input line followed by a key.
const (
	opInsert = '+'
	opRemove = '-'
	opSearch = '?'
)

var (
	// ErrMalformedLine ends the command loop: a command without a key.
	ErrMalformedLine = errors.New("malformed command line")

	errBlankLine = errors.New("blank line")
)

// Interpreter runs the line protocol against a single tree and writes
// OK or FAIL for every recognised command.
type Interpreter struct {
	tree   *avl.Tree[string]
	filter *keyFilter // nil when disabled
	verify bool
	out    io.Writer
}

func NewInterpreter(config InterpreterConfig, out io.Writer) *Interpreter {
	in := &Interpreter{
		tree:   avl.New[string](),
		verify: config.Verify,
		out:    out,
	}
	if config.Filter.Enabled {
		in.filter = newKeyFilter(config.Filter)
	}
	return in
}

// Tree exposes the tree for the shell and TUI views.
func (in *Interpreter) Tree() *avl.Tree[string] {
	return in.tree
}

// Exec applies one command to the tree. known is false for a command
// character outside the protocol, which leaves the tree alone.
func (in *Interpreter) Exec(op byte, key string) (result avl.Result, known bool) {
	switch op {
	case opInsert:
		result = in.tree.Insert(key)
		if result == avl.Inserted && in.filter != nil {
			in.filter.Add(key)
			if in.filter.Full(in.tree.Len()) {
				in.filter.Rebuild(in.tree.Keys())
			}
		}
		in.verifyTree(op, key)

	case opRemove:
		result = in.tree.Remove(key)
		if result == avl.Removed && in.filter != nil && in.filter.Removed() {
			in.filter.Rebuild(in.tree.Keys())
		}
		in.verifyTree(op, key)

	case opSearch:
		if in.filter != nil && !in.filter.MayContain(key) {
			return avl.NotFound, true
		}
		result = in.tree.Lookup(key)

	default:
		return avl.NotFound, false
	}
	return result, true
}

func (in *Interpreter) verifyTree(op byte, key string) {
	if !in.verify {
		return
	}
	if err := in.tree.Check(); err != nil {
		log.Printf("tree inconsistent after %c %q: %v", op, key, err)
	}
}

// Run reads commands from r until end of input or a malformed line. It
// returns nil at end of input, ErrMalformedLine when a line stopped it,
// or the read error.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		op, key, err := parseLine(scanner.Text())
		if errors.Is(err, errBlankLine) {
			continue
		}
		if err != nil {
			return err
		}

		result, known := in.Exec(op, key)
		if !known {
			continue
		}
		if _, err := fmt.Fprintln(in.out, reply(result)); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// parseLine splits a line into its command character and key. The key may
// follow the command directly ("+a") or after whitespace ("+ a"); anything
// after the key is ignored.
func parseLine(line string) (byte, string, error) {
	return parseTokens(strings.Fields(line))
}

// parseTokens is parseLine for a line already split into tokens.
func parseTokens(tokens []string) (byte, string, error) {
	if len(tokens) == 0 {
		return 0, "", errBlankLine
	}

	first := tokens[0]
	if len(first) > 1 {
		return first[0], first[1:], nil
	}
	// the shell tokenizer turns `+ ""` into an empty second word
	if len(tokens) < 2 || tokens[1] == "" {
		return 0, "", fmt.Errorf("%w: %q", ErrMalformedLine, strings.Join(tokens, " "))
	}
	return first[0], tokens[1], nil
}

func reply(result avl.Result) string {
	if result.OK() {
		return "OK"
	}
	return "FAIL"
}
