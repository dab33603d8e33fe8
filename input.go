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
	"io"
	"os"
)

// runSources feeds each named file through the interpreter in turn, or
// stdin when no name is given ("-" also means stdin). A malformed line in
// any source stops the whole run without error.
func runSources(in *Interpreter, stdin io.Reader, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, path := range paths {
		err := runSource(in, stdin, path)
		if errors.Is(err, ErrMalformedLine) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func runSource(in *Interpreter, stdin io.Reader, path string) error {
	if path == "-" {
		return in.Run(stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("command file %s not found", path)
		}
		return err
	}
	defer file.Close()

	err = in.Run(file)
	if err != nil && !errors.Is(err, ErrMalformedLine) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}
