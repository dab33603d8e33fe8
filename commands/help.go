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

// HelpHandler renders a help topic; the renderer is supplied by the caller
// so the shell can cache rendered pages.
type HelpHandler struct {
	render func(topic string) (string, error)
}

func NewHelpHandler(render func(topic string) (string, error)) *HelpHandler {
	return &HelpHandler{render: render}
}

func (h *HelpHandler) Supports(name string) bool { return name == "help" || name == "h" }
func (h *HelpHandler) Priority() int             { return 0 }
func (h *HelpHandler) Summary() string           { return ":help     show this help" }

func (h *HelpHandler) Run(cmd *Command) (string, error) {
	return h.render(cmd.GetArg(0))
}
