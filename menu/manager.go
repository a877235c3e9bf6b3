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

package menu

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Manager holds the registered menu commands and dispatches menu lines to
// them.
type Manager struct {
	commands []Command
	byKey    map[string]Command
}

// NewManager creates a manager with every console command registered, in
// the order they are listed in the menu.
func NewManager() *Manager {
	manager := &Manager{byKey: map[string]Command{}}

	manager.RegisterCommand(&menuCommand{})
	manager.RegisterCommand(&displayCommand{})
	manager.RegisterCommand(&sidewaysCommand{})
	manager.RegisterCommand(&addCommand{})
	manager.RegisterCommand(&deleteCommand{})
	manager.RegisterCommand(&findCommand{})
	manager.RegisterCommand(&checkCommand{})
	manager.RegisterCommand(&clearCommand{})
	manager.RegisterCommand(&quitCommand{})

	return manager
}

// RegisterCommand adds a command. Keys already taken keep their earlier
// owner.
func (m *Manager) RegisterCommand(cmd Command) {
	m.commands = append(m.commands, cmd)
	for _, k := range cmd.Keys() {
		if _, taken := m.byKey[k]; !taken {
			m.byKey[k] = cmd
		}
	}
}

// Commands returns the registered commands in menu order.
func (m *Manager) Commands() []Command {
	return m.commands
}

// Lookup finds the command for a key. A full word such as "add" is tried
// first, then its first character.
func (m *Manager) Lookup(in *Input) (Command, bool) {
	if cmd, ok := m.byKey[in.Key]; ok {
		return cmd, true
	}
	cmd, ok := m.byKey[in.Choice()]
	return cmd, ok
}

// Dispatch tokenises a menu line and runs the matching command.
func (m *Manager) Dispatch(s *Session, line string) (bool, error) {
	parts, err := splitLine(line)
	if err != nil {
		return false, err
	}
	in := NewInput(parts)
	if in.Key == "" {
		return false, nil
	}

	cmd, ok := m.Lookup(in)
	if !ok {
		s.printf("Unknown command (%s)\n", in.Choice())
		return false, nil
	}
	s.log.Debug().Str("command", cmd.Keys()[0]).Strs("args", in.Args).Msg("dispatch")
	return cmd.Run(s, in)
}

// splitLine splits a menu line into words, honouring quotes.
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input %q: %v", line, err)
	}
	return args, nil
}
