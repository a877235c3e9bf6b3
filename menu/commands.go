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

import "github.com/cybrota/arbor/render"

type menuCommand struct{}

func (c *menuCommand) Keys() []string  { return []string{"m", "menu"} }
func (c *menuCommand) Summary() string { return "menu" }

func (c *menuCommand) Run(s *Session, in *Input) (bool, error) {
	s.PrintMenu()
	return false, nil
}

type displayCommand struct{}

func (c *displayCommand) Keys() []string  { return []string{"t", "tree"} }
func (c *displayCommand) Summary() string { return "display tree" }

func (c *displayCommand) Run(s *Session, in *Input) (bool, error) {
	s.printf("%s", render.Report(s.tree, render.Options{Palette: s.palette, Capacity: s.capacity}))
	return false, nil
}

type sidewaysCommand struct{}

func (c *sidewaysCommand) Keys() []string  { return []string{"s", "sideways"} }
func (c *sidewaysCommand) Summary() string { return "display tree sideways" }

func (c *sidewaysCommand) Run(s *Session, in *Input) (bool, error) {
	s.printf("%s", s.tree.String())
	return false, nil
}

type addCommand struct{}

func (c *addCommand) Keys() []string  { return []string{"a", "add"} }
func (c *addCommand) Summary() string { return "add value" }

func (c *addCommand) Run(s *Session, in *Input) (bool, error) {
	keys, err := s.keys(in, "Enter value to be added> ")
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		s.tree.Insert(k)
	}
	return false, nil
}

type deleteCommand struct{}

func (c *deleteCommand) Keys() []string  { return []string{"d", "delete"} }
func (c *deleteCommand) Summary() string { return "delete value" }

func (c *deleteCommand) Run(s *Session, in *Input) (bool, error) {
	keys, err := s.keys(in, "Enter value to be deleted> ")
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		s.tree.Delete(k)
	}
	return false, nil
}

type findCommand struct{}

func (c *findCommand) Keys() []string  { return []string{"f", "find"} }
func (c *findCommand) Summary() string { return "test membership" }

func (c *findCommand) Run(s *Session, in *Input) (bool, error) {
	keys, err := s.keys(in, "Enter value to search for> ")
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		if s.tree.Contains(k) {
			s.printf("%d is a member\n", k)
		} else {
			s.printf("%d is a non-member\n", k)
		}
	}
	return false, nil
}

type checkCommand struct{}

func (c *checkCommand) Keys() []string  { return []string{"c", "check"} }
func (c *checkCommand) Summary() string { return "check invariants" }

func (c *checkCommand) Run(s *Session, in *Input) (bool, error) {
	if err := s.tree.Validate(); err != nil {
		s.printf("Invariant violated: %v\n", err)
		return false, nil
	}
	s.printf("Tree is a valid %s\n", s.tree.Mode())
	return false, nil
}

type clearCommand struct{}

func (c *clearCommand) Keys() []string  { return []string{"x", "clear"} }
func (c *clearCommand) Summary() string { return "clear tree" }

func (c *clearCommand) Run(s *Session, in *Input) (bool, error) {
	s.tree.Clear()
	s.printf("Tree cleared\n")
	return false, nil
}

type quitCommand struct{}

func (c *quitCommand) Keys() []string  { return []string{"q", "quit", "exit"} }
func (c *quitCommand) Summary() string { return "quit" }

func (c *quitCommand) Run(s *Session, in *Input) (bool, error) {
	return true, nil
}
