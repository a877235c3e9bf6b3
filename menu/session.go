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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cybrota/arbor/render"
	"github.com/cybrota/arbor/tree"
)

// Session is one interactive console run over a single tree. The tree's
// mode was fixed when it was created and stays the same for the session.
type Session struct {
	tree     *tree.Tree
	in       *bufio.Reader
	out      io.Writer
	echo     bool
	palette  render.Palette
	capacity int
	log      zerolog.Logger
	manager  *Manager
}

type Option func(*Session)

// WithEcho writes every choice and value back after reading it, which
// keeps transcripts of piped input readable.
func WithEcho(echo bool) Option {
	return func(s *Session) { s.echo = echo }
}

func WithPalette(p render.Palette) Option {
	return func(s *Session) { s.palette = p }
}

// WithCapacity bounds the snapshot used by the tree display.
func WithCapacity(capacity int) Option {
	return func(s *Session) { s.capacity = capacity }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

func WithManager(m *Manager) Option {
	return func(s *Session) { s.manager = m }
}

// NewSession reads menu lines from in and writes everything to out.
func NewSession(t *tree.Tree, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		tree:     t,
		in:       bufio.NewReader(in),
		out:      out,
		capacity: render.DefaultCapacity,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.manager == nil {
		s.manager = NewManager()
	}
	return s
}

func (s *Session) Tree() *tree.Tree {
	return s.tree
}

// Run prints the menu and serves commands until q or end of input.
func (s *Session) Run() error {
	s.printf("[INFO] running in %s mode\n", s.tree.Mode())
	s.PrintMenu()

	for {
		line, err := s.readLine("menu> ")
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}
		if s.echo {
			s.printf("%s\n", strings.TrimSpace(line))
		}

		quit, err := s.Exec(line)
		if err != nil {
			s.log.Warn().Err(err).Msg("command failed")
			s.printf("Error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single menu line.
func (s *Session) Exec(line string) (bool, error) {
	return s.manager.Dispatch(s, line)
}

// PrintMenu lists the registered commands.
func (s *Session) PrintMenu() {
	s.printf("********************************\n")
	for _, cmd := range s.manager.Commands() {
		s.printf("%s : %s\n", cmd.Keys()[0], cmd.Summary())
	}
	s.printf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~\n")
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	return line, err
}

// promptKey asks until a valid key is typed.
func (s *Session) promptKey(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return tree.NoValue, err
		}
		v := ParseKey(line)
		if v == tree.NoValue {
			s.printf("Error: not allowed in tree\n")
			continue
		}
		if s.echo {
			s.printf("%d\n", v)
		}
		return v, nil
	}
}

// keys returns the values given on the menu line, or prompts for one when
// there are none. Running out of input while prompting yields no keys.
func (s *Session) keys(in *Input, prompt string) ([]int, error) {
	if !in.HasArgs() {
		v, err := s.promptKey(prompt)
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []int{v}, nil
	}

	var out []int
	for _, arg := range in.Args {
		v := ParseKey(arg)
		if v == tree.NoValue {
			s.printf("Error: not allowed in tree (%s)\n", arg)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
