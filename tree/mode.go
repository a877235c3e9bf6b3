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

package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Mode selects how a Tree handles insert and delete. It is fixed when the
// Tree is created.
type Mode int

const (
	ModeBST Mode = iota
	ModeAVL
)

var ErrUnknownMode = errors.New("unknown tree mode")

func (m Mode) String() string {
	switch m {
	case ModeBST:
		return "BST"
	case ModeAVL:
		return "AVL"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a mode name to a Mode. Like the -m flag it only looks at
// the first letter for AVL, so "a", "avl" and "AVL" all select balancing.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "bst" || s == "b":
		return ModeBST, nil
	case strings.HasPrefix(s, "a"):
		return ModeAVL, nil
	}
	return ModeBST, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText lets a Mode live in config files as bst or avl.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) balancer(log zerolog.Logger) balancer {
	if m == ModeAVL {
		return avl{log: log}
	}
	return plain{}
}
