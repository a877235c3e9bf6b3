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
	"strings"
	"unicode/utf8"
)

// Command is one entry of the console menu.
type Command interface {
	// Keys lists the words that select the command. The first one is the
	// single letter shown in the menu.
	Keys() []string
	Summary() string
	// Run executes the command. quit ends the session.
	Run(s *Session, in *Input) (quit bool, err error)
}

// Input is a tokenised menu line.
type Input struct {
	Parts []string
	Key   string
	Args  []string
	Raw   string
}

// NewInput builds an Input from the tokens of a menu line.
func NewInput(parts []string) *Input {
	if len(parts) == 0 {
		return &Input{Parts: parts}
	}

	return &Input{
		Parts: parts,
		Key:   parts[0],
		Args:  parts[1:],
		Raw:   strings.Join(parts, " "),
	}
}

// HasArgs reports whether values were given on the menu line itself.
func (in *Input) HasArgs() bool {
	return len(in.Args) > 0
}

// Choice is the first character of the key, the way single-letter menu
// choices are read.
func (in *Input) Choice() string {
	if in.Key == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(in.Key)
	return string(r)
}
