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
	"strconv"
	"strings"

	"github.com/cybrota/arbor/tree"
)

// ParseKey reads a key typed at the console. Input that does not start
// with a digit is rejected with tree.NoValue; otherwise the leading run of
// digits is the key, so "12abc" reads as 12. Negative numbers are rejected
// the same way, as are values too large for an int.
func ParseKey(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || !isDigit(s[0]) {
		return tree.NoValue
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return tree.NoValue
	}
	return v
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
