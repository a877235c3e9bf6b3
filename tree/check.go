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
)

var (
	ErrOrder      = errors.New("ordering violated")
	ErrDuplicate  = errors.New("duplicate key")
	ErrSentinel   = errors.New("sentinel stored as key")
	ErrUnbalanced = errors.New("balance violated")
)

// Validate walks the tree rooted at n and returns the first invariant it
// finds broken. Balance is only checked in ModeAVL.
func Validate(n *Node, mode Mode) error {
	_, err := validate(n, nil, nil, mode == ModeAVL)
	return err
}

// validate returns the height of n. lo and hi are exclusive key bounds
// inherited from the ancestors.
func validate(n *Node, lo, hi *int, balanced bool) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.key == NoValue {
		return 0, fmt.Errorf("%w: %d", ErrSentinel, n.key)
	}
	if (lo != nil && n.key == *lo) || (hi != nil && n.key == *hi) {
		return 0, fmt.Errorf("%w: %d", ErrDuplicate, n.key)
	}
	if lo != nil && n.key < *lo {
		return 0, fmt.Errorf("%w: %d is not above %d", ErrOrder, n.key, *lo)
	}
	if hi != nil && n.key > *hi {
		return 0, fmt.Errorf("%w: %d is not below %d", ErrOrder, n.key, *hi)
	}

	lh, err := validate(n.left, lo, &n.key, balanced)
	if err != nil {
		return 0, err
	}
	rh, err := validate(n.right, &n.key, hi, balanced)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if bf := lh - rh; balanced && (bf > 1 || bf < -1) {
		return 0, fmt.Errorf("%w: node %d has balance factor %+d", ErrUnbalanced, n.key, bf)
	}
	return h, nil
}
