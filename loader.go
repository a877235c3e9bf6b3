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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/arbor/menu"
	"github.com/cybrota/arbor/tree"
)

type LoadOptions struct {
	ShowProgress      bool
	Progress          io.Writer // defaults to stderr
	Expected          uint
	FalsePositiveRate float64
	Log               *zerolog.Logger

	bar *progressbar.ProgressBar // overrides the bar built for ShowProgress
}

type LoadStats struct {
	Read       int
	Inserted   int
	Duplicates int
	Invalid    int
}

func (s LoadStats) String() string {
	return fmt.Sprintf("read %d, inserted %d, duplicates %d, invalid %d",
		s.Read, s.Inserted, s.Duplicates, s.Invalid)
}

// LoadFile inserts every key listed in path into t.
func LoadFile(path string, t *tree.Tree, opts LoadOptions) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadStats{}, fmt.Errorf("key file %s not found", path)
		}
		return LoadStats{}, err
	}
	defer file.Close()

	if opts.Expected == 0 {
		if stat, err := file.Stat(); err == nil {
			// Estimate ~4 bytes per key
			opts.Expected = uint(stat.Size()/4) + 1
		}
	}
	return LoadKeys(file, t, opts)
}

// keySet is the part of *tree.Tree the loader writes through.
type keySet interface {
	IsEmpty() bool
	Inorder() []int
	Contains(key int) bool
	InsertNew(key int) bool
}

// LoadKeys reads whitespace or comma separated keys from r and inserts
// them into t. Tokens that are not keys are counted and skipped.
func LoadKeys(r io.Reader, t *tree.Tree, opts LoadOptions) (LoadStats, error) {
	return loadKeys(r, t, opts)
}

// loadKeys only walks the tree for a membership check when the bloom
// filter reports a possible duplicate. A miss goes straight to InsertNew.
func loadKeys(r io.Reader, t keySet, opts LoadOptions) (LoadStats, error) {
	var stats LoadStats
	log := zerolog.Nop()
	if opts.Log != nil {
		log = *opts.Log
	}

	expected := opts.Expected
	if expected == 0 {
		expected = defaultConfig.Loader.ExpectedKeys
	}
	fpRate := opts.FalsePositiveRate
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = defaultConfig.Loader.FalsePositiveRate
	}
	seen := bloom.NewWithEstimates(expected, fpRate)
	if !t.IsEmpty() {
		for _, k := range t.Inorder() {
			seen.AddString(strconv.Itoa(k))
		}
	}

	bar := opts.bar
	if bar == nil && opts.ShowProgress {
		out := opts.Progress
		if out == nil {
			out = os.Stderr
		}
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("🌳 Loading keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	parser := shellwords.NewParser()
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens, err := parser.Parse(strings.ReplaceAll(line, ",", " "))
		if err != nil {
			return stats, fmt.Errorf("line %d: failed to parse %q: %v", lineNo, line, err)
		}

		for _, tok := range tokens {
			stats.Read++
			if bar != nil {
				_ = bar.Add(1)
			}

			key := menu.ParseKey(tok)
			if key == tree.NoValue {
				stats.Invalid++
				log.Debug().Int("line", lineNo).Str("token", tok).Msg("skipping invalid key")
				continue
			}

			id := strconv.Itoa(key)
			if seen.TestString(id) && t.Contains(key) {
				stats.Duplicates++
				continue
			}
			seen.AddString(id)
			if t.InsertNew(key) {
				stats.Inserted++
			} else {
				stats.Duplicates++
			}
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	if err := scanner.Err(); err != nil {
		return stats, err
	}

	log.Info().
		Int("read", stats.Read).
		Int("inserted", stats.Inserted).
		Int("duplicates", stats.Duplicates).
		Int("invalid", stats.Invalid).
		Msg("keys loaded")
	return stats, nil
}
