// Copyright 2026 Ian Lewis
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

package glossary

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ianlewis/go-glossary/csvfile"
	"github.com/ianlewis/go-glossary/internal/folding"
)

// DefaultPath is the glossary file read when no other path is given. It is
// relative to the working directory.
const DefaultPath = "orthodontic_glossary.csv"

// ErrEmptyGlossary indicates that a glossary file contained no entries.
var ErrEmptyGlossary = fmt.Errorf("%w: no entries", ErrGlossary)

var seed = [...]struct{ term, definition string }{
	{
		term:       "Malocclusion",
		definition: "Misalignment of teeth or incorrect relation between the teeth of the two dental arches.",
	},
	{
		term:       "Bracket",
		definition: "A small attachment bonded to teeth to hold archwires in place.",
	},
	{
		term:       "Archwire",
		definition: "A wire engaged in orthodontic attachments that can be used to cause tooth movement.",
	},
}

// LoadOptions are options for Load.
type LoadOptions struct {
	// Logger receives debug messages about the glossary source. No messages
	// are logged if Logger is nil.
	Logger *log.Logger
}

// Seed returns the built-in glossary.
func Seed() *Glossary {
	entries := make([]*Entry, 0, len(seed))
	for _, s := range seed {
		entries = append(entries, NewEntry(s.term, s.definition))
	}
	return New(entries)
}

// Load loads the glossary file at path. If the file is missing, malformed,
// or contains no entries, the seed glossary is returned instead. Load never
// returns an empty glossary.
func Load(path string, opts *LoadOptions) *Glossary {
	var logger *log.Logger
	if opts != nil {
		logger = opts.Logger
	}

	g, err := LoadFile(path)
	if err != nil {
		if logger != nil {
			logger.Debug("using built-in glossary", "path", path, "err", err)
		}
		return Seed()
	}

	if logger != nil {
		logger.Debug("loaded glossary", "path", path, "entries", g.Len())
	}
	return g
}

// LoadFile loads the glossary file at path or its dictzip compressed copy.
// Definitions have their whitespace folded so that multi-line cells read as
// a single paragraph.
func LoadFile(path string) (*Glossary, error) {
	s, err := csvfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading glossary: %w", err)
	}
	defer s.Close()

	var entries []*Entry
	for s.Scan() {
		r := s.Record()
		entries = append(entries, NewEntry(r.Term, folding.Whitespace(r.Definition)))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("loading glossary %q: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyGlossary, path)
	}

	return New(entries), nil
}
