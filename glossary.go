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
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-glossary/internal/folding"
	"github.com/ianlewis/go-glossary/internal/index"
)

// MaxSuggestions is the maximum number of terms returned by Suggest.
const MaxSuggestions = 5

// Placeholder is the prompt shown in an empty search box. Queries equal to
// it are treated as empty.
const Placeholder = "Search for a term…"

// ErrGlossary is a parent error for all glossary errors.
var ErrGlossary = errors.New("glossary")

// ErrEmptyQuery indicates that the query was empty or the placeholder text.
var ErrEmptyQuery = fmt.Errorf("%w: empty query", ErrGlossary)

// ErrNotFound indicates that no term matched the query.
var ErrNotFound = fmt.Errorf("%w: not found", ErrGlossary)

// Glossary is an ordered, read-only list of entries.
type Glossary struct {
	entries []*Entry
	terms   *index.Index[*Entry]
}

// New returns a glossary of the given entries in the given order. Terms need
// not be unique.
func New(entries []*Entry) *Glossary {
	e := make([]*Entry, len(entries))
	copy(e, entries)

	return &Glossary{
		entries: e,
		terms: index.New(e, func(e *Entry) string {
			return folding.Query(e.term)
		}),
	}
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Entries returns a copy of the glossary's entries in order.
func (g *Glossary) Entries() []*Entry {
	e := make([]*Entry, len(g.entries))
	copy(e, g.entries)
	return e
}

// normalizeQuery returns the normalized query or ErrEmptyQuery.
func normalizeQuery(query string) (string, error) {
	q := folding.Query(query)
	if q == "" || q == folding.Query(Placeholder) {
		return "", ErrEmptyQuery
	}
	return q, nil
}

// Search returns the first entry whose term contains query. The match is
// case-insensitive and ignores whitespace surrounding the query.
func (g *Glossary) Search(query string) (*Entry, error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	for _, e := range g.entries {
		if strings.Contains(folding.Lower(e.term), q) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, q)
}

// Suggest returns the terms containing query, in glossary order, for use as
// autocomplete suggestions. At most MaxSuggestions terms are returned.
func (g *Glossary) Suggest(query string) []string {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil
	}

	var terms []string
	for _, e := range g.entries {
		if !strings.Contains(folding.Lower(e.term), q) {
			continue
		}
		terms = append(terms, e.term)
		if len(terms) >= MaxSuggestions {
			break
		}
	}
	return terms
}

// Lookup returns all entries whose term equals term, ignoring case and
// surrounding whitespace.
func (g *Glossary) Lookup(term string) []*Entry {
	q, err := normalizeQuery(term)
	if err != nil {
		return nil
	}
	return g.terms.Find(q)
}
