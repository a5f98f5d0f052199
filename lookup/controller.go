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

// Package lookup implements the interactive state behind a glossary search
// window: a search box with placeholder text, an autocomplete list and a
// result pane. Front ends forward user events to a Controller and render
// its state.
package lookup

import (
	"errors"
	"fmt"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/internal/folding"
)

// ErrNoSuchSuggestion indicates that a selected suggestion does not exist.
var ErrNoSuchSuggestion = errors.New("lookup: no such suggestion")

// InputState is the state of the search box.
type InputState int

const (
	// InputPlaceholder means the box is empty and shows the placeholder.
	InputPlaceholder InputState = iota

	// InputEditing means the box holds user text, possibly empty.
	InputEditing
)

// String implements [fmt.Stringer].
func (s InputState) String() string {
	switch s {
	case InputPlaceholder:
		return "placeholder"
	case InputEditing:
		return "editing"
	default:
		return fmt.Sprintf("InputState(%d)", int(s))
	}
}

// Controller holds the state of one glossary search window.
type Controller struct {
	glossary *glossary.Glossary

	state       InputState
	query       string
	suggestions []string
	result      *glossary.Entry
}

// New returns a controller over g with an empty search box showing the
// placeholder.
func New(g *glossary.Glossary) *Controller {
	return &Controller{
		glossary: g,
		state:    InputPlaceholder,
	}
}

// State returns the search box state.
func (c *Controller) State() InputState {
	return c.state
}

// Text returns the text displayed in the search box.
func (c *Controller) Text() string {
	if c.state == InputPlaceholder {
		return glossary.Placeholder
	}
	return c.query
}

// Query returns the user's query. It is empty while the placeholder is
// shown.
func (c *Controller) Query() string {
	if c.state == InputPlaceholder {
		return ""
	}
	return c.query
}

// Suggestions returns the autocomplete list.
func (c *Controller) Suggestions() []string {
	return c.suggestions
}

// SuggestionsVisible reports whether the autocomplete list is shown. It is
// shown only when it has items.
func (c *Controller) SuggestionsVisible() bool {
	return len(c.suggestions) > 0
}

// Result returns the entry shown in the result pane or nil if the pane is
// empty.
func (c *Controller) Result() *glossary.Entry {
	return c.result
}

// Focus handles the search box gaining focus. The placeholder is cleared.
func (c *Controller) Focus() {
	if c.state == InputPlaceholder {
		c.state = InputEditing
		c.query = ""
	}
}

// Blur handles the search box losing focus. The placeholder is restored if
// the box is empty.
func (c *Controller) Blur() {
	if c.state == InputEditing && c.query == "" {
		c.state = InputPlaceholder
	}
}

// SetText handles the user editing the search box and refreshes the
// autocomplete list.
func (c *Controller) SetText(text string) {
	c.state = InputEditing
	c.query = text
	c.suggestions = c.glossary.Suggest(text)
}

// Submit searches for the current query and updates the result pane.
func (c *Controller) Submit() Notice {
	e, err := c.glossary.Search(c.Query())
	switch {
	case errors.Is(err, glossary.ErrEmptyQuery):
		return Notice{
			Kind:    NoticeInfo,
			Message: "Please enter a search term",
		}
	case err != nil:
		c.result = nil
		return Notice{
			Kind:    NoticeNotFound,
			Message: fmt.Sprintf("No term found matching '%s'", folding.Query(c.query)),
		}
	}

	c.result = e
	c.suggestions = nil
	return Notice{}
}

// Select handles the user choosing the i'th suggestion (zero based). The
// suggestion becomes the query, the list is hidden and the query submitted.
func (c *Controller) Select(i int) (Notice, error) {
	if i < 0 || i >= len(c.suggestions) {
		return Notice{}, fmt.Errorf("%w: %d", ErrNoSuchSuggestion, i)
	}

	c.state = InputEditing
	c.query = c.suggestions[i]
	c.suggestions = nil
	return c.Submit(), nil
}
