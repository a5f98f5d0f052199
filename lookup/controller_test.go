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

package lookup_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/lookup"
)

func resultTerm(c *lookup.Controller) string {
	if r := c.Result(); r != nil {
		return r.Term()
	}
	return ""
}

func TestController_placeholder(t *testing.T) {
	t.Parallel()

	c := lookup.New(glossary.Seed())
	if got, want := c.State(), lookup.InputPlaceholder; got != want {
		t.Fatalf("State: got %v, want %v", got, want)
	}
	if got, want := c.Text(), glossary.Placeholder; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
	if got := c.Query(); got != "" {
		t.Fatalf("Query: got %q, want empty", got)
	}

	c.Focus()
	if got, want := c.State(), lookup.InputEditing; got != want {
		t.Fatalf("State after Focus: got %v, want %v", got, want)
	}
	if got := c.Text(); got != "" {
		t.Fatalf("Text after Focus: got %q, want empty", got)
	}

	c.Blur()
	if got, want := c.State(), lookup.InputPlaceholder; got != want {
		t.Fatalf("State after Blur: got %v, want %v", got, want)
	}

	c.Focus()
	c.SetText("brac")
	c.Blur()
	if got, want := c.State(), lookup.InputEditing; got != want {
		t.Fatalf("State after Blur with text: got %v, want %v", got, want)
	}
	if got, want := c.Text(), "brac"; got != want {
		t.Fatalf("Text after Blur with text: got %q, want %q", got, want)
	}

	// Focusing a box with text keeps the text.
	c.Focus()
	if got, want := c.Text(), "brac"; got != want {
		t.Fatalf("Text after refocus: got %q, want %q", got, want)
	}
}

func TestController_SetText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		visible bool
		want    []string
	}{
		{
			name:    "match",
			text:    "b",
			visible: true,
			want:    []string{"Bracket"},
		},
		{
			name:    "no match",
			text:    "zzz",
			visible: false,
			want:    nil,
		},
		{
			name:    "empty",
			text:    "",
			visible: false,
			want:    nil,
		},
		{
			name:    "typed placeholder",
			text:    glossary.Placeholder,
			visible: false,
			want:    nil,
		},
	}

	for _, test := range tests {

		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := lookup.New(glossary.Seed())
			c.Focus()
			c.SetText(test.text)

			if got := c.SuggestionsVisible(); got != test.visible {
				t.Errorf("SuggestionsVisible: got %v, want %v", got, test.visible)
			}
			if diff := cmp.Diff(test.want, c.Suggestions()); diff != "" {
				t.Errorf("Suggestions (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestController_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		// prepare runs against a controller showing Bracket.
		prepare func(*lookup.Controller)

		expected     lookup.Notice
		expectedTerm string
	}{
		{
			name: "found",
			prepare: func(c *lookup.Controller) {
				c.SetText("  ARCH ")
			},
			expected:     lookup.Notice{},
			expectedTerm: "Archwire",
		},
		{
			name: "placeholder",
			prepare: func(c *lookup.Controller) {
				c.SetText("")
				c.Blur()
			},
			expected: lookup.Notice{
				Kind:    lookup.NoticeInfo,
				Message: "Please enter a search term",
			},
			expectedTerm: "Bracket",
		},
		{
			name: "empty text",
			prepare: func(c *lookup.Controller) {
				c.SetText("   ")
			},
			expected: lookup.Notice{
				Kind:    lookup.NoticeInfo,
				Message: "Please enter a search term",
			},
			expectedTerm: "Bracket",
		},
		{
			name: "not found clears result",
			prepare: func(c *lookup.Controller) {
				c.SetText(" ZZZZ ")
			},
			expected: lookup.Notice{
				Kind:    lookup.NoticeNotFound,
				Message: "No term found matching 'zzzz'",
			},
			expectedTerm: "",
		},
	}

	for _, test := range tests {

		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := lookup.New(glossary.Seed())
			c.Focus()
			c.SetText("bracket")
			if n := c.Submit(); n.Kind != lookup.NoticeNone {
				t.Fatalf("Submit: unexpected notice %+v", n)
			}

			test.prepare(c)
			got := c.Submit()
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Submit (-want, +got):\n%s", diff)
			}
			if got := resultTerm(c); got != test.expectedTerm {
				t.Errorf("Result: got %q, want %q", got, test.expectedTerm)
			}
		})
	}
}

func TestController_Submit_hidesSuggestions(t *testing.T) {
	t.Parallel()

	c := lookup.New(glossary.Seed())
	c.Focus()
	c.SetText("c")
	if !c.SuggestionsVisible() {
		t.Fatal("SuggestionsVisible: got false, want true")
	}

	c.Submit()
	if c.SuggestionsVisible() {
		t.Fatal("SuggestionsVisible after Submit: got true, want false")
	}
	if got, want := resultTerm(c), "Malocclusion"; got != want {
		t.Fatalf("Result: got %q, want %q", got, want)
	}
}

func TestController_Select(t *testing.T) {
	t.Parallel()

	c := lookup.New(glossary.Seed())
	c.Focus()
	c.SetText("c")
	if diff := cmp.Diff([]string{"Malocclusion", "Bracket", "Archwire"}, c.Suggestions()); diff != "" {
		t.Fatalf("Suggestions (-want, +got):\n%s", diff)
	}

	n, err := c.Select(2)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if n.Kind != lookup.NoticeNone {
		t.Fatalf("Select: unexpected notice %+v", n)
	}
	if got, want := c.Text(), "Archwire"; got != want {
		t.Errorf("Text: got %q, want %q", got, want)
	}
	if got, want := resultTerm(c), "Archwire"; got != want {
		t.Errorf("Result: got %q, want %q", got, want)
	}
	if c.SuggestionsVisible() {
		t.Errorf("SuggestionsVisible: got true, want false")
	}

	if _, err := c.Select(0); !errors.Is(err, lookup.ErrNoSuchSuggestion) {
		t.Fatalf("Select on hidden list: got %v, want %v", err, lookup.ErrNoSuchSuggestion)
	}
}

func TestNotice_Title(t *testing.T) {
	t.Parallel()

	for kind, want := range map[lookup.NoticeKind]string{
		lookup.NoticeNone:     "",
		lookup.NoticeInfo:     "Info",
		lookup.NoticeNotFound: "Not Found",
	} {
		if got := (lookup.Notice{Kind: kind}).Title(); got != want {
			t.Errorf("Title(%d): got %q, want %q", kind, got, want)
		}
	}
}
