// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render writes glossary entries and lookup state to a terminal.
package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/k3a/html2text"
	"github.com/rodaine/table"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/internal/folding"
	"github.com/ianlewis/go-glossary/lookup"
)

const (
	// DefaultWidth is the output width used when none is known.
	DefaultWidth = 80

	// minTextWidth is the narrowest column definitions are wrapped to.
	minTextWidth = 20

	// margin is subtracted from the output width to get the text width.
	margin = 4
)

// markup matches an HTML tag or character reference. Definitions without one
// are plain text, even if they contain '<', '>' or '&'.
var markup = regexp.MustCompile(`<[A-Za-z/!][^<>]*>|&(?:[A-Za-z][A-Za-z0-9]*|#[0-9]+|#[xX][0-9A-Fa-f]+);`)

// Renderer writes lookup output.
type Renderer struct {
	w     io.Writer
	width int

	title  *color.Color
	accent *color.Color
	muted  *color.Color
	notice *color.Color
}

// New returns a renderer writing to w. width is the terminal width in
// columns; values below 1 select DefaultWidth.
func New(w io.Writer, width int) *Renderer {
	if width < 1 {
		width = DefaultWidth
	}
	return &Renderer{
		w:      w,
		width:  width,
		title:  color.New(color.Bold, color.FgBlue),
		accent: color.New(color.FgBlue),
		muted:  color.New(color.Faint),
		notice: color.New(color.FgYellow),
	}
}

// DisableColor turns off colored output.
func (r *Renderer) DisableColor() {
	for _, c := range []*color.Color{r.title, r.accent, r.muted, r.notice} {
		c.DisableColor()
	}
}

// TextWidth returns the column definitions are wrapped to.
func (r *Renderer) TextWidth() int {
	return max(r.width-margin, minTextWidth)
}

// Entry writes the entry's term as a heading followed by its definition.
func (r *Renderer) Entry(e *glossary.Entry) error {
	if _, err := r.title.Fprintln(r.w, e.Term()); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	for _, line := range Wrap(Text(e.Definition()), r.TextWidth()) {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}
	return nil
}

// Suggestions writes a numbered autocomplete list. Nothing is written for an
// empty list.
func (r *Renderer) Suggestions(terms []string) error {
	for i, term := range terms {
		if _, err := fmt.Fprintf(r.w, "  %s %s\n", r.accent.Sprintf("%d.", i+1), term); err != nil {
			return fmt.Errorf("writing suggestions: %w", err)
		}
	}
	return nil
}

// Notice writes a user notice. Nothing is written for NoticeNone.
func (r *Renderer) Notice(n lookup.Notice) error {
	if n.Kind == lookup.NoticeNone {
		return nil
	}
	if _, err := fmt.Fprintf(r.w, "%s %s\n", r.notice.Sprintf("%s:", n.Title()), n.Message); err != nil {
		return fmt.Errorf("writing notice: %w", err)
	}
	return nil
}

// Prompt writes the search box. The placeholder is shown dimmed.
func (r *Renderer) Prompt(c *lookup.Controller) error {
	text := c.Text()
	if c.State() == lookup.InputPlaceholder {
		text = r.muted.Sprint(text)
	}
	if _, err := fmt.Fprintf(r.w, "%s %s\n", r.accent.Sprint(">"), text); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}

// Table writes all glossary entries as a two column table.
func (r *Renderer) Table(g *glossary.Glossary) {
	// Definitions get whatever the term column leaves of the text width.
	termWidth := 0
	for _, e := range g.Entries() {
		termWidth = max(termWidth, utf8.RuneCountInString(e.Term()))
	}
	defWidth := max(r.TextWidth()-termWidth-2, minTextWidth)

	tbl := table.New("Term", "Definition").
		WithWriter(r.w).
		WithHeaderFormatter(r.title.SprintfFunc()).
		WithFirstColumnFormatter(r.accent.SprintfFunc())
	for _, e := range g.Entries() {
		lines := Wrap(Text(e.Definition()), defWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		tbl.AddRow(e.Term(), lines[0])
		for _, line := range lines[1:] {
			tbl.AddRow("", line)
		}
	}
	tbl.Print()
}

// Text converts a definition that may contain HTML markup to plain text with
// folded whitespace. Definitions without markup are only whitespace folded.
func Text(definition string) string {
	if !markup.MatchString(definition) {
		return folding.Whitespace(definition)
	}
	return folding.Whitespace(html2text.HTML2Text(definition))
}

// Wrap splits s into lines of at most width runes, breaking at spaces. Words
// longer than width are put on a line of their own.
func Wrap(s string, width int) []string {
	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(s) {
		n := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += n
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
