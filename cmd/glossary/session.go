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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary/internal/render"
	"github.com/ianlewis/go-glossary/lookup"
)

const (
	suggestPrefix = "?"
	selectPrefix  = ":"
	quitCommand   = ":q"
)

// session is an interactive lookup session. Each input line stands in for
// the user typing into the search box and pressing enter.
type session struct {
	ctrl *lookup.Controller
	r    *render.Renderer
	in   io.Reader
	out  io.Writer
}

func newSession(c *cli.Context) *session {
	return &session{
		ctrl: lookup.New(loadGlossary(c)),
		r:    newRenderer(c),
		in:   c.App.Reader,
		out:  c.App.Writer,
	}
}

// Run reads lines until EOF or the quit command.
func (s *session) Run() error {
	if _, err := fmt.Fprintln(s.out, "Orthodontic Glossary"); err != nil {
		return fmt.Errorf("%w: %w", ErrGlossaryCmd, err)
	}
	if err := s.r.Prompt(s.ctrl); err != nil {
		return fmt.Errorf("%w: %w", ErrGlossaryCmd, err)
	}

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == quitCommand {
			return nil
		}
		if err := s.handle(line); err != nil {
			return fmt.Errorf("%w: %w", ErrGlossaryCmd, err)
		}
		if err := s.r.Prompt(s.ctrl); err != nil {
			return fmt.Errorf("%w: %w", ErrGlossaryCmd, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: reading input: %w", ErrGlossaryCmd, err)
	}
	return nil
}

// handle processes one input line. The search box has focus while the line
// is handled.
func (s *session) handle(line string) error {
	s.ctrl.Focus()
	defer s.ctrl.Blur()

	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, suggestPrefix):
		s.ctrl.SetText(strings.TrimPrefix(trimmed, suggestPrefix))
		return s.r.Suggestions(s.ctrl.Suggestions())

	case strings.HasPrefix(trimmed, selectPrefix):
		n, err := strconv.Atoi(strings.TrimPrefix(trimmed, selectPrefix))
		if err != nil {
			return s.r.Notice(lookup.Notice{
				Kind:    lookup.NoticeInfo,
				Message: fmt.Sprintf("Unknown command %q", trimmed),
			})
		}
		notice, err := s.ctrl.Select(n - 1)
		if err != nil {
			return s.r.Notice(lookup.Notice{
				Kind:    lookup.NoticeInfo,
				Message: fmt.Sprintf("No suggestion %d", n),
			})
		}
		return s.show(notice)

	default:
		s.ctrl.SetText(line)
		if err := s.r.Suggestions(s.ctrl.Suggestions()); err != nil {
			return err
		}
		return s.show(s.ctrl.Submit())
	}
}

// show renders the result pane, or the notice if there is one.
func (s *session) show(n lookup.Notice) error {
	if n.Kind != lookup.NoticeNone {
		return s.r.Notice(n)
	}
	if e := s.ctrl.Result(); e != nil {
		return s.r.Entry(e)
	}
	return nil
}
