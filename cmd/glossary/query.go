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
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "print the definition of the first matching term",
	ArgsUsage: "QUERY...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "exact",
			Usage:              "print every entry whose term equals the query",
			Aliases:            []string{"e"},
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		query := strings.Join(c.Args().Slice(), " ")
		g := loadGlossary(c)
		r := newRenderer(c)

		var entries []*glossary.Entry
		if c.Bool("exact") {
			entries = g.Lookup(query)
		} else {
			e, err := g.Search(query)
			if errors.Is(err, glossary.ErrEmptyQuery) {
				return fmt.Errorf("%w: please enter a search term", ErrGlossaryCmd)
			}
			if e != nil {
				entries = append(entries, e)
			}
		}

		if len(entries) == 0 {
			return fmt.Errorf("%w: no term found matching '%s'", ErrNoMatch, strings.TrimSpace(query))
		}
		for i, e := range entries {
			if i > 0 {
				if _, err := fmt.Fprintln(c.App.Writer); err != nil {
					return fmt.Errorf("%w: %w", ErrGlossaryCmd, err)
				}
			}
			if err := r.Entry(e); err != nil {
				return fmt.Errorf("%w: %w", ErrGlossaryCmd, err)
			}
		}
		return nil
	},
}
