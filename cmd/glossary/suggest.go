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
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var suggestCommand = &cli.Command{
	Name:      "suggest",
	Usage:     "print up to five terms containing the query",
	ArgsUsage: "QUERY...",
	Action: func(c *cli.Context) error {
		g := loadGlossary(c)
		for _, term := range g.Suggest(strings.Join(c.Args().Slice(), " ")) {
			if _, err := fmt.Fprintln(c.App.Writer, term); err != nil {
				return fmt.Errorf("%w: %w", ErrGlossaryCmd, err)
			}
		}
		return nil
	},
}
