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
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/internal/render"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrGlossaryCmd is a parent error for all command errors.
var ErrGlossaryCmd = errors.New("glossary")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrGlossaryCmd)

// ErrNoMatch indicates that a query matched no term.
var ErrNoMatch = fmt.Errorf("%w: no match", ErrGlossaryCmd)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands that way.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newLogger returns the logger for diagnostics. Messages go to the app's
// error writer so that they never mix with lookup output.
func newLogger(c *cli.Context) *log.Logger {
	level := log.WarnLevel
	if c.Bool("debug") {
		level = log.DebugLevel
	}
	return log.NewWithOptions(c.App.ErrWriter, log.Options{
		Prefix: c.App.Name,
		Level:  level,
	})
}

// loadGlossary loads the glossary named by the --file flag.
func loadGlossary(c *cli.Context) *glossary.Glossary {
	return glossary.Load(c.String("file"), &glossary.LoadOptions{
		Logger: newLogger(c),
	})
}

// newRenderer returns a renderer for the app's output.
func newRenderer(c *cli.Context) *render.Renderer {
	r := render.New(c.App.Writer, c.Int("width"))
	if c.Bool("no-color") {
		r.DisableColor()
	}
	return r
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

go version: %s
platform:   %s
`,
		c.App.Name,
		versionInfo.GitVersion,
		strings.Join(copyrightNames, ", "),
		versionInfo.GoVersion,
		versionInfo.Platform,
	)
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrGlossaryCmd, err)
	}
	return nil
}

func newGlossaryApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up orthodontic terms.",
		Description: strings.Join([]string{
			"Type part of a term to see its definition. Without a command an",
			"interactive session is started.",
			"",
			"In the session each line is searched for. A line starting with '?'",
			"only lists suggestions, ':N' selects suggestion N and ':q' quits.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Usage:   "read the glossary from `PATH`",
				Aliases: []string{"f"},
				EnvVars: []string{"GLOSSARY_FILE"},
				Value:   glossary.DefaultPath,
			},
			&cli.IntFlag{
				Name:    "width",
				Usage:   "wrap definitions to `COLUMNS`",
				Aliases: []string{"w"},
				EnvVars: []string{"COLUMNS"},
				Value:   render.DefaultWidth,
			},
			&cli.BoolFlag{
				Name:               "no-color",
				Usage:              "disable colored output",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "debug",
				Usage:              "log diagnostic messages",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}

			return newSession(c).Run()
		},
		Commands: []*cli.Command{
			queryCommand,
			suggestCommand,
			listCommand,
		},
	}
}
