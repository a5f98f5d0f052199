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

package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// TermColumn is the header name of the term column.
	TermColumn = "term"

	// DefinitionColumn is the header name of the definition column.
	DefinitionColumn = "definition"
)

// ErrCSV is a parent error for all glossary file errors.
var ErrCSV = errors.New("csvfile")

// ErrMissingColumn indicates that the header does not name a required column.
var ErrMissingColumn = fmt.Errorf("%w: missing column", ErrCSV)

// ErrMalformedRecord indicates a row that could not be parsed.
var ErrMalformedRecord = fmt.Errorf("%w: malformed record", ErrCSV)

// Record is a single glossary file row.
type Record struct {
	Term       string
	Definition string
}

// Scanner scans a glossary file from start to end.
type Scanner struct {
	r   io.ReadCloser
	cr  *csv.Reader
	rec *Record
	err error

	termCol int
	defCol  int
}

// NewScanner returns a new Scanner reading from r. The header row is read
// immediately and an error is returned if it is missing or lacks a required
// column. The Scanner assumes ownership of the reader and should be closed
// with the Close method.
func NewScanner(r io.ReadCloser) (*Scanner, error) {
	// Every row must have as many fields as the header.
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, TermColumn)
		}
		return nil, fmt.Errorf("%w: reading header: %w", ErrMalformedRecord, err)
	}

	s := &Scanner{
		r:       r,
		cr:      cr,
		termCol: -1,
		defCol:  -1,
	}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case TermColumn:
			if s.termCol < 0 {
				s.termCol = i
			}
		case DefinitionColumn:
			if s.defCol < 0 {
				s.defCol = i
			}
		}
	}
	if s.termCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, TermColumn)
	}
	if s.defCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, DefinitionColumn)
	}
	return s, nil
}

// Scan advances the scanner to the next record. It returns false if the
// scan stops either by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	fields, err := s.cr.Read()
	if err != nil {
		s.rec = nil
		if !errors.Is(err, io.EOF) {
			s.err = fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		return false
	}

	s.rec = &Record{
		Term:       fields[s.termCol],
		Definition: fields[s.defCol],
	}
	return true
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing glossary file: %w", err)
	}
	return nil
}
