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

// Package testutil contains helpers for writing glossary files in tests.
package testutil

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeGlossaryOptions are options for MakeTempGlossary.
type MakeGlossaryOptions struct {
	// Name is the file name. Defaults to "glossary.csv", with ".dz"
	// appended if DictZip is true.
	Name string

	// DictZip indicates that the file should be compressed with dictzip.
	DictZip bool
}

// GetName returns the file name to write.
func (o *MakeGlossaryOptions) GetName() string {
	if o != nil {
		if o.Name != "" {
			return o.Name
		}
		if o.DictZip {
			return "glossary.csv.dz"
		}
	}
	return "glossary.csv"
}

// MakeCSV encodes the header and rows as a csv table.
func MakeCSV(t *testing.T, header []string, rows [][]string) []byte {
	t.Helper()

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	if header != nil {
		if err := w.Write(header); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

// MakeTempGlossary writes contents to a file in a new temporary directory
// and returns the file's path.
func MakeTempGlossary(t *testing.T, contents []byte, opts *MakeGlossaryOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), opts.GetName())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if opts != nil && opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(contents); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	} else if _, err := f.Write(contents); err != nil {
		t.Fatal(err)
	}

	return path
}
