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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// DictZipExt is the extension of dictzip compressed glossary files.
const DictZipExt = ".dz"

// FindPath returns the path of the glossary file to read for path. If path
// does not exist but a dictzip compressed copy does, the compressed copy's
// path is returned. The returned path may not exist.
func FindPath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, ext := range []string{DictZipExt, strings.ToUpper(DictZipExt)} {
		if _, err := os.Stat(path + ext); err == nil {
			return path + ext
		}
	}
	return path
}

// Open opens the glossary file at path, or its dictzip compressed copy, and
// returns a Scanner positioned after the header.
func Open(path string) (*Scanner, error) {
	path = FindPath(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	var r io.ReadCloser = f
	if strings.EqualFold(filepath.Ext(path), DictZipExt) {
		r, err = decompress(f)
		// The file is fully read by decompress.
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
	}

	s, err := NewScanner(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return s, nil
}

// decompress reads the whole dictzip stream. Glossary files are small so the
// table is held in memory rather than read through random access chunks.
func decompress(f *os.File) (io.ReadCloser, error) {
	z, err := dictzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: dictzip: %w", ErrMalformedRecord, err)
	}
	b, err := io.ReadAll(z)
	if err != nil {
		return nil, fmt.Errorf("%w: dictzip: %w", ErrMalformedRecord, err)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}
