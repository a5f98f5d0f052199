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

// Package folding implements the text normalization used for matching
// glossary terms and for displaying definitions.
package folding

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Lower returns s in lower case. Casers keep internal state so a new one is
// created for each call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Query normalizes a search query: surrounding whitespace is removed and the
// result is lower-cased.
func Query(s string) string {
	return Lower(strings.TrimSpace(s))
}

// Whitespace trims s and folds internal whitespace runs into single spaces.
func Whitespace(s string) string {
	out, _, err := transform.String(&WhitespaceFolder{}, s)
	if err != nil {
		// The folder never returns errors other than the short buffer errors
		// handled by transform.String.
		return strings.Join(strings.Fields(s), " ")
	}
	return out
}
