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

// Package glossary implements a small in-memory glossary of terms and their
// definitions.
//
// A glossary is loaded once from an optional .csv file (see package csvfile)
// and falls back to a built-in seed list of orthodontic terms when the file
// is missing or unreadable. The glossary supports three kinds of query:
//  1. Search returns the first entry whose term contains the query.
//  2. Suggest returns up to MaxSuggestions terms containing the query, for
//     autocomplete.
//  3. Lookup returns the entries whose term equals the query.
//
// All queries are trimmed and matched case-insensitively. Entries are
// always considered in the order they were loaded.
package glossary
