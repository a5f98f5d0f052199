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

package glossary

// Entry is a glossary entry.
type Entry struct {
	term       string
	definition string
}

// NewEntry returns a new entry.
func NewEntry(term, definition string) *Entry {
	return &Entry{
		term:       term,
		definition: definition,
	}
}

// Term returns the entry's headword.
func (e *Entry) Term() string {
	return e.term
}

// Definition returns the entry's definition.
func (e *Entry) Definition() string {
	return e.definition
}
