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

// Package csvfile implements reading glossary .csv files.
//
// A glossary file is a comma separated table whose first row is a header.
// The header must name two columns:
//  1. term: the glossary headword.
//  2. definition: the text describing the term.
//
// Column names are matched case-insensitively and may appear in any order.
// Other columns are ignored. The file may be compressed with dictzip, in
// which case its name ends in ".dz".
package csvfile
