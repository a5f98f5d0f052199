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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pair struct {
	Key string
	N   int
}

func TestIndex_Find(t *testing.T) {
	t.Parallel()

	values := []pair{
		{"foo", 1},
		{"Bar", 2},
		{"baz", 3},
		{"bar", 4},
		{"BAR", 5},
	}

	tests := []struct {
		name     string
		key      func(pair) string
		query    string
		expected []pair
	}{
		{
			name:     "single result",
			key:      func(p pair) string { return p.Key },
			query:    "foo",
			expected: []pair{{"foo", 1}},
		},
		{
			name:     "exact key only",
			key:      func(p pair) string { return p.Key },
			query:    "bar",
			expected: []pair{{"bar", 4}},
		},
		{
			name:     "folded keys keep input order",
			key:      func(p pair) string { return strings.ToLower(p.Key) },
			query:    "bar",
			expected: []pair{{"Bar", 2}, {"bar", 4}, {"BAR", 5}},
		},
		{
			name:     "no results",
			key:      func(p pair) string { return p.Key },
			query:    "none",
			expected: nil,
		},
		{
			name:     "empty key",
			key:      func(p pair) string { return p.Key },
			query:    "",
			expected: nil,
		},
	}

	for _, test := range tests {

		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(values, test.key)
			if got, want := idx.Len(), len(values); got != want {
				t.Errorf("Len: got %d, want %d", got, want)
			}
			if diff := cmp.Diff(test.expected, idx.Find(test.query)); diff != "" {
				t.Fatalf("Find (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_empty(t *testing.T) {
	t.Parallel()

	idx := New[pair](nil, func(p pair) string { return p.Key })
	if got := idx.Find("foo"); got != nil {
		t.Fatalf("Find: got %v, want nil", got)
	}
}
