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
	"slices"
	"strings"
)

type keyed[V any] struct {
	key   string
	value V
}

// Index is a sorted array index over values keyed by a string. Values sharing
// a key are kept in the order they were given to New.
type Index[V any] struct {
	items []keyed[V]
}

// New creates an index of values. key is called once per value to compute
// the value's sort key.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]keyed[V], 0, len(values))
	for _, v := range values {
		items = append(items, keyed[V]{key: key(v), value: v})
	}
	slices.SortStableFunc(items, func(a, b keyed[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{items: items}
}

// Len returns the number of indexed values.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Find performs a binary search for key and returns all values with that
// key. It returns nil if there are none.
func (idx *Index[V]) Find(key string) []V {
	i, found := slices.BinarySearchFunc(idx.items, key, func(item keyed[V], k string) int {
		return strings.Compare(item.key, k)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.items) && idx.items[i].key == key; i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}
