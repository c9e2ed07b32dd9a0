/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Gridkit Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package datasources provides the data-loading collaborators a grid
// is wired with: an in-memory row store and a CSV loader on top of it.
// The grid core never loads data itself; it calls whatever funcs these
// sources hand it.
package datasources

import (
	"context"
	"sort"
	"strconv"

	"github.com/mosaicui/gridkit/core/grid"
)

// MemorySource holds a full dataset in memory and serves it to a grid
// page by page. It remembers the last applied sort and the last
// fetched page, so a sort refreshes the window the grid is showing.
//
// Like the grid itself, a MemorySource is meant to be driven from a
// single goroutine.
type MemorySource struct {
	rows []grid.Row

	lastPage int
	lastSize int

	detail grid.ExpandFunc
}

// NewMemorySource creates a source over the given rows.
func NewMemorySource(rows []grid.Row) *MemorySource {
	s := &MemorySource{
		rows:     make([]grid.Row, len(rows)),
		lastPage: 1,
		lastSize: grid.DefaultPageSize,
	}
	copy(s.rows, rows)
	return s
}

// SetDetailFunc installs the loader used for row expansion.
func (s *MemorySource) SetDetailFunc(fn grid.ExpandFunc) { s.detail = fn }

// TotalItems returns the dataset size.
func (s *MemorySource) TotalItems() int { return len(s.rows) }

// FetchPage returns the rows of the 1-based page.
func (s *MemorySource) FetchPage(ctx context.Context, page, size int) ([]grid.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	s.lastPage = page
	s.lastSize = size

	start := (page - 1) * size
	if start >= len(s.rows) {
		return nil, nil
	}
	end := start + size
	if end > len(s.rows) {
		end = len(s.rows)
	}
	out := make([]grid.Row, end-start)
	copy(out, s.rows[start:end])
	return out, nil
}

// SortRows reorders the whole dataset by the named column and returns
// the refreshed window the grid was last showing. Values that parse
// as numbers compare numerically, everything else lexicographically.
// It satisfies grid.SortFunc; the rows argument (the grid's current
// page) is superseded by the source's full dataset.
func (s *MemorySource) SortRows(ctx context.Context, _ []grid.Row, order grid.Order, columnName string) ([]grid.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if order != grid.None {
		sorted := make([]grid.Row, len(s.rows))
		copy(sorted, s.rows)
		sort.SliceStable(sorted, func(i, j int) bool {
			a, _ := sorted[i].Cell(columnName)
			b, _ := sorted[j].Cell(columnName)
			if order == grid.Descending {
				return compareValues(b.Value, a.Value)
			}
			return compareValues(a.Value, b.Value)
		})
		s.rows = sorted
	}
	return s.FetchPage(ctx, s.lastPage, s.lastSize)
}

// Detail satisfies grid.ExpandFunc, delegating to the installed
// detail loader. Without one it returns nil content.
func (s *MemorySource) Detail(ctx context.Context, row grid.Row) (any, error) {
	if s.detail == nil {
		return nil, nil
	}
	return s.detail(ctx, row)
}

// compareValues reports whether a sorts before b, comparing
// numerically when both values parse as floats.
func compareValues(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}
