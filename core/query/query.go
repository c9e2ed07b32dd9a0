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

// Package query maps grid state to and from URLs, so a server-rendered
// grid keeps its whole state in the address bar.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/safehtml"

	"github.com/mosaicui/gridkit/core/grid"
)

// Query represents the parsed state of a grid URL.
type Query struct {
	// Base path (e.g., "/grid")
	Path string

	// Grid is the registered grid being viewed.
	Grid string

	Page       int
	Size       int
	SortColumn string
	SortOrder  grid.Order
}

// NewQuery creates a Query from a URL. Missing or malformed
// parameters fall back to page 1, the given default size and no sort.
// The sort parameter format is "column:asc" or "column:desc".
func NewQuery(u *url.URL, defaultSize int) *Query {
	if defaultSize < 1 {
		defaultSize = grid.DefaultPageSize
	}
	state := &Query{
		Path: u.Path,
		Page: 1,
		Size: defaultSize,
	}

	q := u.Query()

	state.Grid = q.Get("grid")

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page >= 1 {
		state.Page = page
	}
	if size, err := strconv.Atoi(q.Get("size")); err == nil && size >= 1 {
		state.Size = size
	}

	if sortStr := q.Get("sort"); sortStr != "" {
		column := sortStr
		order := grid.Ascending
		if idx := strings.LastIndex(sortStr, ":"); idx != -1 {
			column = sortStr[:idx]
			order = grid.ParseOrder(sortStr[idx+1:])
		}
		if column != "" && order != grid.None {
			state.SortColumn = column
			state.SortOrder = order
		}
	}

	return state
}

// Clone creates a copy of the Query.
func (s *Query) Clone() *Query {
	clone := *s
	return &clone
}

// WithPage returns a URL moved to the given page.
func (s *Query) WithPage(page int) safehtml.URL {
	if page < 1 {
		page = 1
	}
	newState := s.Clone()
	newState.Page = page
	return newState.ToSafeURL()
}

// WithPageSize returns a URL with a new page size, reset to page 1.
func (s *Query) WithPageSize(size int) safehtml.URL {
	newState := s.Clone()
	newState.Size = size
	newState.Page = 1
	return newState.ToSafeURL()
}

// WithSortToggled returns a URL with the column's sort advanced one
// step from the given current order. The page resets to 1, since the
// old page offset means nothing in the new order.
func (s *Query) WithSortToggled(column string, current grid.Order) safehtml.URL {
	newState := s.Clone()
	newState.SortColumn = column
	newState.SortOrder = current.Next()
	newState.Page = 1
	return newState.ToSafeURL()
}

// ToURL converts the Query back to a URL string.
func (s *Query) ToURL() string {
	u := &url.URL{
		Path: s.Path,
	}

	q := u.Query()
	if s.Grid != "" {
		q.Set("grid", s.Grid)
	}
	q.Set("page", strconv.Itoa(s.Page))
	q.Set("size", strconv.Itoa(s.Size))
	if s.SortColumn != "" && s.SortOrder != grid.None {
		q.Set("sort", s.SortColumn+":"+s.SortOrder.String())
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	urlStr := s.ToURL()
	// URLSanitized sanitizes the input string and returns a URL
	return safehtml.URLSanitized(urlStr)
}
