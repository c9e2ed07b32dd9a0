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

// Package grid implements a headless data-grid state machine: row and
// column identity, selection, sorting, pagination and row expansion,
// with no opinion about how (or whether) the grid is rendered.
package grid

import (
	"context"
	"errors"
)

// ErrBusy is returned when a row-replacing operation (sort, page
// navigation) is requested while another one is still in flight.
var ErrBusy = errors.New("grid: operation already in flight")

// Order is the sort direction of a column.
type Order int

const (
	None Order = iota
	Ascending
	Descending
)

// Next returns the order a sort toggle moves to. The cycle is
// None -> Ascending -> Descending -> Ascending; a column never returns
// to None by toggling.
func (o Order) Next() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// ParseOrder parses the string form produced by Order.String.
// Unrecognized input maps to None.
func ParseOrder(s string) Order {
	switch s {
	case "asc":
		return Ascending
	case "desc":
		return Descending
	default:
		return None
	}
}

// SelectionType controls how many rows may be selected at once.
type SelectionType int

const (
	SelectionNone SelectionType = iota
	SelectionSingle
	SelectionMulti
)

// Cell is one value of a row, addressed by column name. Rows carry
// cells in arbitrary order; views match them to columns by name.
type Cell struct {
	ColumnName string
	Value      string
	Class      string
}

// ExpandState tracks the detail pane of a single row. Content is
// cached after the first successful load.
type ExpandState struct {
	Expanded bool
	Loading  bool
	Content  any
}

// Row is a single grid row. ID always equals the row's index in the
// grid's current row slice; it is reassigned on every row replacement.
type Row struct {
	ID                int
	Cells             []Cell
	Selected          bool
	SelectionDisabled bool
	Expand            ExpandState
}

// Cell returns the row's cell for the named column, if any.
func (r Row) Cell(columnName string) (Cell, bool) {
	for _, c := range r.Cells {
		if c.ColumnName == columnName {
			return c, true
		}
	}
	return Cell{}, false
}

// SortSpec is the sort state of a sortable column. A column with a nil
// SortSpec is not sortable and ignores sort toggles.
type SortSpec struct {
	Order  Order
	Active bool
}

// Column is one grid column. ID always equals the column's index in
// the grid's current column slice. The zero Width is replaced by
// DefaultColumnWidth when the column enters the grid.
type Column struct {
	Name        string
	DisplayName string
	ID          int
	Hidden      bool
	Width       int
	Sort        *SortSpec
}

// Sortable reports whether the column participates in sorting.
func (c Column) Sortable() bool {
	return c.Sort != nil
}

// DefaultColumnWidth is assigned to columns that do not declare one.
const DefaultColumnWidth = 100

// SortFunc reorders rows by the named column. It receives the grid's
// current rows and returns their replacement; the grid replaces its
// rows wholesale with the result.
type SortFunc func(ctx context.Context, rows []Row, order Order, columnName string) ([]Row, error)

// PageFunc loads the rows of one page. page is 1-based.
type PageFunc func(ctx context.Context, page, size int) ([]Row, error)

// ExpandFunc loads the detail content of a row.
type ExpandFunc func(ctx context.Context, row Row) (any, error)

// Config carries the grid's construction-time collaborators. All
// fields are optional; a zero Config yields a selection-less grid with
// client-held rows and no async loaders.
type Config struct {
	Selection SelectionType
	PageSize  int

	// PageSizes populates the footer's page-size selector.
	PageSizes []int

	// CompactFooter limits the footer to page counts, omitting the
	// page-size selector.
	CompactFooter bool

	Sort   SortFunc
	Page   PageFunc
	Expand ExpandFunc
}
