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

package grid

import (
	"context"
	"fmt"
)

// DefaultPageSize is used when Config.PageSize is zero.
const DefaultPageSize = 10

// Grid is the orchestrator. It owns the canonical row and column
// slices and delegates data loading to the injected funcs. State
// updates replace slices wholesale; accessors return copies, so
// callers never observe partial mutations.
//
// Grid is not safe for concurrent use. Drive it from one goroutine,
// the way a UI event loop does.
type Grid struct {
	selection SelectionType
	columns   []Column
	rows      []Row
	page      Pagination
	loading   bool
	busy      bool

	sortFn   SortFunc
	pageFn   PageFunc
	expandFn ExpandFunc

	onRowSelect     func(Row)
	onSelectAll     func(bool, []Row)
	onColumnsChange func([]Column)
}

// New creates a grid. The zero Config is valid.
func New(cfg Config) *Grid {
	size := cfg.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	g := &Grid{
		selection: cfg.Selection,
		sortFn:    cfg.Sort,
		pageFn:    cfg.Page,
		expandFn:  cfg.Expand,
	}
	g.page = Pagination{
		Page:        1,
		Size:        size,
		SizeOptions: cfg.PageSizes,
		Compact:     cfg.CompactFooter,
	}.normalized()
	return g
}

// OnRowSelect registers a callback fired after a row's selection is
// toggled.
func (g *Grid) OnRowSelect(fn func(Row)) { g.onRowSelect = fn }

// OnSelectAll registers a callback fired after a select-all or
// deselect-all, with the resulting full row set.
func (g *Grid) OnSelectAll(fn func(bool, []Row)) { g.onSelectAll = fn }

// OnColumnsChange registers a callback fired after the column slice is
// replaced.
func (g *Grid) OnColumnsChange(fn func([]Column)) { g.onColumnsChange = fn }

// SetColumns replaces the grid's columns. Defaults are filled in, IDs
// are reassigned by index, and sort state carries forward from
// same-named previous columns.
func (g *Grid) SetColumns(cols []Column) {
	next := normalizeColumns(cols)
	g.columns = carryForwardSort(g.columns, next)
	if g.onColumnsChange != nil {
		g.onColumnsChange(g.Columns())
	}
}

// SetRows replaces the grid's rows. IDs are reassigned by index;
// selection and expansion state travel with the rows the caller
// passes in.
func (g *Grid) SetRows(rows []Row) {
	g.rows = assignRowIDs(rows)
}

// Columns returns a copy of the grid's columns. Sort specs are copied
// too, so callers cannot reach into grid state through them.
func (g *Grid) Columns() []Column {
	out := make([]Column, len(g.columns))
	copy(out, g.columns)
	for i := range out {
		if out[i].Sort != nil {
			spec := *out[i].Sort
			out[i].Sort = &spec
		}
	}
	return out
}

// Rows returns a copy of the grid's rows.
func (g *Grid) Rows() []Row {
	out := make([]Row, len(g.rows))
	copy(out, g.rows)
	return out
}

// Selection returns the grid's selection mode.
func (g *Grid) Selection() SelectionType { return g.selection }

// SelectedRows returns the currently selected rows in grid order.
func (g *Grid) SelectedRows() []Row { return selectedRows(g.rows) }

// AllSelected reports whether every selection-eligible row is
// selected. False when the grid has no eligible rows.
func (g *Grid) AllSelected() bool { return allSelected(g.rows) }

// ColumnByName returns the named column.
func (g *Grid) ColumnByName(name string) (Column, bool) {
	for _, c := range g.columns {
		if c.Name == name {
			if c.Sort != nil {
				spec := *c.Sort
				c.Sort = &spec
			}
			return c, true
		}
	}
	return Column{}, false
}

// UpdateColumnWidth sets the named column's width. Widths below 1 are
// ignored.
func (g *Grid) UpdateColumnWidth(name string, width int) {
	if width < 1 {
		return
	}
	out := make([]Column, len(g.columns))
	copy(out, g.columns)
	for i := range out {
		if out[i].Name == name {
			out[i].Width = width
		}
	}
	g.columns = out
}

// ToggleRow flips the selection of the row with the given id. Under
// single selection this deselects every other row first. Disabled
// rows and unknown ids are ignored.
func (g *Grid) ToggleRow(id int) {
	before := g.rows
	g.rows = toggleRowSelection(g.rows, id, g.selection)
	if len(g.rows) == len(before) && id >= 0 && id < len(g.rows) {
		if g.onRowSelect != nil && g.rows[id].Selected != before[id].Selected {
			g.onRowSelect(g.rows[id])
		}
	}
}

// SelectAll selects or deselects every eligible row. It only applies
// under multi selection.
func (g *Grid) SelectAll(selected bool) {
	if g.selection != SelectionMulti {
		return
	}
	g.rows = setAllSelected(g.rows, selected)
	if g.onSelectAll != nil {
		g.onSelectAll(selected, g.Rows())
	}
}

// Loading reports whether an async operation is in flight or the
// loader was shown explicitly.
func (g *Grid) Loading() bool { return g.loading }

// ShowLoader turns the loading state on without an operation, for
// callers that manage their own fetches.
func (g *Grid) ShowLoader() { g.loading = true }

// HideLoader turns the loading state off.
func (g *Grid) HideLoader() { g.loading = false }

// Page returns the grid's pagination state.
func (g *Grid) Page() Pagination { return g.page }

// SetTotalItems updates the dataset size the pagination is computed
// from, clamping the current page if it now lies past the end.
func (g *Grid) SetTotalItems(total int) {
	g.page = g.page.withTotalItems(total)
}

// GoToPage navigates to the given page, clamped to the valid range.
// Navigating to the page the grid is already on is a no-op and does
// not invoke the page loader.
func (g *Grid) GoToPage(ctx context.Context, page int) error {
	target := g.page.withPage(page)
	if target.Page == g.page.Page && g.page.TotalPages == target.TotalPages {
		g.page = target
		return nil
	}
	return g.loadPage(ctx, target)
}

// NextPage navigates one page forward.
func (g *Grid) NextPage(ctx context.Context) error {
	return g.GoToPage(ctx, g.page.Page+1)
}

// PreviousPage navigates one page back.
func (g *Grid) PreviousPage(ctx context.Context) error {
	return g.GoToPage(ctx, g.page.Page-1)
}

// FirstPage navigates to page 1.
func (g *Grid) FirstPage(ctx context.Context) error {
	return g.GoToPage(ctx, 1)
}

// LastPage navigates to the final page.
func (g *Grid) LastPage(ctx context.Context) error {
	return g.GoToPage(ctx, g.page.TotalPages)
}

// SetPageSize changes the page size, staying on the current page
// clamped to the new page count.
func (g *Grid) SetPageSize(ctx context.Context, size int) error {
	target := g.page.withSize(size)
	if target.Page == g.page.Page && target.Size == g.page.Size {
		return nil
	}
	return g.loadPage(ctx, target)
}

// SetPageFromInput parses free-form page input and navigates to the
// resulting page. The accepted page is returned so callers can echo
// the clamped value back into the input field.
func (g *Grid) SetPageFromInput(ctx context.Context, input string) (int, error) {
	page, err := ParsePageInput(input, g.page.TotalPages)
	if err != nil {
		return 0, err
	}
	if err := g.GoToPage(ctx, page); err != nil {
		return 0, err
	}
	return page, nil
}

// loadPage fetches the target page's rows and commits the pagination
// target on success; on loader failure the grid keeps its previous
// page and rows. Without a page loader configured the navigation is a
// no-op: nothing changes and no loading indicator is shown.
func (g *Grid) loadPage(ctx context.Context, target Pagination) error {
	if g.pageFn == nil {
		return nil
	}
	if g.busy {
		return ErrBusy
	}
	g.busy = true
	g.loading = true
	rows, err := g.pageFn(ctx, target.Page, target.Size)
	g.loading = false
	g.busy = false
	if err != nil {
		return fmt.Errorf("load page %d: %w", target.Page, err)
	}
	g.page = target
	g.rows = assignRowIDs(rows)
	return nil
}
