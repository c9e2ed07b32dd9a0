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

// Package views derives render-ready viewmodels from grid state. The
// viewmodel is plain data: templates and terminal adapters consume it
// without touching the grid itself.
package views

import (
	"fmt"

	"github.com/google/safehtml"

	"github.com/mosaicui/gridkit/core/grid"
	"github.com/mosaicui/gridkit/core/query"
)

// GridViewModel is everything a renderer needs for one grid.
type GridViewModel struct {
	Title     string
	Selection grid.SelectionType
	Loading   bool

	Headers []HeaderCell
	Rows    []RowView
	Footer  FooterView

	// AllSelected drives the header select-all checkbox.
	AllSelected bool

	CurrentURL safehtml.URL
}

// HeaderCell is one column header.
type HeaderCell struct {
	Name        string
	DisplayName string
	Width       int
	Sortable    bool
	SortOrder   grid.Order
	SortActive  bool

	// SortURL toggles this column's sort. Zero when the viewmodel was
	// built without a query.
	SortURL safehtml.URL
}

// RowView is one rendered row. Cells follow the visible column order;
// a row that carries no cell for some column gets an empty CellView
// there, so ragged rows degrade instead of misaligning.
type RowView struct {
	ID                int
	Selected          bool
	SelectionDisabled bool
	Expanded          bool
	ExpandLoading     bool
	Detail            string
	Cells             []CellView
}

// CellView is one rendered cell.
type CellView struct {
	Value string
	Class string
}

// FooterView is the pagination footer.
type FooterView struct {
	RangeLabel string
	Page       int
	TotalPages int
	PageSize   int
	TotalItems int
	HasPrev    bool
	HasNext    bool

	// Compact omits the page-size selector from the rendered footer.
	Compact     bool
	SizeOptions []SizeOption

	FirstURL safehtml.URL
	PrevURL  safehtml.URL
	NextURL  safehtml.URL
	LastURL  safehtml.URL
}

// SizeOption is one entry of the footer's page-size selector.
type SizeOption struct {
	Size   int
	Active bool

	// URL switches the grid to this page size. Zero when the viewmodel
	// was built without a query.
	URL safehtml.URL
}

// BuildViewModel derives a viewmodel from the grid's current state. q
// supplies the navigation URLs baked into headers and footer; it may
// be nil for renderers that drive the grid directly (the terminal
// adapter does).
func BuildViewModel(g *grid.Grid, q *query.Query, title, itemLabel string) GridViewModel {
	vm := GridViewModel{
		Title:       title,
		Selection:   g.Selection(),
		Loading:     g.Loading(),
		AllSelected: g.AllSelected(),
	}

	visible := visibleColumns(g.Columns())
	vm.Headers = buildHeaders(visible, q)
	vm.Rows = buildRows(g.Rows(), visible)
	vm.Footer = buildFooter(g.Page(), q, itemLabel)
	if q != nil {
		vm.CurrentURL = q.ToSafeURL()
	}
	return vm
}

func visibleColumns(cols []grid.Column) []grid.Column {
	out := make([]grid.Column, 0, len(cols))
	for _, c := range cols {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func buildHeaders(cols []grid.Column, q *query.Query) []HeaderCell {
	headers := make([]HeaderCell, len(cols))
	for i, c := range cols {
		h := HeaderCell{
			Name:        c.Name,
			DisplayName: c.DisplayName,
			Width:       c.Width,
			Sortable:    c.Sortable(),
		}
		if c.Sort != nil {
			h.SortOrder = c.Sort.Order
			h.SortActive = c.Sort.Active
		}
		if q != nil && h.Sortable {
			h.SortURL = q.WithSortToggled(c.Name, h.SortOrder)
		}
		headers[i] = h
	}
	return headers
}

func buildRows(rows []grid.Row, cols []grid.Column) []RowView {
	out := make([]RowView, len(rows))
	for i, r := range rows {
		rv := RowView{
			ID:                r.ID,
			Selected:          r.Selected,
			SelectionDisabled: r.SelectionDisabled,
			Expanded:          r.Expand.Expanded,
			ExpandLoading:     r.Expand.Loading,
			Cells:             make([]CellView, len(cols)),
		}
		if r.Expand.Expanded && r.Expand.Content != nil {
			rv.Detail = fmt.Sprint(r.Expand.Content)
		}
		for j, c := range cols {
			if cell, ok := r.Cell(c.Name); ok {
				rv.Cells[j] = CellView{Value: cell.Value, Class: cell.Class}
			}
		}
		out[i] = rv
	}
	return out
}

func buildFooter(p grid.Pagination, q *query.Query, itemLabel string) FooterView {
	if itemLabel == "" {
		itemLabel = "items"
	}
	f := FooterView{
		RangeLabel: fmt.Sprintf("%d - %d of %d %s", p.FirstItem, p.LastItem, p.TotalItems, itemLabel),
		Page:       p.Page,
		TotalPages: p.TotalPages,
		PageSize:   p.Size,
		TotalItems: p.TotalItems,
		HasPrev:    p.Page > 1,
		HasNext:    p.Page < p.TotalPages,
		Compact:    p.Compact,
	}
	for _, size := range p.SizeOptions {
		opt := SizeOption{Size: size, Active: size == p.Size}
		if q != nil {
			opt.URL = q.WithPageSize(size)
		}
		f.SizeOptions = append(f.SizeOptions, opt)
	}
	if q != nil {
		f.FirstURL = q.WithPage(1)
		f.PrevURL = q.WithPage(p.Page - 1)
		f.NextURL = q.WithPage(p.Page + 1)
		f.LastURL = q.WithPage(p.TotalPages)
	}
	return f
}
