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

package views

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/mosaicui/gridkit/core/grid"
	"github.com/mosaicui/gridkit/core/query"
)

func buildTestGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.New(grid.Config{Selection: grid.SelectionMulti, PageSize: 2})
	g.SetColumns([]grid.Column{
		{Name: "name", DisplayName: "Name", Sort: &grid.SortSpec{}},
		{Name: "city", DisplayName: "City"},
		{Name: "secret", Hidden: true},
	})
	g.SetRows([]grid.Row{
		{Cells: []grid.Cell{
			{ColumnName: "city", Value: "oslo"},
			{ColumnName: "name", Value: "alice"},
			{ColumnName: "secret", Value: "x"},
		}},
		// Ragged row: no city cell.
		{Cells: []grid.Cell{{ColumnName: "name", Value: "bob"}}},
	})
	g.SetTotalItems(5)
	return g
}

func TestBuildViewModelHeaders(t *testing.T) {
	g := buildTestGrid(t)
	vm := BuildViewModel(g, nil, "People", "people")

	if len(vm.Headers) != 2 {
		t.Fatalf("%d headers, want 2 (hidden column excluded)", len(vm.Headers))
	}
	if vm.Headers[0].DisplayName != "Name" || !vm.Headers[0].Sortable {
		t.Errorf("header 0 = %+v", vm.Headers[0])
	}
	if vm.Headers[1].Sortable {
		t.Errorf("city header claims to be sortable")
	}
}

func TestBuildViewModelMatchesCellsByName(t *testing.T) {
	g := buildTestGrid(t)
	vm := BuildViewModel(g, nil, "People", "people")

	if len(vm.Rows) != 2 {
		t.Fatalf("%d rows, want 2", len(vm.Rows))
	}
	alice := vm.Rows[0]
	if alice.Cells[0].Value != "alice" || alice.Cells[1].Value != "oslo" {
		t.Errorf("cells out of column order: %+v", alice.Cells)
	}

	bob := vm.Rows[1]
	if len(bob.Cells) != 2 {
		t.Fatalf("ragged row has %d cells, want padded to 2", len(bob.Cells))
	}
	if bob.Cells[1].Value != "" {
		t.Errorf("missing cell rendered as %q, want empty", bob.Cells[1].Value)
	}
}

func TestBuildViewModelFooter(t *testing.T) {
	g := buildTestGrid(t)
	vm := BuildViewModel(g, nil, "People", "people")

	f := vm.Footer
	if f.RangeLabel != "1 - 2 of 5 people" {
		t.Errorf("RangeLabel = %q", f.RangeLabel)
	}
	if f.Page != 1 || f.TotalPages != 3 {
		t.Errorf("page = %d/%d, want 1/3", f.Page, f.TotalPages)
	}
	if f.HasPrev || !f.HasNext {
		t.Errorf("HasPrev/HasNext = %v/%v, want false/true", f.HasPrev, f.HasNext)
	}
}

func TestBuildViewModelDefaultItemLabel(t *testing.T) {
	g := buildTestGrid(t)
	vm := BuildViewModel(g, nil, "People", "")

	if !strings.HasSuffix(vm.Footer.RangeLabel, "items") {
		t.Errorf("RangeLabel = %q, want default label", vm.Footer.RangeLabel)
	}
}

func TestBuildViewModelZeroItems(t *testing.T) {
	g := grid.New(grid.Config{PageSize: 10})
	g.SetColumns([]grid.Column{{Name: "a"}})
	vm := BuildViewModel(g, nil, "Empty", "")

	if vm.Footer.RangeLabel != "0 - 0 of 0 items" {
		t.Errorf("RangeLabel = %q", vm.Footer.RangeLabel)
	}
	if vm.Footer.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", vm.Footer.TotalPages)
	}
}

func TestBuildViewModelExpansion(t *testing.T) {
	g := grid.New(grid.Config{
		Expand: func(ctx context.Context, row grid.Row) (any, error) {
			return "more about bob", nil
		},
	})
	g.SetColumns([]grid.Column{{Name: "name"}})
	g.SetRows([]grid.Row{{Cells: []grid.Cell{{ColumnName: "name", Value: "bob"}}}})
	if err := g.ToggleExpand(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	vm := BuildViewModel(g, nil, "People", "")
	if !vm.Rows[0].Expanded || vm.Rows[0].Detail != "more about bob" {
		t.Errorf("row view = %+v", vm.Rows[0])
	}
}

func TestBuildViewModelSizeOptions(t *testing.T) {
	g := grid.New(grid.Config{PageSize: 10, PageSizes: []int{10, 20, 50}})
	g.SetColumns([]grid.Column{{Name: "a"}})
	g.SetTotalItems(100)

	u, _ := url.Parse("/grid?grid=orders&page=1&size=10")
	q := query.NewQuery(u, 10)
	vm := BuildViewModel(g, q, "Orders", "orders")

	opts := vm.Footer.SizeOptions
	if len(opts) != 3 {
		t.Fatalf("%d size options, want 3", len(opts))
	}
	if !opts[0].Active || opts[1].Active {
		t.Errorf("active flags = %v/%v, want only the current size active", opts[0].Active, opts[1].Active)
	}
	if !strings.Contains(opts[1].URL.String(), "size=20") {
		t.Errorf("option URL = %q, want size=20", opts[1].URL.String())
	}
	if !strings.Contains(opts[1].URL.String(), "page=1") {
		t.Errorf("option URL = %q, size change must reset to page 1", opts[1].URL.String())
	}
	if vm.Footer.Compact {
		t.Error("Compact = true without compact configuration")
	}
}

func TestBuildViewModelCompactFooter(t *testing.T) {
	g := grid.New(grid.Config{PageSize: 10, PageSizes: []int{10, 20}, CompactFooter: true})
	g.SetColumns([]grid.Column{{Name: "a"}})

	vm := BuildViewModel(g, nil, "Orders", "orders")
	if !vm.Footer.Compact {
		t.Error("Compact flag not carried into the footer view")
	}
}

func TestBuildViewModelURLs(t *testing.T) {
	g := buildTestGrid(t)
	u, _ := url.Parse("/grid?page=1&size=2")
	q := query.NewQuery(u, 2)

	vm := BuildViewModel(g, q, "People", "people")

	if vm.Headers[0].SortURL.String() == "" {
		t.Error("sortable header has no sort URL")
	}
	if vm.Headers[1].SortURL.String() != "" {
		t.Error("unsortable header got a sort URL")
	}
	if !strings.Contains(vm.Footer.NextURL.String(), "page=2") {
		t.Errorf("NextURL = %q", vm.Footer.NextURL.String())
	}
	if vm.CurrentURL.String() == "" {
		t.Error("CurrentURL not set")
	}
}
