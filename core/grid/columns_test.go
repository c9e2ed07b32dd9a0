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

import "testing"

func TestNormalizeColumnsDefaults(t *testing.T) {
	cols := normalizeColumns([]Column{
		{Name: "id"},
		{Name: "status", DisplayName: "Status", Width: 120},
	})

	if cols[0].DisplayName != "id" {
		t.Errorf("DisplayName = %q, want fallback to name", cols[0].DisplayName)
	}
	if cols[0].Width != DefaultColumnWidth {
		t.Errorf("Width = %d, want default %d", cols[0].Width, DefaultColumnWidth)
	}
	if cols[1].Width != 120 {
		t.Errorf("declared width overwritten: got %d", cols[1].Width)
	}
	for i, c := range cols {
		if c.ID != i {
			t.Errorf("column %q ID = %d, want index %d", c.Name, c.ID, i)
		}
	}
}

func TestNormalizeColumnsCopiesSortSpecs(t *testing.T) {
	spec := &SortSpec{Order: Ascending, Active: true}
	cols := normalizeColumns([]Column{{Name: "a", Sort: spec}})

	if cols[0].Sort == spec {
		t.Fatal("normalized column aliases caller-owned sort spec")
	}
	if *cols[0].Sort != *spec {
		t.Errorf("sort spec = %+v, want copy of %+v", *cols[0].Sort, *spec)
	}
}

func TestCarryForwardSortByName(t *testing.T) {
	prev := normalizeColumns([]Column{
		{Name: "a", Sort: &SortSpec{Order: Descending, Active: true}},
		{Name: "b", Sort: &SortSpec{}},
	})

	// Replacement reorders the columns and adds one; a's sort state
	// must follow the name, not the position.
	next := carryForwardSort(prev, normalizeColumns([]Column{
		{Name: "b", Sort: &SortSpec{}},
		{Name: "c"},
		{Name: "a", Sort: &SortSpec{}},
	}))

	var a Column
	for _, c := range next {
		if c.Name == "a" {
			a = c
		}
	}
	if a.Sort == nil || a.Sort.Order != Descending || !a.Sort.Active {
		t.Errorf("column a sort = %+v, want descending active carried forward", a.Sort)
	}
	for _, c := range next {
		if c.Name == "c" && c.Sort != nil {
			t.Errorf("column c acquired a sort spec it never declared")
		}
	}
}

func TestCarryForwardSortDoesNotResurrect(t *testing.T) {
	prev := normalizeColumns([]Column{
		{Name: "a", Sort: &SortSpec{Order: Ascending, Active: true}},
	})
	next := carryForwardSort(prev, normalizeColumns([]Column{{Name: "a"}}))

	if next[0].Sort != nil {
		t.Errorf("column that declared no sort spec became sortable after merge")
	}
}

func TestUpdateColumnWidth(t *testing.T) {
	g := New(Config{})
	g.SetColumns([]Column{{Name: "a"}, {Name: "b"}})

	g.UpdateColumnWidth("b", 240)
	g.UpdateColumnWidth("a", 0) // ignored

	a, _ := g.ColumnByName("a")
	b, _ := g.ColumnByName("b")
	if a.Width != DefaultColumnWidth {
		t.Errorf("a.Width = %d, want untouched default", a.Width)
	}
	if b.Width != 240 {
		t.Errorf("b.Width = %d, want 240", b.Width)
	}
}

func TestSetColumnsFiresCallback(t *testing.T) {
	g := New(Config{})
	var got []Column
	g.OnColumnsChange(func(cols []Column) { got = cols })

	g.SetColumns([]Column{{Name: "a"}, {Name: "b"}})

	if len(got) != 2 {
		t.Fatalf("callback saw %d columns, want 2", len(got))
	}
}
