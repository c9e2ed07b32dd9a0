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

package catalog

import (
	"strings"
	"testing"

	"github.com/mosaicui/gridkit/core/grid"
)

const ordersCatalog = `
title = "Orders"
item_label = "orders"
selection = "multi"

[pagination]
page_size = 20
page_sizes = [10, 20, 50]
compact_footer = true

[[columns]]
name = "id"
display = "Order ID"
width = 80
sortable = true

[[columns]]
name = "status"
sortable = true

[[columns]]
name = "internal_ref"
hidden = true
`

func TestLoadCatalog(t *testing.T) {
	c, err := Load(strings.NewReader(ordersCatalog))
	if err != nil {
		t.Fatal(err)
	}

	if c.Title != "Orders" || c.ItemLabel != "orders" {
		t.Errorf("title/label = %q/%q", c.Title, c.ItemLabel)
	}
	if c.SelectionType() != grid.SelectionMulti {
		t.Errorf("SelectionType = %v, want multi", c.SelectionType())
	}
	if c.PageSize() != 20 {
		t.Errorf("PageSize = %d, want 20", c.PageSize())
	}
	if len(c.Paging.PageSizes) != 3 {
		t.Errorf("PageSizes = %v", c.Paging.PageSizes)
	}
	if !c.Paging.Compact {
		t.Error("compact_footer not parsed")
	}

	cols := c.GridColumns()
	if len(cols) != 3 {
		t.Fatalf("%d columns, want 3", len(cols))
	}
	if cols[0].DisplayName != "Order ID" || cols[0].Width != 80 || cols[0].Sort == nil {
		t.Errorf("id column = %+v", cols[0])
	}
	if cols[1].Sort == nil {
		t.Error("status column not sortable")
	}
	if !cols[2].Hidden || cols[2].Sort != nil {
		t.Errorf("internal_ref column = %+v", cols[2])
	}
}

func TestLoadCatalogDefaults(t *testing.T) {
	c, err := Load(strings.NewReader(`title = "Minimal"`))
	if err != nil {
		t.Fatal(err)
	}
	if c.SelectionType() != grid.SelectionNone {
		t.Errorf("SelectionType = %v, want none", c.SelectionType())
	}
	if c.PageSize() != grid.DefaultPageSize {
		t.Errorf("PageSize = %d, want default", c.PageSize())
	}
}

func TestLoadCatalogRejectsBadSelection(t *testing.T) {
	if _, err := Load(strings.NewReader(`selection = "all"`)); err == nil {
		t.Fatal("invalid selection mode accepted")
	}
}

func TestLoadCatalogRejectsNamelessColumn(t *testing.T) {
	bad := `
[[columns]]
display = "No Name"
`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatal("nameless column accepted")
	}
}
