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

// Package catalog loads grid definitions from TOML files: the column
// set, selection mode and pagination defaults for one grid, kept next
// to the data instead of in code.
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mosaicui/gridkit/core/grid"
)

// Catalog is one grid definition.
//
// Example:
//
//	title = "Orders"
//	item_label = "orders"
//	selection = "multi"
//
//	[pagination]
//	page_size = 10
//	page_sizes = [10, 20, 50]
//	compact_footer = false
//
//	[[columns]]
//	name = "id"
//	display = "Order ID"
//	width = 80
//	sortable = true
type Catalog struct {
	Title     string     `toml:"title"`
	ItemLabel string     `toml:"item_label"`
	Selection string     `toml:"selection"`
	Paging    Pagination `toml:"pagination"`
	Columns   []Column   `toml:"columns"`
}

// Pagination holds the catalog's paging defaults.
type Pagination struct {
	PageSize  int   `toml:"page_size"`
	PageSizes []int `toml:"page_sizes"`
	Compact   bool  `toml:"compact_footer"`
}

// Column is one column definition.
type Column struct {
	Name     string `toml:"name"`
	Display  string `toml:"display"`
	Width    int    `toml:"width"`
	Sortable bool   `toml:"sortable"`
	Hidden   bool   `toml:"hidden"`
}

// Load reads a catalog from TOML.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a catalog from a TOML file.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()
	return Load(file)
}

func (c *Catalog) validate() error {
	switch c.Selection {
	case "", "none", "single", "multi":
	default:
		return fmt.Errorf("invalid selection mode %q", c.Selection)
	}
	for i, col := range c.Columns {
		if col.Name == "" {
			return fmt.Errorf("column %d has no name", i)
		}
	}
	return nil
}

// GridColumns converts the catalog's column definitions.
func (c *Catalog) GridColumns() []grid.Column {
	cols := make([]grid.Column, len(c.Columns))
	for i, col := range c.Columns {
		gc := grid.Column{
			Name:        col.Name,
			DisplayName: col.Display,
			Width:       col.Width,
			Hidden:      col.Hidden,
		}
		if col.Sortable {
			gc.Sort = &grid.SortSpec{}
		}
		cols[i] = gc
	}
	return cols
}

// SelectionType maps the catalog's selection mode. An empty mode
// means no selection.
func (c *Catalog) SelectionType() grid.SelectionType {
	switch c.Selection {
	case "single":
		return grid.SelectionSingle
	case "multi":
		return grid.SelectionMulti
	default:
		return grid.SelectionNone
	}
}

// PageSize returns the catalog's default page size.
func (c *Catalog) PageSize() int {
	if c.Paging.PageSize < 1 {
		return grid.DefaultPageSize
	}
	return c.Paging.PageSize
}
