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

// Package demo bundles the sample dataset and catalog the demo binary
// serves.
package demo

import (
	"context"
	"fmt"
	"strings"

	_ "embed"

	"github.com/mosaicui/gridkit/catalog"
	"github.com/mosaicui/gridkit/core/grid"
	"github.com/mosaicui/gridkit/datasources"
)

//go:embed data/orders.csv
var ordersCSV string

//go:embed catalogs/orders.toml
var ordersCatalog string

// Orders loads the sample orders grid: its catalog and a memory
// source over the embedded CSV, with a detail loader for row
// expansion.
func Orders() (*catalog.Catalog, *datasources.MemorySource, error) {
	cat, err := catalog.Load(strings.NewReader(ordersCatalog))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load orders catalog: %w", err)
	}

	src, _, err := datasources.LoadCSV(strings.NewReader(ordersCSV), datasources.CSVOptions{HasHeader: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load orders CSV: %w", err)
	}

	src.SetDetailFunc(orderDetail)
	return cat, src, nil
}

// orderDetail renders the expansion content of one order row.
func orderDetail(ctx context.Context, row grid.Row) (any, error) {
	id, _ := row.Cell("id")
	customer, _ := row.Cell("customer")
	item, _ := row.Cell("item")
	qty, _ := row.Cell("quantity")
	total, _ := row.Cell("total")
	return fmt.Sprintf("Order %s: %s x %s for %s, billed to %s",
		id.Value, qty.Value, item.Value, total.Value, customer.Value), nil
}
