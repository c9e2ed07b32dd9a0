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

// ToggleSort advances the named column's sort order along the cycle
// None -> Ascending -> Descending -> Ascending, deactivates every
// other column's sort and replaces the grid's rows with the sort
// func's result. On failure neither columns nor rows change. Toggling
// an unknown or unsortable column is a no-op, as is toggling without a
// sort func configured: no state changes and no loading indicator is
// shown.
func (g *Grid) ToggleSort(ctx context.Context, columnName string) error {
	col, ok := g.ColumnByName(columnName)
	if !ok || col.Sort == nil || g.sortFn == nil {
		return nil
	}
	if g.busy {
		return ErrBusy
	}
	next := col.Sort.Order.Next()
	cols := setSort(deactivateSortExcept(g.columns, columnName), columnName, next)
	g.busy = true
	g.loading = true
	rows, err := g.sortFn(ctx, g.Rows(), next, columnName)
	g.loading = false
	g.busy = false
	if err != nil {
		return fmt.Errorf("sort by %s: %w", columnName, err)
	}
	g.columns = cols
	g.rows = assignRowIDs(rows)
	return nil
}

// ActiveSort returns the column currently holding an active sort.
func (g *Grid) ActiveSort() (Column, bool) {
	for _, c := range g.columns {
		if c.Sort != nil && c.Sort.Active && c.Sort.Order != None {
			return c, true
		}
	}
	return Column{}, false
}
