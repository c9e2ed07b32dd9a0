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

// toggleRowSelection flips the selection of the row at index id under
// the given selection mode and returns the new row slice. Under
// SelectionSingle, selecting a row deselects every other row. Rows
// with SelectionDisabled set, and ids out of range, leave the slice
// unchanged.
func toggleRowSelection(rows []Row, id int, mode SelectionType) []Row {
	if mode == SelectionNone || id < 0 || id >= len(rows) || rows[id].SelectionDisabled {
		return rows
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	if mode == SelectionSingle && !out[id].Selected {
		for i := range out {
			out[i].Selected = false
		}
	}
	out[id].Selected = !out[id].Selected
	return out
}

// setAllSelected sets the selection of every eligible row and returns
// the new row slice. Rows with SelectionDisabled set keep whatever
// state they had.
func setAllSelected(rows []Row, selected bool) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].SelectionDisabled {
			continue
		}
		out[i].Selected = selected
	}
	return out
}

// allSelected reports whether every selection-eligible row is
// selected. It is false when no row is eligible, so an all-disabled
// page never presents as fully selected.
func allSelected(rows []Row) bool {
	eligible := 0
	for _, r := range rows {
		if r.SelectionDisabled {
			continue
		}
		eligible++
		if !r.Selected {
			return false
		}
	}
	return eligible > 0
}

// selectedRows returns the rows currently selected, in grid order.
func selectedRows(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if r.Selected {
			out = append(out, r)
		}
	}
	return out
}
