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

// normalizeColumns fills in defaults for an incoming column slice:
// missing display names fall back to the column name, zero widths
// become DefaultColumnWidth, and declared sort specs are copied so the
// grid never aliases caller-owned state.
func normalizeColumns(cols []Column) []Column {
	out := make([]Column, len(cols))
	copy(out, cols)
	for i := range out {
		if out[i].DisplayName == "" {
			out[i].DisplayName = out[i].Name
		}
		if out[i].Width <= 0 {
			out[i].Width = DefaultColumnWidth
		}
		if out[i].Sort != nil {
			spec := *out[i].Sort
			out[i].Sort = &spec
		}
	}
	return assignColumnIDs(out)
}

// carryForwardSort merges sort state from a previous column slice into
// its replacement, keyed by column name. An incoming column that
// declares a sort spec inherits the previous same-named column's order
// and active flag; a column that declares none stays unsortable even
// if its predecessor was sortable. Names absent from the incoming
// slice simply drop out.
func carryForwardSort(prev, next []Column) []Column {
	if len(prev) == 0 {
		return next
	}
	prevByName := make(map[string]*SortSpec, len(prev))
	for i := range prev {
		prevByName[prev[i].Name] = prev[i].Sort
	}
	out := make([]Column, len(next))
	copy(out, next)
	for i := range out {
		if out[i].Sort == nil {
			continue
		}
		if old, ok := prevByName[out[i].Name]; ok && old != nil {
			spec := *old
			out[i].Sort = &spec
		}
	}
	return out
}

// deactivateSortExcept returns a copy of cols with every sortable
// column other than the named one marked inactive. Each column keeps
// its remembered order, so re-activating it later continues the cycle
// from where it left off. At most one column holds an active sort at
// any time.
func deactivateSortExcept(cols []Column, name string) []Column {
	out := make([]Column, len(cols))
	copy(out, cols)
	for i := range out {
		if out[i].Sort == nil || out[i].Name == name {
			continue
		}
		spec := *out[i].Sort
		spec.Active = false
		out[i].Sort = &spec
	}
	return out
}

// setSort returns a copy of cols with the named column's sort spec set
// to the given order and marked active.
func setSort(cols []Column, name string, order Order) []Column {
	out := make([]Column, len(cols))
	copy(out, cols)
	for i := range out {
		if out[i].Name != name || out[i].Sort == nil {
			continue
		}
		out[i].Sort = &SortSpec{Order: order, Active: true}
	}
	return out
}
