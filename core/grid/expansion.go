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

// ToggleExpand expands or collapses the row with the given id. The
// first expansion of a row invokes the expand func and caches its
// content; later expansions reuse the cache. A toggle on a row whose
// content fetch is in flight is ignored, as is an unknown id. On
// loader failure the row stays collapsed and the error is returned.
func (g *Grid) ToggleExpand(ctx context.Context, id int) error {
	if id < 0 || id >= len(g.rows) {
		return nil
	}
	row := g.rows[id]
	if row.Expand.Loading {
		return nil
	}
	if row.Expand.Expanded {
		g.updateRow(id, func(r *Row) { r.Expand.Expanded = false })
		return nil
	}
	if g.expandFn == nil || row.Expand.Content != nil {
		g.updateRow(id, func(r *Row) { r.Expand.Expanded = true })
		return nil
	}
	g.updateRow(id, func(r *Row) {
		r.Expand.Expanded = true
		r.Expand.Loading = true
	})
	content, err := g.expandFn(ctx, row)
	if err != nil {
		g.updateRow(id, func(r *Row) {
			r.Expand.Expanded = false
			r.Expand.Loading = false
		})
		return fmt.Errorf("expand row %d: %w", id, err)
	}
	g.updateRow(id, func(r *Row) {
		r.Expand.Content = content
		r.Expand.Loading = false
	})
	return nil
}

// updateRow applies fn to the row at index id on a fresh copy of the
// row slice.
func (g *Grid) updateRow(id int, fn func(*Row)) {
	out := make([]Row, len(g.rows))
	copy(out, g.rows)
	fn(&out[id])
	g.rows = out
}
