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

// assignRowIDs returns a copy of rows with each row's ID set to its
// index. Every row replacement goes through here, so the id == index
// invariant holds regardless of what IDs the caller supplied.
func assignRowIDs(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].ID = i
	}
	return out
}

// assignColumnIDs returns a copy of cols with each column's ID set to
// its index.
func assignColumnIDs(cols []Column) []Column {
	out := make([]Column, len(cols))
	copy(out, cols)
	for i := range out {
		out[i].ID = i
	}
	return out
}
