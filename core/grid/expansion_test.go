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
	"errors"
	"testing"
)

func TestToggleExpandLoadsAndCaches(t *testing.T) {
	loads := 0
	g := New(Config{
		Expand: func(ctx context.Context, row Row) (any, error) {
			loads++
			return "detail for " + row.Cells[0].Value, nil
		},
	})
	g.SetRows(testRows(2))
	ctx := context.Background()

	if err := g.ToggleExpand(ctx, 0); err != nil {
		t.Fatal(err)
	}
	row := g.Rows()[0]
	if !row.Expand.Expanded || row.Expand.Loading {
		t.Fatalf("expand state = %+v, want expanded and settled", row.Expand)
	}
	if row.Expand.Content != "detail for a" {
		t.Errorf("content = %v", row.Expand.Content)
	}

	// Collapse and re-expand: the cached content must be reused.
	if err := g.ToggleExpand(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if g.Rows()[0].Expand.Expanded {
		t.Fatal("row still expanded after collapse toggle")
	}
	if err := g.ToggleExpand(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1 (cached)", loads)
	}
	if g.Rows()[0].Expand.Content != "detail for a" {
		t.Error("cached content lost on re-expand")
	}
}

func TestToggleExpandWithoutLoader(t *testing.T) {
	g := New(Config{})
	g.SetRows(testRows(1))

	if err := g.ToggleExpand(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if !g.Rows()[0].Expand.Expanded {
		t.Error("row not expanded")
	}
}

func TestToggleExpandFailureCollapses(t *testing.T) {
	boom := errors.New("detail fetch failed")
	g := New(Config{
		Expand: func(ctx context.Context, row Row) (any, error) {
			return nil, boom
		},
	})
	g.SetRows(testRows(1))

	err := g.ToggleExpand(context.Background(), 0)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	row := g.Rows()[0]
	if row.Expand.Expanded || row.Expand.Loading {
		t.Errorf("expand state = %+v, want collapsed and settled after failure", row.Expand)
	}
}

func TestToggleExpandWhileLoadingIgnored(t *testing.T) {
	g := New(Config{})
	rows := testRows(1)
	rows[0].Expand.Loading = true
	g.SetRows(rows)

	if err := g.ToggleExpand(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if g.Rows()[0].Expand.Expanded {
		t.Error("toggle applied to a row with a fetch in flight")
	}
}

func TestToggleExpandUnknownID(t *testing.T) {
	g := New(Config{})
	g.SetRows(testRows(1))

	if err := g.ToggleExpand(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if err := g.ToggleExpand(context.Background(), -1); err != nil {
		t.Fatal(err)
	}
}
