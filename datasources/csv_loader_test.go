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

package datasources

import (
	"context"
	"strings"
	"testing"
)

func TestLoadCSVWithHeader(t *testing.T) {
	data := "name,city,age\nalice,oslo,34\nbob,ghent,28\n"

	src, cols, err := LoadCSV(strings.NewReader(data), CSVOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 3 || cols[0].Name != "name" || cols[2].Name != "age" {
		t.Fatalf("columns = %v", cols)
	}
	for _, c := range cols {
		if c.Sort == nil {
			t.Errorf("column %q not sortable", c.Name)
		}
	}
	if src.TotalItems() != 2 {
		t.Fatalf("TotalItems = %d, want 2", src.TotalItems())
	}

	rows, err := src.FetchPage(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	city, ok := rows[1].Cell("city")
	if !ok || city.Value != "ghent" {
		t.Errorf("row 1 city = %q %v", city.Value, ok)
	}
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	data := "alice;oslo\nbob;ghent\n"

	src, cols, err := LoadCSV(strings.NewReader(data), CSVOptions{Delimiter: ';'})
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 2 || cols[0].Name != "col_0" {
		t.Fatalf("columns = %v", cols)
	}
	if src.TotalItems() != 2 {
		t.Errorf("TotalItems = %d, want 2 (first record is data)", src.TotalItems())
	}
}

func TestLoadCSVEmptyInput(t *testing.T) {
	if _, _, err := LoadCSV(strings.NewReader(""), CSVOptions{HasHeader: true}); err == nil {
		t.Fatal("empty input accepted")
	}
}
