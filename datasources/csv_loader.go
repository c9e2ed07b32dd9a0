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
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/mosaicui/gridkit/core/grid"
)

// CSVOptions controls CSV parsing.
type CSVOptions struct {
	// HasHeader treats the first record as column names. Without a
	// header, columns are named col_0, col_1, and so on.
	HasHeader bool
	// Delimiter is the field separator. Zero means ','.
	Delimiter rune
}

// LoadCSV reads CSV data into a MemorySource plus the column slice
// derived from the header. All values are loaded as strings; every
// column is sortable, since MemorySource compares numerically when
// values parse as numbers.
func LoadCSV(r io.Reader, opts CSVOptions) (*MemorySource, []grid.Column, error) {
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter

	firstRow, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	var columnNames []string
	var rows []grid.Row
	if opts.HasHeader {
		columnNames = firstRow
	} else {
		for i := range firstRow {
			columnNames = append(columnNames, fmt.Sprintf("col_%d", i))
		}
		rows = append(rows, rowFromRecord(columnNames, firstRow))
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, rowFromRecord(columnNames, record))
	}

	cols := make([]grid.Column, len(columnNames))
	for i, name := range columnNames {
		cols[i] = grid.Column{Name: name, Sort: &grid.SortSpec{}}
	}

	return NewMemorySource(rows), cols, nil
}

// LoadCSVFile opens and loads a CSV file.
func LoadCSVFile(path string, opts CSVOptions) (*MemorySource, []grid.Column, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()
	return LoadCSV(file, opts)
}

func rowFromRecord(columnNames, record []string) grid.Row {
	cells := make([]grid.Cell, 0, len(record))
	for i, value := range record {
		if i >= len(columnNames) {
			break
		}
		cells = append(cells, grid.Cell{ColumnName: columnNames[i], Value: value})
	}
	return grid.Row{Cells: cells}
}
