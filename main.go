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

// The gridkit demo binary. Serves the sample orders grid over HTTP,
// or runs it in the terminal with -tui. Point -csv (and optionally
// -catalog) at your own data to browse that instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/mosaicui/gridkit/catalog"
	"github.com/mosaicui/gridkit/core/grid"
	"github.com/mosaicui/gridkit/core/server"
	"github.com/mosaicui/gridkit/datasources"
	"github.com/mosaicui/gridkit/demo"
	"github.com/mosaicui/gridkit/tui"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8097", "HTTP listen address")
	useTUI := flag.Bool("tui", false, "run the terminal viewer instead of the HTTP server")
	csvPath := flag.String("csv", "", "browse a CSV file instead of the demo data")
	catalogPath := flag.String("catalog", "", "grid catalog (TOML) for the CSV file")
	flag.Parse()

	name := "orders"
	cat, src, err := loadData(*csvPath, *catalogPath)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	if *csvPath != "" {
		name = "csv"
	}

	if *useTUI {
		if err := runTUI(cat, src); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		return
	}

	srv, err := server.NewServer("Gridkit Demo")
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	srv.Register(name, cat, src)

	http.HandleFunc("/grid", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		res := srv.HandleGridRequest(r.Context(), w, r.URL)
		if res.StatusCode != http.StatusOK {
			if res.Error != nil {
				log.Printf("Grid request error: %v", res.Error)
			}
			http.Error(w, res.Message, res.StatusCode)
			return
		}
		log.Printf("%s %s (%s)", r.Method, r.URL, res.Elapsed)
	})

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if res := srv.HandleLandingRequest(w, "/grid"); res.StatusCode != http.StatusOK {
			if res.Error != nil {
				log.Printf("Landing request error: %v", res.Error)
			}
			http.Error(w, res.Message, res.StatusCode)
		}
	})

	fmt.Printf("Serving grids on http://%s/\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// loadData returns the demo dataset, or the CSV the flags point at.
func loadData(csvPath, catalogPath string) (*catalog.Catalog, *datasources.MemorySource, error) {
	if csvPath == "" {
		return demo.Orders()
	}

	src, cols, err := datasources.LoadCSVFile(csvPath, datasources.CSVOptions{HasHeader: true})
	if err != nil {
		return nil, nil, err
	}

	if catalogPath != "" {
		cat, err := catalog.LoadFile(catalogPath)
		if err != nil {
			return nil, nil, err
		}
		return cat, src, nil
	}

	// No catalog: derive one from the CSV header.
	cat := &catalog.Catalog{Title: csvPath, Selection: "multi"}
	for _, c := range cols {
		cat.Columns = append(cat.Columns, catalog.Column{Name: c.Name, Sortable: true})
	}
	return cat, src, nil
}

// runTUI wires a grid to the source and hands it to the terminal
// viewer.
func runTUI(cat *catalog.Catalog, src *datasources.MemorySource) error {
	g := grid.New(grid.Config{
		Selection:     cat.SelectionType(),
		PageSize:      cat.PageSize(),
		PageSizes:     cat.Paging.PageSizes,
		CompactFooter: cat.Paging.Compact,
		Page:          src.FetchPage,
		Sort:          src.SortRows,
		Expand:        src.Detail,
	})
	g.SetColumns(cat.GridColumns())
	g.SetTotalItems(src.TotalItems())

	rows, err := src.FetchPage(context.Background(), 1, cat.PageSize())
	if err != nil {
		return err
	}
	g.SetRows(rows)

	return tui.Run(cat.Title, cat.ItemLabel, g)
}
