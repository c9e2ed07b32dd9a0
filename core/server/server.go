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

// Package server serves registered grids over HTTP. The whole grid
// state lives in the request URL, so every request rebuilds the grid
// from its catalog and source, applies the URL's sort and page, and
// renders the result.
package server

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/mosaicui/gridkit/catalog"
	"github.com/mosaicui/gridkit/core/grid"
	"github.com/mosaicui/gridkit/core/query"
	"github.com/mosaicui/gridkit/core/rendering"
	"github.com/mosaicui/gridkit/core/views"
	"github.com/mosaicui/gridkit/datasources"
)

// gridEntry is one registered grid.
type gridEntry struct {
	catalog *catalog.Catalog
	source  *datasources.MemorySource
}

// Server holds the registered grids and the renderer.
type Server struct {
	renderer *rendering.GridRenderer
	grids    map[string]*gridEntry
	order    []string
	title    string
}

// NewServer creates a server with no grids registered.
func NewServer(title string) (*Server, error) {
	renderer, err := rendering.NewGridRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return &Server{
		renderer: renderer,
		grids:    make(map[string]*gridEntry),
		title:    title,
	}, nil
}

// Register adds a grid under the given name. Registering the same
// name twice replaces the earlier entry.
func (s *Server) Register(name string, cat *catalog.Catalog, src *datasources.MemorySource) {
	if _, exists := s.grids[name]; !exists {
		s.order = append(s.order, name)
	}
	s.grids[name] = &gridEntry{catalog: cat, source: src}
}

// GridHandlerResult represents the result of handling a grid request
type GridHandlerResult struct {
	Error      error
	StatusCode int
	Message    string

	// Elapsed is the total handling time, for access logging.
	Elapsed time.Duration
}

// HandleGridRequest processes a grid request and writes the response.
// A nil result means success.
func (s *Server) HandleGridRequest(ctx context.Context, w io.Writer, requestURL *url.URL) *GridHandlerResult {
	start := time.Now()

	q := query.NewQuery(requestURL, 0)
	if q.Grid == "" {
		return &GridHandlerResult{StatusCode: 400, Message: "grid parameter is required"}
	}
	entry, ok := s.grids[q.Grid]
	if !ok {
		return &GridHandlerResult{StatusCode: 404, Message: fmt.Sprintf("grid '%s' not found", q.Grid)}
	}
	if requestURL.Query().Get("size") == "" {
		q.Size = entry.catalog.PageSize()
	}

	g, err := s.buildGrid(ctx, entry, q)
	if err != nil {
		return &GridHandlerResult{StatusCode: 500, Error: err, Message: "failed to load grid data"}
	}

	vm := views.BuildViewModel(g, q, entry.catalog.Title, entry.catalog.ItemLabel)
	if err := s.renderer.Render(w, vm); err != nil {
		return &GridHandlerResult{StatusCode: 500, Error: err, Message: "failed to render grid"}
	}
	return &GridHandlerResult{StatusCode: 200, Elapsed: time.Since(start)}
}

// buildGrid reconstructs grid state from the parsed URL.
func (s *Server) buildGrid(ctx context.Context, entry *gridEntry, q *query.Query) (*grid.Grid, error) {
	src := entry.source
	g := grid.New(grid.Config{
		Selection:     entry.catalog.SelectionType(),
		PageSize:      q.Size,
		PageSizes:     entry.catalog.Paging.PageSizes,
		CompactFooter: entry.catalog.Paging.Compact,
		Page:          src.FetchPage,
		Sort:          src.SortRows,
		Expand:        src.Detail,
	})

	cols := entry.catalog.GridColumns()
	if q.SortColumn != "" {
		for i := range cols {
			if cols[i].Name == q.SortColumn && cols[i].Sort != nil {
				cols[i].Sort = &grid.SortSpec{Order: q.SortOrder, Active: true}
			}
		}
		if _, err := src.SortRows(ctx, nil, q.SortOrder, q.SortColumn); err != nil {
			return nil, err
		}
	}
	g.SetColumns(cols)
	g.SetTotalItems(src.TotalItems())

	rows, err := src.FetchPage(ctx, 1, q.Size)
	if err != nil {
		return nil, err
	}
	g.SetRows(rows)
	if q.Page > 1 {
		if err := g.GoToPage(ctx, q.Page); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// HandleLandingRequest renders the list of registered grids.
func (s *Server) HandleLandingRequest(w io.Writer, gridPath string) *GridHandlerResult {
	vm := views.LandingViewModel{Title: s.title}
	for _, name := range s.order {
		entry := s.grids[name]
		q := &query.Query{
			Path: gridPath,
			Grid: name,
			Page: 1,
			Size: entry.catalog.PageSize(),
		}
		title := entry.catalog.Title
		if title == "" {
			title = name
		}
		vm.Grids = append(vm.Grids, views.GridLink{
			Name:  name,
			Title: title,
			URL:   q.ToSafeURL(),
		})
	}
	if err := s.renderer.RenderLanding(w, vm); err != nil {
		return &GridHandlerResult{StatusCode: 500, Error: err, Message: "failed to render landing page"}
	}
	return &GridHandlerResult{StatusCode: 200}
}
