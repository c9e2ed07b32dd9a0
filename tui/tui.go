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

// Package tui is the terminal rendering adapter: an interactive grid
// viewer driving the headless grid with key bindings for paging,
// sorting, selection and row expansion.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mosaicui/gridkit/core/grid"
	"github.com/mosaicui/gridkit/core/views"
)

const (
	defaultColWidth = 20
	minColWidth     = 3
)

// gridModel is the bubbletea model wrapping one grid.
type gridModel struct {
	title     string
	itemLabel string
	g         *grid.Grid

	cursor    int // row cursor within the current page
	colCursor int // column cursor (visible columns)

	// vm is the rendered snapshot of the grid, refreshed after every
	// grid mutation. View reads only the snapshot, never the grid, so
	// a command goroutine can run a grid operation while the event
	// loop keeps rendering.
	vm       views.GridViewModel
	selected int

	// busy is set while a grid operation runs in a command goroutine.
	// The model never touches the grid while busy, so the grid stays
	// single-driver even though bubbletea runs commands concurrently.
	busy bool
	spin spinner.Model

	status string
	width  int
	height int
	ready  bool
}

type gridKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Sort      key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Expand    key.Binding
	Quit      key.Binding
}

var gridKeys = gridKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next column")),
	PrevPage:  key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup", "prev page")),
	NextPage:  key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn", "next page")),
	FirstPage: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
	LastPage:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
	Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
	Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
	SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	Expand:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand row")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// Run launches the interactive grid viewer. The grid must already be
// wired with its data source and hold its first page of rows. Run
// blocks until the user quits.
func Run(title, itemLabel string, g *grid.Grid) error {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = mutedStyle

	m := gridModel{
		title:     title,
		itemLabel: itemLabel,
		g:         g,
		spin:      sp,
	}
	m.refresh()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// opDoneMsg reports a finished grid operation.
type opDoneMsg struct {
	err error
}

// runOp executes one grid operation off the update loop.
func runOp(op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: op(context.Background())}
	}
}

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case opDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = ""
		}
		m.refresh()
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, gridKeys.Quit) {
			return m, tea.Quit
		}
		if m.busy {
			// Only quit is honored while an operation is in flight.
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m gridModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vm := m.vm

	switch {
	case key.Matches(msg, gridKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, gridKeys.Down):
		if m.cursor < len(vm.Rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, gridKeys.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}

	case key.Matches(msg, gridKeys.Right):
		if m.colCursor < len(vm.Headers)-1 {
			m.colCursor++
		}

	case key.Matches(msg, gridKeys.PrevPage):
		return m.startOp(m.g.PreviousPage)

	case key.Matches(msg, gridKeys.NextPage):
		return m.startOp(m.g.NextPage)

	case key.Matches(msg, gridKeys.FirstPage):
		return m.startOp(m.g.FirstPage)

	case key.Matches(msg, gridKeys.LastPage):
		return m.startOp(m.g.LastPage)

	case key.Matches(msg, gridKeys.Sort):
		if m.colCursor < len(vm.Headers) {
			name := vm.Headers[m.colCursor].Name
			return m.startOp(func(ctx context.Context) error {
				return m.g.ToggleSort(ctx, name)
			})
		}

	case key.Matches(msg, gridKeys.Select):
		if m.cursor < len(vm.Rows) {
			m.g.ToggleRow(vm.Rows[m.cursor].ID)
			m.refresh()
		}

	case key.Matches(msg, gridKeys.SelectAll):
		m.g.SelectAll(!m.g.AllSelected())
		m.refresh()

	case key.Matches(msg, gridKeys.Expand):
		if m.cursor < len(vm.Rows) {
			id := vm.Rows[m.cursor].ID
			return m.startOp(func(ctx context.Context) error {
				return m.g.ToggleExpand(ctx, id)
			})
		}
	}

	return m, nil
}

// startOp kicks off a grid operation and the spinner that accompanies
// it.
func (m gridModel) startOp(op func(context.Context) error) (tea.Model, tea.Cmd) {
	m.busy = true
	m.status = ""
	return m, tea.Batch(m.spin.Tick, runOp(op))
}

func (m *gridModel) clampCursor() {
	rows := len(m.vm.Rows)
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refresh re-derives the rendered snapshot from the grid. Called only
// from the update loop, never while an operation is in flight.
func (m *gridModel) refresh() {
	m.vm = views.BuildViewModel(m.g, nil, m.title, m.itemLabel)
	m.selected = len(m.g.SelectedRows())
}

func (m gridModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	vm := m.vm
	widths := columnWidths(vm)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	if m.busy {
		sb.WriteString("  " + m.spin.View())
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.renderHeader(vm, widths))
	sb.WriteString("\n")
	sb.WriteString(m.renderSeparator(vm, widths))
	sb.WriteString("\n")

	for i, row := range vm.Rows {
		sb.WriteString(m.renderRow(vm, row, widths, i == m.cursor))
		sb.WriteString("\n")
		if row.Expanded {
			detail := row.Detail
			if row.ExpandLoading {
				detail = "loading..."
			}
			sb.WriteString("    " + detailStyle.Render(detail))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderFooter(vm))
	return sb.String()
}

func (m gridModel) renderHeader(vm views.GridViewModel, widths []int) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i, h := range vm.Headers {
		label := h.DisplayName
		if h.SortActive {
			switch h.SortOrder {
			case grid.Ascending:
				label += " ↑"
			case grid.Descending:
				label += " ↓"
			}
		}
		cell := padOrTruncate(label, widths[i])
		if i == m.colCursor {
			sb.WriteString(activeColStyle.Render(cell))
		} else {
			sb.WriteString(headerStyle.Render(cell))
		}
		sb.WriteString("  ")
	}
	return sb.String()
}

func (m gridModel) renderSeparator(vm views.GridViewModel, widths []int) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := range vm.Headers {
		sep := strings.Repeat("─", widths[i])
		if i == m.colCursor {
			sb.WriteString(activeColStyle.Render(sep))
		} else {
			sb.WriteString(separatorStyle.Render(sep))
		}
		sb.WriteString("  ")
	}
	return sb.String()
}

func (m gridModel) renderRow(vm views.GridViewModel, row views.RowView, widths []int, isCursor bool) string {
	var sb strings.Builder
	if row.Selected {
		sb.WriteString(selectedStyle.Render("✓") + " ")
	} else {
		sb.WriteString("  ")
	}
	for i := range vm.Headers {
		var val string
		if i < len(row.Cells) {
			val = row.Cells[i].Value
		}
		cell := padOrTruncate(val, widths[i])
		if isCursor {
			sb.WriteString(cursorRowStyle.Render(cell))
		} else {
			sb.WriteString(cell)
		}
		sb.WriteString("  ")
	}
	return sb.String()
}

func (m gridModel) renderFooter(vm views.GridViewModel) string {
	var sb strings.Builder
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("%s  page %d/%d",
		vm.Footer.RangeLabel, vm.Footer.Page, vm.Footer.TotalPages)))
	if m.selected > 0 {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %d selected", m.selected)))
	}
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(errorStyle.Render(m.status))
	} else {
		sb.WriteString(mutedStyle.Render("↑↓←→ nav  pgup/pgdn page  s sort  space select  a all  enter expand  q quit"))
	}
	return sb.String()
}

// columnWidths computes display widths from header and cell content,
// capped at defaultColWidth. The grid's pixel widths mean nothing in
// a terminal.
func columnWidths(vm views.GridViewModel) []int {
	widths := make([]int, len(vm.Headers))
	for i, h := range vm.Headers {
		w := len(h.DisplayName) + 2 // room for the sort arrow
		if w < minColWidth {
			w = minColWidth
		}
		widths[i] = w
	}
	for _, row := range vm.Rows {
		for i := range widths {
			if i < len(row.Cells) && len(row.Cells[i].Value) > widths[i] {
				widths[i] = len(row.Cells[i].Value)
			}
		}
	}
	for i := range widths {
		if widths[i] > defaultColWidth {
			widths[i] = defaultColWidth
		}
	}
	return widths
}

// padOrTruncate pads or truncates to exact width.
func padOrTruncate(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width > 3 {
			return string(r[:width-3]) + "..."
		}
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
