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

package tui

import "github.com/charmbracelet/lipgloss"

// Dark mode optimized, semantic colors
var (
	accent  = lipgloss.Color("#7C3AED") // violet-500 - highlights, interactive
	info    = lipgloss.Color("#3B82F6") // blue-500 - headers
	success = lipgloss.Color("#10B981") // emerald-500 - selection markers
	errCol  = lipgloss.Color("#EF4444") // red-500 - errors
	muted   = lipgloss.Color("#6B7280") // gray-500 - secondary text

	bgHighlight = lipgloss.Color("#1F2937") // gray-800 - cursor row
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(info)
	activeColStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorStyle = lipgloss.NewStyle().Foreground(muted)
	cursorRowStyle = lipgloss.NewStyle().Background(bgHighlight)
	selectedStyle  = lipgloss.NewStyle().Foreground(success)
	detailStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(muted)
	errorStyle     = lipgloss.NewStyle().Foreground(errCol)
)
