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
	"fmt"
	"strconv"
	"strings"
)

// Pagination holds the grid's page window. Page is 1-based. FirstItem
// and LastItem are 1-based item positions within the whole dataset;
// with zero items both are 0. TotalPages is never below 1, so an empty
// grid still reads as "page 1 of 1".
type Pagination struct {
	Page       int
	Size       int
	TotalItems int
	TotalPages int
	FirstItem  int
	LastItem   int

	// SizeOptions lists the page sizes the footer selector offers.
	// Empty means no selector.
	SizeOptions []int

	// Compact restricts the footer to page counts, without the size
	// selector.
	Compact bool
}

// normalized derives TotalPages, FirstItem and LastItem from Page,
// Size and TotalItems, clamping Page into [1, TotalPages] first.
func (p Pagination) normalized() Pagination {
	if p.Size < 1 {
		p.Size = 1
	}
	if p.TotalItems < 0 {
		p.TotalItems = 0
	}
	p.TotalPages = (p.TotalItems + p.Size - 1) / p.Size
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > p.TotalPages {
		p.Page = p.TotalPages
	}
	if p.TotalItems == 0 {
		p.FirstItem = 0
		p.LastItem = 0
		return p
	}
	p.FirstItem = (p.Page-1)*p.Size + 1
	p.LastItem = p.FirstItem + p.Size - 1
	if p.LastItem > p.TotalItems {
		p.LastItem = p.TotalItems
	}
	return p
}

// withPage returns the pagination moved to the given page, clamped.
func (p Pagination) withPage(page int) Pagination {
	p.Page = page
	return p.normalized()
}

// withSize returns the pagination with a new page size, keeping the
// current page clamped to the new page count.
func (p Pagination) withSize(size int) Pagination {
	p.Size = size
	return p.normalized()
}

// withTotalItems returns the pagination with a new dataset size. The
// current page is clamped if it now lies past the end.
func (p Pagination) withTotalItems(total int) Pagination {
	p.TotalItems = total
	return p.normalized()
}

// ParsePageInput parses free-form page input, as typed into a "go to
// page" field. The value is clamped to [1, totalPages]; input that is
// not a number is rejected.
func ParsePageInput(input string, totalPages int) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid page %q: %w", input, err)
	}
	if page < 1 {
		page = 1
	}
	if totalPages >= 1 && page > totalPages {
		page = totalPages
	}
	return page, nil
}
