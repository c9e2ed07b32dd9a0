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

package views

import "github.com/google/safehtml"

// LandingViewModel lists the registered grids.
type LandingViewModel struct {
	Title string
	Grids []GridLink
}

// GridLink is one entry on the landing page.
type GridLink struct {
	Name  string
	Title string
	URL   safehtml.URL
}
