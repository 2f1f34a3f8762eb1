// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package sources

import "errors"

var (
	// ErrNoCategories indicates a configuration with no categories.
	ErrNoCategories = errors.New("no categories configured")

	// ErrUnnamedCategory indicates a category without a name.
	ErrUnnamedCategory = errors.New("category has no name")

	// ErrDuplicateCategory indicates two categories sharing a name.
	ErrDuplicateCategory = errors.New("duplicate category name")

	// ErrNoSources indicates a category with no sources to fetch from.
	ErrNoSources = errors.New("no sources configured")

	// ErrEmptySource indicates a source that returned only whitespace.
	ErrEmptySource = errors.New("source returned empty text")

	// ErrBadStatus indicates a non-200 HTTP response.
	ErrBadStatus = errors.New("unexpected response status")

	// ErrAllSourcesFailed indicates every source in the list failed.
	ErrAllSourcesFailed = errors.New("all sources failed")

	// ErrNilHTTPClient indicates a nil client passed to WithHTTPClient.
	ErrNilHTTPClient = errors.New("http client must not be nil")

	// ErrInvalidTimeout indicates a non-positive timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")
)
