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


package dataset

import "errors"

var (
	// ErrConfigRequired indicates a nil source configuration.
	ErrConfigRequired = errors.New("config is required")

	// ErrFetcherRequired indicates a nil text fetcher.
	ErrFetcherRequired = errors.New("fetcher is required")

	// ErrRepositoryRequired indicates a nil snapshot repository.
	ErrRepositoryRequired = errors.New("snapshot repository is required")

	// ErrUnknownCategory indicates a category absent from the configuration.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidTTL indicates a non-positive snapshot TTL.
	ErrInvalidTTL = errors.New("ttl must be positive")

	// ErrNilClock indicates a nil clock function passed to WithClock.
	ErrNilClock = errors.New("clock must not be nil")
)
