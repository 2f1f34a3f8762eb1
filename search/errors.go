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


package search

import "errors"

var (
	// ErrNilClock indicates a nil clock was passed to WithClock.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrNilLocation indicates a nil location was passed to WithLocation.
	ErrNilLocation = errors.New("location must not be nil")

	// ErrInvalidThreshold indicates a score threshold outside [0, 1).
	ErrInvalidThreshold = errors.New("threshold must be in [0, 1)")

	// ErrInvalidFuzzyWeight indicates a fuzzy weight outside [0.60, 0.70].
	ErrInvalidFuzzyWeight = errors.New("fuzzy weight must be in [0.60, 0.70]")
)
