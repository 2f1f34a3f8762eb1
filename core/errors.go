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


package core

import "errors"

var (
	// ErrInvalidRecord indicates that a record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrEmptyName indicates a record with no name.
	ErrEmptyName = errors.New("record name is empty")

	// ErrEmptyID indicates a record with no id.
	ErrEmptyID = errors.New("record id is empty")

	// ErrInvalidZip indicates a ZIP code outside the Chicago 60xxx form.
	ErrInvalidZip = errors.New("invalid zip code")

	// ErrInvalidDay indicates an hours key that is not a canonical day name.
	ErrInvalidDay = errors.New("invalid day name")

	// ErrInvalidTimeRange indicates an hours interval with out-of-range times.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidSnapshot indicates that a snapshot failed validation.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrEmptyCategory indicates a snapshot with no category name.
	ErrEmptyCategory = errors.New("category is empty")
)
