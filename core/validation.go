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

import (
	"fmt"
	"regexp"
)

var chicagoZipRE = regexp.MustCompile(`^60\d{3}$`)

// ValidateRecord checks the invariants every parsed record must hold:
// non-empty id and name, ZIP empty or of the Chicago 60xxx form, hours keyed
// by canonical day names with in-range times.
func ValidateRecord(r *Record) error {
	if r == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if r.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyID)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyName)
	}
	if r.ZipCode != "" && !chicagoZipRE.MatchString(r.ZipCode) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidRecord, ErrInvalidZip, r.ZipCode)
	}
	for day, ranges := range r.Hours {
		if !IsCanonicalDay(day) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidRecord, ErrInvalidDay, day)
		}
		for _, tr := range ranges {
			if !tr.Start.Valid() || !tr.End.Valid() {
				return fmt.Errorf("%w: %w: %s %+v", ErrInvalidRecord, ErrInvalidTimeRange, day, tr)
			}
		}
	}
	return nil
}

// ValidateSnapshot checks a snapshot and every record it carries.
func ValidateSnapshot(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrInvalidSnapshot)
	}
	if s.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrEmptyCategory)
	}
	for i, rec := range s.Records {
		if err := ValidateRecord(rec); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrInvalidSnapshot, i, err)
		}
	}
	return nil
}
