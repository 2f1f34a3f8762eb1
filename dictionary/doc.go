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


// Package dictionary holds the pattern tables the parser and search engine
// share: service, language, badge, and subcategory classifiers, day name
// patterns, synonym groups, misspelling corrections, and the neighborhood
// to ZIP mapping. All tables are data; the only logic is the ordered
// first-match / all-matches routine on Dictionary.
package dictionary
