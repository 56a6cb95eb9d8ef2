/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Registry caches struct layouts and holds explicit, human-chosen names
// for individual fields. Implementations must be safe for concurrent use.
type Registry interface {
	// Layout returns the top-level field table of struct type t.
	// Implementations should memoize the result.
	Layout(t reflect.Type) (*Layout, error)
	// Alias associates the field named field of struct type t with a fixed name.
	// Implementations should be idempotent; conflicting re-registrations must fail.
	Alias(t reflect.Type, field, name string) error
	// Lookup returns the alias registered for a field, if present.
	Lookup(t reflect.Type, field string) (name string, ok bool)
	// Entries returns a snapshot of all aliases (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered aliases.
	Count() int
	// Reset clears all aliases and cached layouts.
	Reset()
}

// Entry is a single alias in a Registry snapshot.
type Entry struct {
	// Type is the struct type owning the field.
	Type reflect.Type
	// Field is the Go field name.
	Field string
	// Name is the associated alias.
	Name string
}
