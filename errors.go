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

package fieldref

import (
	"errors"

	"dirpx.dev/fieldref/probe"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("fieldref: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("fieldref: builder returned nil resolver")

	// ErrNilAccessor is returned when the accessor is nil.
	ErrNilAccessor = errors.New("fieldref: nil accessor")
	// ErrNilSample is returned when a map record is nil.
	ErrNilSample = errors.New("fieldref: nil sample")
	// ErrNotStruct is returned when a struct accessor is used on a non-struct type.
	ErrNotStruct = errors.New("fieldref: record type is not a struct")
	// ErrInvalidAccessor is returned when the accessor panics, returns nil,
	// or returns a pointer that does not point into the record.
	ErrInvalidAccessor = errors.New("fieldref: accessor is not a single field read")
	// ErrFieldNotFound is returned when the pointer returned by the accessor
	// is inside the record but is not a top-level field of the returned type.
	ErrFieldNotFound = errors.New("fieldref: accessor did not select a top-level field")
	// ErrAmbiguousField is returned when several zero-size fields share the
	// selected address and type.
	ErrAmbiguousField = errors.New("fieldref: selected address matches several fields")
	// ErrUnexportedField is returned when an unexported field is selected and
	// Config.IncludeUnexported is false.
	ErrUnexportedField = errors.New("fieldref: unexported field")
	// ErrUnnamedField is returned when the resolver chain produced no name.
	ErrUnnamedField = errors.New("fieldref: resolver produced no name")

	// ErrMissingField is returned when a map accessor reads a key the sample lacks.
	ErrMissingField = probe.ErrMissingKey
	// ErrNotProbe is returned when a map accessor returns anything other than
	// the value it read from the probe.
	ErrNotProbe = probe.ErrNotGetter
)
