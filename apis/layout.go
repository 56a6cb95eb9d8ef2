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

// Field describes a single top-level field of a struct type.
type Field struct {
	// Name is the Go field name as declared.
	Name string
	// Index is the position of the field in the struct declaration.
	Index int
	// Offset is the byte offset of the field within the struct.
	Offset uintptr
	// Type is the static type of the field.
	Type reflect.Type
	// Tag is the raw struct tag.
	Tag reflect.StructTag
	// Exported reports whether the field is exported.
	Exported bool
	// Embedded reports whether the field is an embedded field.
	Embedded bool
}

// Layout is the immutable top-level field table of a struct type.
// Fields are kept in declaration order.
type Layout struct {
	// Type is the struct type the layout was built from.
	Type reflect.Type
	// Size is the size of the struct in bytes.
	Size uintptr
	// Fields holds every top-level field, embedded ones included.
	Fields []Field
}

// At returns the fields that start at offset and have static type t.
// More than one result is possible only for zero-size fields.
func (l *Layout) At(offset uintptr, t reflect.Type) []Field {
	var out []Field
	for _, f := range l.Fields {
		if f.Offset == offset && f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// Field returns the field with the given Go name.
func (l *Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the Go names of all fields in declaration order.
func (l *Layout) Names() []string {
	out := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		out[i] = f.Name
	}
	return out
}
