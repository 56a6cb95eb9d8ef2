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

package reflect

import (
	"errors"
	"reflect"
	"strings"
)

// MaxUnwrap limits how many pointer layers Struct will peel off.
const MaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotStruct indicates that the provided type (after unwrapping
	// pointers) is not a struct.
	ErrReflectNotStruct = errors.New("reflect: type is not a struct")
)

// Struct unwraps pointer layers of t and returns the struct type underneath,
// or an error if t does not lead to a struct within MaxUnwrap steps.
//
//	Struct(T)   -> T
//	Struct(*T)  -> T
//	Struct(**T) -> T
//	Struct(int) -> ErrReflectNotStruct
func Struct(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Pointer && i < MaxUnwrap; i++ {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrReflectNotStruct
	}
	return t, nil
}

// TagName returns the first comma-separated segment of the struct tag value
// stored under key. It reports false when the key is empty, the tag is
// absent, the segment is empty, or the segment is "-".
//
//	`json:"id,omitempty"` with key "json" -> ("id", true)
//	`json:",omitempty"`   with key "json" -> ("", false)
//	`json:"-"`            with key "json" -> ("", false)
func TagName(tag reflect.StructTag, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	v, ok := tag.Lookup(key)
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "-" {
		return "", false
	}
	return v, true
}
