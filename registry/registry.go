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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/fieldref/apis"
	uref "dirpx.dev/fieldref/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("fieldref(registry): nil reflect.Type provided")
	// ErrNotStruct is returned when a type does not lead to a struct.
	ErrNotStruct = errors.New("fieldref(registry): type is not a struct")
	// ErrEmptyName is returned when an empty alias is provided.
	ErrEmptyName = errors.New("fieldref(registry): empty name provided")
	// ErrUnknownField is returned when aliasing a field the struct does not declare.
	ErrUnknownField = errors.New("fieldref(registry): unknown field")
	// ErrConflictingAlias indicates an attempt to re-alias
	// a field with a different name.
	ErrConflictingAlias = errors.New("fieldref(registry): conflicting field alias")
)

// New constructs a Registry with empty layout cache and no aliases.
func New() apis.Registry {
	return &registry{}
}

// aliasKey identifies a single field of a struct type.
type aliasKey struct {
	t     reflect.Type
	field string
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// layouts memoizes struct layouts.
	layouts sync.Map // map[reflect.Type]*apis.Layout
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// aliases maps aliasKey to registered name.
	aliases sync.Map // map[aliasKey]string
	// count tracks the number of registered aliases.
	count int
}

// Layout returns the memoized field table of the struct type behind t.
func (r *registry) Layout(t reflect.Type) (*apis.Layout, error) {
	st, err := structOf(t)
	if err != nil {
		return nil, err
	}
	if l, ok := r.layouts.Load(st); ok {
		return l.(*apis.Layout), nil
	}
	l, _ := r.layouts.LoadOrStore(st, build(st))
	return l.(*apis.Layout), nil
}

// Alias associates field of struct type t with the given name.
// It is idempotent for the same (type,field,name) triple.
func (r *registry) Alias(t reflect.Type, field, name string) error {
	// Validate inputs early.
	if name == "" {
		return ErrEmptyName
	}
	l, err := r.Layout(t)
	if err != nil {
		return err
	}
	if _, ok := l.Field(field); !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, l.Type, field)
	}
	key := aliasKey{t: l.Type, field: field}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.aliases.Load(key); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingAlias
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.aliases.Load(key); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingAlias
	}

	r.aliases.Store(key, name)
	r.count++
	return nil
}

// Lookup returns the alias registered for field of t, if present.
func (r *registry) Lookup(t reflect.Type, field string) (string, bool) {
	st, err := structOf(t)
	if err != nil {
		return "", false
	}
	if v, ok := r.aliases.Load(aliasKey{t: st, field: field}); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot of all aliases (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.aliases.Range(func(key, value any) bool {
		k := key.(aliasKey)
		entries = append(entries, apis.Entry{
			Type:  k.t,
			Field: k.field,
			Name:  value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered aliases.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all aliases and cached layouts.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases.Clear()
	r.layouts.Clear()
	r.count = 0
}

// structOf maps utils/reflect errors onto registry errors.
func structOf(t reflect.Type) (reflect.Type, error) {
	st, err := uref.Struct(t)
	switch {
	case errors.Is(err, uref.ErrReflectNilType):
		return nil, ErrNilType
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}
	return st, nil
}

// build computes the top-level field table of struct type st.
func build(st reflect.Type) *apis.Layout {
	n := st.NumField()
	l := &apis.Layout{
		Type:   st,
		Size:   st.Size(),
		Fields: make([]apis.Field, 0, n),
	}
	for i := 0; i < n; i++ {
		sf := st.Field(i)
		l.Fields = append(l.Fields, apis.Field{
			Name:     sf.Name,
			Index:    i,
			Offset:   sf.Offset,
			Type:     sf.Type,
			Tag:      sf.Tag,
			Exported: sf.IsExported(),
			Embedded: sf.Anonymous,
		})
	}
	return l
}
