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
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"dirpx.dev/fieldref/apis"
	"dirpx.dev/fieldref/config"
	"dirpx.dev/fieldref/probe"
)

// Record is the shape of map records seen by accessors passed to Key.
type Record = probe.Record

// Name returns the name of the field of sample that accessor selects.
// sample only fixes the record type T; its value is never read or written.
//
//	name, err := fieldref.Name(user, func(u *User) *string { return &u.Email })
//	// name == "Email"
//
// accessor must return the address of exactly one top-level field of its
// argument. opts override the global configuration for this call only.
func Name[T, F any](sample T, accessor func(*T) *F, opts ...config.Option) (string, error) {
	return NameOf(accessor, opts...)
}

// NameOf is Name without a sample value.
func NameOf[T, F any](accessor func(*T) *F, opts ...config.Option) (string, error) {
	s := st.Load()
	cfg := config.Apply(s.cfg, opts...)

	t, f, err := fieldOf(s.reg, accessor)
	if err != nil {
		return "", err
	}
	if !f.Exported && !cfg.IncludeUnexported {
		return "", fmt.Errorf("%w: %s.%s", ErrUnexportedField, t, f.Name)
	}
	name := s.res.Name(t, f, cfg)
	if name == "" {
		return "", fmt.Errorf("%w: %s.%s", ErrUnnamedField, t, f.Name)
	}
	return name, nil
}

// MustName is like Name but panics on error.
func MustName[T, F any](sample T, accessor func(*T) *F, opts ...config.Option) string {
	name, err := NameOf(accessor, opts...)
	if err != nil {
		panic(err)
	}
	return name
}

// Alias registers name as the reported name of the field accessor selects,
// in the global registry.
func Alias[T, F any](accessor func(*T) *F, name string) error {
	reg := st.Load().reg
	t, f, err := fieldOf(reg, accessor)
	if err != nil {
		return err
	}
	return reg.Alias(t, f.Name, name)
}

// Key returns the key of sample that accessor reads.
//
//	name, err := fieldref.Key(row, func(r fieldref.Record) any { return r["email"] })
//	// name == "email"
//
// accessor must return the value it read unchanged. Only the keys of sample
// are inspected.
func Key[V any](sample map[string]V, accessor func(Record) any) (name string, err error) {
	if sample == nil {
		return "", ErrNilSample
	}
	if accessor == nil {
		return "", ErrNilAccessor
	}

	p := probe.New(sample)
	defer func() {
		if r := recover(); r != nil {
			name, err = "", fmt.Errorf("%w: accessor panicked: %v", ErrInvalidAccessor, r)
		}
	}()
	return probe.Resolve(p, accessor(p))
}

// MustKey is like Key but panics on error.
func MustKey[V any](sample map[string]V, accessor func(Record) any) string {
	name, err := Key(sample, accessor)
	if err != nil {
		panic(err)
	}
	return name
}

// fieldOf runs accessor against a fresh zero T and maps the returned address
// back to a top-level field of T through the layout held by reg.
func fieldOf[T, F any](reg apis.Registry, accessor func(*T) *F) (t reflect.Type, f apis.Field, err error) {
	t = reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, apis.Field{}, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}
	if accessor == nil {
		return nil, apis.Field{}, ErrNilAccessor
	}
	l, err := reg.Layout(t)
	if err != nil {
		return nil, apis.Field{}, err
	}

	p := new(T)
	defer func() {
		if r := recover(); r != nil {
			t, f, err = nil, apis.Field{}, fmt.Errorf("%w: accessor panicked: %v", ErrInvalidAccessor, r)
		}
	}()
	fp := accessor(p)
	if fp == nil {
		return nil, apis.Field{}, fmt.Errorf("%w: accessor returned nil", ErrInvalidAccessor)
	}

	base := reflect.ValueOf(p).Pointer()
	addr := reflect.ValueOf(fp).Pointer()
	runtime.KeepAlive(p)
	// Zero-size structs are the only ones whose fields may sit at offset == Size.
	off := addr - base
	if addr < base || off > l.Size || (off == l.Size && l.Size != 0) {
		return nil, apis.Field{}, fmt.Errorf("%w: returned pointer is outside %v", ErrInvalidAccessor, t)
	}

	ft := reflect.TypeFor[F]()
	matches := l.At(off, ft)
	switch len(matches) {
	case 0:
		return nil, apis.Field{}, fmt.Errorf("%w: no %v field of %v at offset %d", ErrFieldNotFound, ft, t, off)
	case 1:
		return t, matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, apis.Field{}, fmt.Errorf("%w: %v.{%s}", ErrAmbiguousField, t, strings.Join(names, ","))
	}
}
