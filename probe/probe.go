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

// Package probe builds throwaway map records whose values identify their own keys.
//
// Every key of a sample map is bound to a distinct Getter that returns that key.
// An accessor that reads one key of the probe therefore returns the Getter of
// that key, and calling it tells which key was read:
//
//	p := probe.New(map[string]int{"a": 1, "b": 2})
//	v := func(r probe.Record) any { return r["b"] }(p)
//	name, err := probe.Resolve(p, v) // "b", nil
package probe

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is returned when the accessor read a key the sample lacks.
	ErrMissingKey = errors.New("fieldref(probe): accessor read a missing key")
	// ErrNotGetter is returned when the accessor did not return a Getter of the probe.
	ErrNotGetter = errors.New("fieldref(probe): accessor did not return a probe value")
)

// Record is the shape map accessors read from.
type Record = map[string]any

// Getter reports the key it is bound to.
type Getter func() string

// New returns a Record with the keys of sample, each bound to its own Getter.
// sample is never written to.
func New[V any](sample map[string]V) Record {
	p := make(Record, len(sample))
	for k := range sample {
		p[k] = Getter(func() string { return k })
	}
	return p
}

// Resolve returns the key whose Getter v is. v must have been read from p.
func Resolve(p Record, v any) (string, error) {
	switch g := v.(type) {
	case nil:
		return "", ErrMissingKey
	case Getter:
		if g == nil {
			return "", ErrMissingKey
		}
		name := g()
		if _, ok := p[name]; !ok {
			return "", fmt.Errorf("%w: getter for %q belongs to another probe", ErrNotGetter, name)
		}
		return name, nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrNotGetter, v)
	}
}
