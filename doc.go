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

// Package fieldref turns a field selector into the name of the field it selects.
//
// Call sites that spell a field name as a string literal break silently when
// the field is renamed. fieldref lets them name the field through code instead,
// so rename refactors keep them correct:
//
//	type User struct {
//	    ID    int    `json:"id"`
//	    Email string `json:"email"`
//	}
//
//	fieldref.MustName(User{}, func(u *User) *string { return &u.Email })
//	// "Email"
//	fieldref.MustName(User{}, func(u *User) *string { return &u.Email }, config.WithTagKey("json"))
//	// "email"
//
// # How it works
//
// Struct records: the accessor receives a fresh zero value of the record type
// (the probe) and returns the address of the field it reads. Every top-level
// field of the probe starts at a distinct (offset, type) pair, so the
// returned address identifies the field through a reverse lookup over the
// struct layout. The caller's sample is only used for its type.
//
// Map records: the accessor receives a probe map with the same keys as the
// sample, where each key is bound to a probe.Getter that returns that key.
// The accessor picks one Getter; calling it reveals the key:
//
//	fieldref.MustKey(map[string]any{"propStr": "s", "propNum": 0},
//	    func(r fieldref.Record) any { return r["propNum"] })
//	// "propNum"
//
// # Naming
//
// Once a struct field is identified, a Resolver chain decides the reported name:
//
//  1. An alias registered in the Registry (Alias, Registry().Alias).
//  2. The struct tag under Config.TagKey, when one is configured.
//  3. The Go field name.
//
// With the default configuration and no aliases, the result is exactly the
// Go field name.
//
// # Global state
//
// Config, Registry, Resolver and Builder live in an immutable snapshot held
// by an atomic pointer. Lookups are lock-free; writers (SetConfig,
// SetRegistry, SetResolver, SetBuilder, SetAll) serialize on a mutex and
// publish a new snapshot. SetRegistry and SetResolver pin their layer so
// later reconfigurations leave it alone until UnpinRegistry/UnpinResolver.
//
// # Contract
//
// Accessors must perform a single direct read of a top-level field. Nested
// paths, index expressions and computed values are rejected with
// ErrFieldNotFound, ErrInvalidAccessor or ErrNotProbe; reading an absent map
// key yields ErrMissingField. Panics inside an accessor are recovered and
// reported as ErrInvalidAccessor. Nothing is retried and no call mutates
// its sample.
package fieldref
