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

package builder

import (
	"dirpx.dev/fieldref/apis"
	"dirpx.dev/fieldref/registry"
	"dirpx.dev/fieldref/resolver"
	"dirpx.dev/fieldref/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its aliases are copied into the new registry.
// Layouts are not migrated; they are rebuilt lazily.
func (b *builder) BuildRegistry(_ apis.Config, preg apis.Registry) apis.Registry {
	nreg := registry.New()
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Alias(e.Type, e.Field, e.Name)
		}
	}
	return nreg
}

// BuildResolver builds the default naming chain over reg:
// alias, then struct tag, then Go field name.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewRegistryStrategy(reg),
		strategy.NewTagStrategy(),
		strategy.NewGoNameStrategy(),
	)
}
