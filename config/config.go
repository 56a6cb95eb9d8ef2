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

package config

import (
	"strings"

	"dirpx.dev/fieldref/apis"
)

const (
	// DefaultTagKey represents the default for TagKey.
	// Empty means the Go field name is reported.
	DefaultTagKey = ""
	// DefaultIncludeUnexported represents the default for IncludeUnexported.
	// When true, unexported fields can be resolved like exported ones.
	DefaultIncludeUnexported = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	return Apply(DefaultConfig(), opts...)
}

// Apply returns a copy of base with opts applied in order.
func Apply(base apis.Config, opts ...Option) apis.Config {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		TagKey:            DefaultTagKey,
		IncludeUnexported: DefaultIncludeUnexported,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithTagKey sets the TagKey option.
// Surrounding whitespace is trimmed; an empty key disables tag lookup.
func WithTagKey(key string) Option {
	return func(c *apis.Config) {
		c.TagKey = strings.TrimSpace(key)
	}
}

// WithIncludeUnexported sets the IncludeUnexported option.
func WithIncludeUnexported(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeUnexported = include
	}
}
