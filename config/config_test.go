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

package config_test

import (
	"testing"

	"dirpx.dev/fieldref/apis"
	"dirpx.dev/fieldref/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.TagKey != config.DefaultTagKey {
		t.Fatalf("TagKey = %q, want %q", got.TagKey, config.DefaultTagKey)
	}
	if got.IncludeUnexported != config.DefaultIncludeUnexported {
		t.Fatalf("IncludeUnexported = %v, want %v", got.IncludeUnexported, config.DefaultIncludeUnexported)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithTagKey(t *testing.T) {
	c := config.NewConfig(config.WithTagKey("json"))
	if c.TagKey != "json" {
		t.Fatalf("TagKey = %q, want json", c.TagKey)
	}

	c2 := config.NewConfig(config.WithTagKey("  db "))
	if c2.TagKey != "db" {
		t.Fatalf("TagKey = %q, want db (trimmed)", c2.TagKey)
	}

	c3 := config.NewConfig(config.WithTagKey(""))
	if c3.TagKey != "" {
		t.Fatalf("TagKey = %q, want empty", c3.TagKey)
	}
}

func TestWithIncludeUnexported(t *testing.T) {
	c := config.NewConfig(config.WithIncludeUnexported(false))
	if c.IncludeUnexported {
		t.Fatalf("IncludeUnexported = %v, want false", c.IncludeUnexported)
	}

	c2 := config.NewConfig(config.WithIncludeUnexported(true))
	if !c2.IncludeUnexported {
		t.Fatalf("IncludeUnexported = %v, want true", c2.IncludeUnexported)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithTagKey("json"),
		config.WithTagKey("yaml"),
		config.WithIncludeUnexported(false),
		config.WithIncludeUnexported(true),
	)

	if c.TagKey != "yaml" {
		t.Errorf("TagKey = %q, want yaml (last option wins)", c.TagKey)
	}
	if !c.IncludeUnexported {
		t.Errorf("IncludeUnexported = %v, want true (last option wins)", c.IncludeUnexported)
	}
}

func TestApply_KeepsBaseAndSkipsNil(t *testing.T) {
	base := apis.Config{TagKey: "db", IncludeUnexported: false}
	got := config.Apply(base, nil, config.WithIncludeUnexported(true))

	if got.TagKey != "db" {
		t.Fatalf("TagKey = %q, want db (from base)", got.TagKey)
	}
	if !got.IncludeUnexported {
		t.Fatalf("IncludeUnexported = %v, want true", got.IncludeUnexported)
	}
	if base.IncludeUnexported {
		t.Fatalf("base was mutated: %+v", base)
	}
}
