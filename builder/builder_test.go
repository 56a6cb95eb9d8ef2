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

package builder_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/fieldref/apis"
	"dirpx.dev/fieldref/builder"
	"dirpx.dev/fieldref/config"
	"dirpx.dev/fieldref/registry"
)

// order has one field per naming path: aliased, tagged, and plain.
type order struct {
	Ref    string `json:"ref"`
	Amount int64  `json:"amount"`
	Note   string
}

// fieldOf returns the layout field name of order through reg.
func fieldOf(t *testing.T, reg apis.Registry, name string) apis.Field {
	t.Helper()
	l, err := reg.Layout(reflect.TypeOf(order{}))
	if err != nil {
		t.Fatalf("Layout(order): %v", err)
	}
	f, ok := l.Field(name)
	if !ok {
		t.Fatalf("order has no field %q", name)
	}
	return f
}

// TestBuildRegistry_Basic asserts that BuildRegistry returns a non-nil,
// working Registry.
func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()

	// prev may be nil; this must still produce a valid registry.
	reg := b.BuildRegistry(config.DefaultConfig(), nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	tt := reflect.TypeOf(order{})
	if err := reg.Alias(tt, "Ref", "reference"); err != nil {
		t.Fatalf("Alias failed: %v", err)
	}
	if got, ok := reg.Lookup(tt, "Ref"); !ok || got != "reference" {
		t.Fatalf("Lookup mismatch: ok=%v got=%q want=%q", ok, got, "reference")
	}
}

// TestBuildRegistry_MigratesAliases asserts that aliases survive a rebuild.
func TestBuildRegistry_MigratesAliases(t *testing.T) {
	b := builder.New()
	prev := registry.New()
	if err := prev.Alias(reflect.TypeOf(order{}), "Note", "memo"); err != nil {
		t.Fatalf("Alias failed: %v", err)
	}

	reg := b.BuildRegistry(config.DefaultConfig(), prev)
	if reg == prev {
		t.Fatal("BuildRegistry returned the previous registry")
	}
	if got, ok := reg.Lookup(reflect.TypeOf(order{}), "Note"); !ok || got != "memo" {
		t.Fatalf("migrated alias: ok=%v got=%q want=%q", ok, got, "memo")
	}
}

// TestBuildResolver_Order_AliasThenTagThenGoName verifies naming priority:
// 1. An alias registered in the Registry.
// 2. Otherwise, the struct tag under Config.TagKey.
// 3. Otherwise, the Go field name.
func TestBuildResolver_Order_AliasThenTagThenGoName(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithTagKey("json"))
	tt := reflect.TypeOf(order{})

	reg := b.BuildRegistry(cfg, nil)
	if err := reg.Alias(tt, "Ref", "reference"); err != nil {
		t.Fatalf("Alias(Ref) failed: %v", err)
	}

	res := b.BuildResolver(cfg, reg, nil)
	if res == nil {
		t.Fatal("BuildResolver returned nil")
	}

	// (1) Alias wins over the json tag.
	if got := res.Name(tt, fieldOf(t, reg, "Ref"), cfg); got != "reference" {
		t.Fatalf("alias priority broken: got %q want %q", got, "reference")
	}
	// (2) Tag is next.
	if got := res.Name(tt, fieldOf(t, reg, "Amount"), cfg); got != "amount" {
		t.Fatalf("tag strategy broken: got %q want %q", got, "amount")
	}
	// (3) Go name is the fallback.
	if got := res.Name(tt, fieldOf(t, reg, "Note"), cfg); got != "Note" {
		t.Fatalf("go-name strategy broken: got %q want %q", got, "Note")
	}
	// Without a tag key the Go name is reported for tagged fields too.
	if got := res.Name(tt, fieldOf(t, reg, "Amount"), config.DefaultConfig()); got != "Amount" {
		t.Fatalf("default config: got %q want %q", got, "Amount")
	}
}

// TestBuildResolver_Concurrency_Smoke hammers the resolver in parallel.
func TestBuildResolver_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithTagKey("json"))
	tt := reflect.TypeOf(order{})

	reg := b.BuildRegistry(cfg, nil)
	_ = reg.Alias(tt, "Ref", "reference")
	res := b.BuildResolver(cfg, reg, nil)

	fields := []apis.Field{fieldOf(t, reg, "Ref"), fieldOf(t, reg, "Amount"), fieldOf(t, reg, "Note")}
	want := []string{"reference", "amount", "Note"}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				j := (i + id) % len(fields)
				if got := res.Name(tt, fields[j], cfg); got != want[j] {
					t.Errorf("Name(%s) = %q, want %q", fields[j].Name, got, want[j])
					return
				}
			}
		}(w)
	}

	wg.Wait()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
