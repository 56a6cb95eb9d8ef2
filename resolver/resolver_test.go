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

package resolver_test

import (
	"reflect"
	"testing"

	"dirpx.dev/fieldref/apis"
	"dirpx.dev/fieldref/resolver"
)

// fixed is a strategy that always answers with name, or falls through when name is "".
type fixed struct {
	name  string
	calls *int
}

func (s fixed) TryName(_ reflect.Type, _ apis.Field, _ apis.Config) (string, bool) {
	if s.calls != nil {
		*s.calls++
	}
	return s.name, s.name != ""
}

func TestChain_FirstHandledWins(t *testing.T) {
	var after int
	res := resolver.New(
		fixed{name: ""},
		nil,
		fixed{name: "second"},
		fixed{name: "third", calls: &after},
	)

	if got := res.Name(nil, apis.Field{Name: "X"}, apis.Config{}); got != "second" {
		t.Fatalf("Name = %q, want second", got)
	}
	if after != 0 {
		t.Fatalf("strategy after the winner was called %d times", after)
	}
}

func TestChain_NoStrategyHandles(t *testing.T) {
	res := resolver.New(fixed{name: ""}, nil)
	if got := res.Name(nil, apis.Field{Name: "X"}, apis.Config{}); got != "" {
		t.Fatalf("Name = %q, want empty", got)
	}

	if got := resolver.New().Name(nil, apis.Field{Name: "X"}, apis.Config{}); got != "" {
		t.Fatalf("empty chain Name = %q, want empty", got)
	}
}
