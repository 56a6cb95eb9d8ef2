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

package strategy

import (
	"reflect"

	"dirpx.dev/fieldref/apis"
)

// NewGoNameStrategy creates an apis.Strategy that reports the declared Go field name.
func NewGoNameStrategy() apis.Strategy {
	return goNameStrategy{}
}

// goNameStrategy is the universal fallback: every field has a Go name.
type goNameStrategy struct{}

// Ensure goNameStrategy implements apis.Strategy.
var _ apis.Strategy = goNameStrategy{}

// TryName returns f.Name unchanged.
func (goNameStrategy) TryName(_ reflect.Type, f apis.Field, _ apis.Config) (string, bool) {
	if f.Name == "" {
		return "", false
	}
	return f.Name, true
}
