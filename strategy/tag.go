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
	uref "dirpx.dev/fieldref/utils/reflect"
)

// NewTagStrategy creates an apis.Strategy that reports the struct tag name
// selected by Config.TagKey.
func NewTagStrategy() apis.Strategy {
	return tagStrategy{}
}

// tagStrategy falls through when no tag key is configured, the tag is absent,
// or the tag explicitly opts out with "-".
type tagStrategy struct{}

// Ensure tagStrategy implements apis.Strategy.
var _ apis.Strategy = tagStrategy{}

// TryName returns the first segment of f's tag under cfg.TagKey.
func (tagStrategy) TryName(_ reflect.Type, f apis.Field, cfg apis.Config) (string, bool) {
	return uref.TagName(f.Tag, cfg.TagKey)
}
