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

// Command fieldref prints the resolved names of a sample record's fields.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"dirpx.dev/fieldref"
	"dirpx.dev/fieldref/config"
)

var logger = logging.Logger("fieldref")

// Obj is the sample struct record.
type Obj struct {
	PropStr  string        `json:"propStr"`
	PropBool bool          `json:"propBool"`
	PropNum  int           `json:"propNum"`
	PropFn   func() string `json:"propFn"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fieldref", flag.ContinueOnError)
	tag := fs.String("tag", "", "report names from this struct tag (e.g. json)")
	level := fs.String("log-level", "error", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := logging.SetLogLevel("fieldref", *level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	obj := Obj{
		PropStr:  "string",
		PropBool: true,
		PropNum:  0,
		PropFn:   func() string { return "fn" },
	}
	opts := []config.Option{config.WithTagKey(*tag)}

	names := make([]string, 0, 8)
	for _, resolve := range []func() (string, error){
		func() (string, error) {
			return fieldref.Name(obj, func(o *Obj) *string { return &o.PropStr }, opts...)
		},
		func() (string, error) {
			return fieldref.Name(obj, func(o *Obj) *bool { return &o.PropBool }, opts...)
		},
		func() (string, error) {
			return fieldref.Name(obj, func(o *Obj) *int { return &o.PropNum }, opts...)
		},
		func() (string, error) {
			return fieldref.Name(obj, func(o *Obj) *func() string { return &o.PropFn }, opts...)
		},
	} {
		name, err := resolve()
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	logger.Debugf("resolved %d struct fields", len(names))

	rec := map[string]any{
		"propStr":  obj.PropStr,
		"propBool": obj.PropBool,
		"propNum":  obj.PropNum,
		"propFn":   obj.PropFn,
	}
	for _, key := range []string{"propStr", "propBool", "propNum", "propFn"} {
		name, err := fieldref.Key(rec, func(r fieldref.Record) any { return r[key] })
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	logger.Debugf("resolved %d map keys", len(rec))

	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}
