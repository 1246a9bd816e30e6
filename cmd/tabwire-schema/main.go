// Copyright 2026 The tabwire Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"

	"github.com/tabwire/tabwire/schemaio"
)

const usage = `Tabwire Schema Dumper.
Usage:
  tabwire-schema [--format=<fmt>] <file>
  tabwire-schema -h | --help
Options:
  -h --help        Show this screen.
  --format=<fmt>   Document format: json, yaml or auto (by extension) [default: auto].`

func main() {
	args, _ := docopt.ParseDoc(usage)
	path := args["<file>"].(string)

	format, err := pickFormat(args["--format"].(string), path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening schema document: ", err)
		os.Exit(1)
	}
	defer f.Close()

	s, err := schemaio.Decode(f, format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading schema document: ", err)
		os.Exit(1)
	}

	for _, r := range s.Records() {
		fmt.Println(r.Signature())
	}
	fmt.Printf("hash: %016x\n", s.Hash())
}

func pickFormat(flag, path string) (schemaio.Format, error) {
	switch strings.ToLower(flag) {
	case "json":
		return schemaio.FormatJSON, nil
	case "yaml", "yml":
		return schemaio.FormatYAML, nil
	case "auto":
	default:
		return 0, fmt.Errorf("unknown format %q", flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return schemaio.FormatJSON, nil
	case ".yaml", ".yml":
		return schemaio.FormatYAML, nil
	default:
		return 0, fmt.Errorf("cannot infer document format from %q, pass --format", path)
	}
}
