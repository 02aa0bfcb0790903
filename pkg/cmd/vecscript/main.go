// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cockroachdb/containers/pkg/util/vector/vectorscript"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// errRejected is returned under --fail-fast when the vector rejects a
// command.
var errRejected = errors.New("command rejected")

type runConfig struct {
	echo     bool
	failFast bool
}

func (c *runConfig) registerFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.echo, "echo", c.echo, "print each command before its output")
	fs.BoolVar(&c.failFast, "fail-fast", c.failFast, "stop at the first command the vector rejects")
}

func makeVecscriptCommand() *cobra.Command {
	var config runConfig
	command := &cobra.Command{
		Use:   "vecscript [script]",
		Short: "vecscript runs a script of vector operations and prints the result of each.",
		Long: `vecscript runs a script of vector operations and prints the result of each.

The script is read from the named file, or from stdin when no file is given.
Each non-empty line not starting with '#' is one command, for example:

    new values=(10,20,30)
    push v=40
    find name=c v=30
    insert at=c v=25
    print
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name := cmd.InOrStdin(), "<stdin>"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening script")
				}
				defer f.Close()
				in, name = f, args[0]
			}
			return run(config, name, in, cmd.OutOrStdout())
		},
	}
	config.registerFlags(command.Flags())
	return command
}

func run(config runConfig, name string, r io.Reader, w io.Writer) error {
	interp := vectorscript.NewInterpreter()
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if config.echo {
			fmt.Fprintf(w, "> %s\n", line)
		}
		failures := interp.Failures()
		out, err := interp.ExecLine(line)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", name, lineNo)
		}
		fmt.Fprintln(w, out)
		if config.failFast && interp.Failures() > failures {
			return errors.Wrapf(errRejected, "%s:%d", name, lineNo)
		}
	}
	return errors.Wrapf(scanner.Err(), "reading %s", name)
}

func main() {
	cmd := makeVecscriptCommand()
	if err := cmd.Execute(); err != nil {
		log.Printf("ERROR: %+v", err)
		os.Exit(1)
	}
}
