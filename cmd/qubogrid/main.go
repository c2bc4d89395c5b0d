// SPDX-License-Identifier: MIT
//
// Command qubogrid generates QUBO interaction graphs, builds clique-tiled
// hardware and embeds the former into the latter.
//
//	qubogrid generate [flags]   one logical graph
//	qubogrid compare  [flags]   deterministic and probabilistic side by side
//	qubogrid hardware [flags]   grid or line of cliques with layout positions
//	qubogrid embed    [flags]   logical graph, hardware search, embedding
//
// Every command writes a report (json, yaml or msgpack) to -o or stdout and,
// with -metrics, a Prometheus textfile.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/plan-systems/klog"
)

const usage = `usage: qubogrid <generate|compare|hardware|embed> [flags]
run "qubogrid <command> -h" for the flags of one command`

// errUsage marks command-line mistakes (exit status 2).
var errUsage = errors.New("usage")

func main() {
	logFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(logFlags)
	_ = logFlags.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	err := run(os.Args[1:], os.Stdout, os.Stderr, logFlags)
	klog.Flush()
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}

// run dispatches one command. logFlags receives the -v level.
func run(args []string, stdout, stderr io.Writer, logFlags *flag.FlagSet) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", errUsage, usage)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q\n%s", errUsage, args[0], usage)
	}
	inv, err := parse(args[0], args[1:], stderr)
	if err != nil {
		return err
	}
	if logFlags != nil {
		_ = logFlags.Set("v", fmt.Sprint(inv.verbosity))
	}

	return execute(cmd, inv, stdout)
}
