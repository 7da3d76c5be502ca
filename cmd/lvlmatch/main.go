// Command lvlmatch computes a maximum-cardinality matching for a graph
// given in DIMACS-like form and prints the matching in the same format.
//
// Usage:
//
//	lvlmatch --graph file.dmx [--hint hint.dmx] [--verbose]
//
// The hint file, if given, seeds the algorithm with an initial matching;
// the output of a previous run is a valid hint. Exit status is 0 on
// success and non-zero on usage or I/O errors.
package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlmatch/dimacs"
	"github.com/katalvlaran/lvlmatch/matching"
)

var (
	graphPath string
	hintPath  string
	verbose   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the one and only command.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lvlmatch --graph file.dmx [--hint hint.dmx]",
		Short:        "Compute a maximum-cardinality matching with Edmonds' blossom algorithm",
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}
	bindFlags(rootCmd.Flags())
	_ = rootCmd.MarkFlagRequired("graph")

	return rootCmd
}

// bindFlags registers the CLI flags on the command's flag set.
func bindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&graphPath, "graph", "g", "", "path to the DIMACS graph file (required)")
	flags.StringVarP(&hintPath, "hint", "i", "", "path to an initial matching in the same format")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose progress logging on stderr")
}

// run loads the inputs, executes the matching, and prints the result.
func run(cmd *cobra.Command, _ []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	gf, err := os.Open(graphPath)
	if err != nil {
		return fmt.Errorf("open graph: %w", err)
	}
	defer gf.Close()

	g, err := dimacs.ReadGraph(gf)
	if err != nil {
		return fmt.Errorf("parse graph %s: %w", graphPath, err)
	}
	log.Debugf("graph %s: %d nodes, %d edges", graphPath, g.NumNodes(), g.NumEdges())

	var opts []matching.Option
	if hintPath != "" {
		hf, err := os.Open(hintPath)
		if err != nil {
			return fmt.Errorf("open hint: %w", err)
		}
		defer hf.Close()

		hint, err := dimacs.ReadMatching(hf, g.NumNodes())
		if err != nil {
			return fmt.Errorf("parse hint %s: %w", hintPath, err)
		}
		log.Debugf("hint %s: %d matched pairs", hintPath, hint.Size())
		opts = append(opts, matching.WithHint(hint))
	}

	start := time.Now()
	m, err := matching.Maximum(g, opts...)
	if err != nil {
		return err
	}
	log.Debugf("matched %d pairs in %s", m.Size(), time.Since(start))

	return dimacs.Write(cmd.OutOrStdout(), g.NumNodes(), m)
}
