// Command kropki is the batch driver around the solver library: it decodes
// one or more puzzle files in the classic text format, solves each to a
// single solution, and writes the solved grids out.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kropki/puzzle"
	"github.com/katalvlaran/kropki/solver"
)

var log = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.WithError(err).Error("kropki failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "kropki",
		Short:         "Kropki Sudoku solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand())

	return root
}

// solveFlags carries the solve subcommand's configuration.
type solveFlags struct {
	toStdout bool
	outDir   string
	maxNodes int64
	verbose  bool
}

func newSolveCommand() *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve <input>...",
		Short: "Solve one or more Kropki Sudoku puzzle files",
		Long: "Solve reads each input file (value grid, horizontal dots, vertical dots),\n" +
			"runs the constraint search, and writes the solved grid to <stem>.out.txt\n" +
			"next to the input (or to --out-dir, or to stdout with --stdout).\n" +
			"A puzzle with no solution is reported and skipped; the exit code is\n" +
			"non-zero if any puzzle failed.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			failed := 0
			for _, path := range args {
				if err := solveFile(cmd, path, flags); err != nil {
					log.WithField("file", path).WithError(err).Error("puzzle failed")
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d puzzles failed", failed, len(args))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.toStdout, "stdout", false, "write solutions to stdout instead of files")
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "directory for solution files (default: alongside each input)")
	cmd.Flags().Int64Var(&flags.maxNodes, "max-nodes", 0, "abort a puzzle after this many search nodes (0 = unlimited)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// solveFile runs the decode → solve → encode pipeline for one input file.
func solveFile(cmd *cobra.Command, path string, flags solveFlags) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	b, decErr := puzzle.Decode(in)
	if err = in.Close(); decErr == nil && err != nil {
		decErr = err
	}
	if decErr != nil {
		return decErr
	}

	start := time.Now()
	res, err := solver.Solve(b,
		solver.WithContext(cmd.Context()),
		solver.WithMaxNodes(flags.maxNodes),
	)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":       path,
		"nodes":      res.Nodes,
		"backtracks": res.Backtracks,
		"elapsed":    time.Since(start),
	}).Info("solved")

	if flags.toStdout {
		return puzzle.Encode(cmd.OutOrStdout(), b)
	}

	outPath := outputPath(path, flags.outDir)
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err = puzzle.Encode(out, b); err != nil {
		_ = out.Close()

		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": path, "output": outPath}).Debug("solution written")

	return nil
}

// outputPath derives the solution file path: <stem>.out.txt next to the
// input, or inside outDir when one is given.
func outputPath(in, outDir string) string {
	base := filepath.Base(in)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(in)
	if outDir != "" {
		dir = outDir
	}

	return filepath.Join(dir, stem+".out.txt")
}
