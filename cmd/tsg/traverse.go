package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsgeco/tsg-go/tsg"
)

var (
	traverseOutput string
	traverseCap    int
)

var traverseCmd = &cobra.Command{
	Use:   "traverse <file>",
	Short: "Enumerate continuity-valid source-to-sink paths in each section",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTraverse,
}

func init() {
	traverseCmd.Flags().StringVarP(&traverseOutput, "output", "o", "-", "output path (\"-\" for stdout)")
	traverseCmd.Flags().IntVar(&traverseCap, "cap", 0, "revisit cap (0 uses the config/default value)")
}

func runTraverse(cmd *cobra.Command, args []string) error {
	doc, err := parseFile(argOrStdin(args))
	if err != nil {
		return err
	}

	cap := traverseCap
	if cap == 0 {
		cap = cfg.RevisitCap
	}

	w, err := openOutput(traverseOutput)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, sec := range doc.Sections {
		paths, err := tsg.Traverse(sec, tsg.TraverseOptions{RevisitCap: cap})
		if err != nil {
			return validationError(fmt.Errorf("traverse %q: %w", sec.GraphID, err))
		}
		for _, p := range paths {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", sec.GraphID, p.String()); err != nil {
				return ioError(err)
			}
		}
	}
	return nil
}
