package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsgeco/tsg-go/tsg"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a TSG document and re-serialize it canonically",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "-", "output path (\"-\" for stdout)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := argOrStdin(args)
	doc, err := parseFile(path)
	if err != nil {
		return err
	}

	for _, sec := range doc.Sections {
		slog.Info("parsed section", "graph_id", sec.GraphID, "nodes", len(sec.NodeIDs()), "edges", len(sec.EdgeIDs()))
	}

	w, err := openOutput(parseOutput)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := tsg.Serialize(w, doc); err != nil {
		return ioError(fmt.Errorf("serialize: %w", err))
	}
	return nil
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
