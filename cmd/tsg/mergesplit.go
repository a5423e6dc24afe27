package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsgeco/tsg-go/tsg"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <file> [<file> ...]",
	Short: "Concatenate TSG documents, preserving section order",
	Long: `merge concatenates the sections of multiple TSG documents into one,
preserving each document's section order. A graph_id already used by an
earlier document is renumbered ("<graph_id>_2", "_3", ...) rather than
rejected; inter-graph links are rewritten to the renumbered ids.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "-", "output path (\"-\" for stdout)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	merged := &tsg.Document{}
	used := map[string]bool{}
	for _, path := range args {
		doc, err := parseFile(path)
		if err != nil {
			return err
		}
		merged.Headers = append(merged.Headers, doc.Headers...)
		idMap := make(map[string]string, len(doc.Sections))
		for _, sec := range doc.Sections {
			newID := sec.GraphID
			for n := 2; used[newID]; n++ {
				newID = fmt.Sprintf("%s_%d", sec.GraphID, n)
			}
			used[newID] = true
			idMap[sec.GraphID] = newID
			sec.GraphID = newID
			merged.Sections = append(merged.Sections, sec)
		}
		for _, l := range doc.Links {
			renamed := *l
			renamed.Endpoint1.GraphID = idMap[l.Endpoint1.GraphID]
			renamed.Endpoint2.GraphID = idMap[l.Endpoint2.GraphID]
			merged.Links = append(merged.Links, &renamed)
		}
	}

	w, err := openOutput(mergeOutput)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := tsg.Serialize(w, merged); err != nil {
		return ioError(fmt.Errorf("serialize: %w", err))
	}
	return nil
}

var splitOutDir string

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Write one file per section, named by graph_id",
	Long: `split writes each section of a TSG document to its own file, named
"<graph_id>.tsg" in the output directory. Inter-graph links, which span
two sections by construction, are dropped from the per-section output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitOutDir, "output", "o", ".", "directory to write per-section files into")
}

func runSplit(cmd *cobra.Command, args []string) error {
	doc, err := parseFile(argOrStdin(args))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(splitOutDir, 0o755); err != nil {
		return ioError(err)
	}
	for _, sec := range doc.Sections {
		single := &tsg.Document{Sections: []*tsg.GraphSection{sec}}
		path := filepath.Join(splitOutDir, sec.GraphID+".tsg")
		f, err := os.Create(path)
		if err != nil {
			return ioError(err)
		}
		err = tsg.Serialize(f, single)
		closeErr := f.Close()
		if err != nil {
			return ioError(fmt.Errorf("serialize %q: %w", path, err))
		}
		if closeErr != nil {
			return ioError(closeErr)
		}
	}
	return nil
}
