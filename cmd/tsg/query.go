package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsgeco/tsg-go/tsg"
)

var (
	queryOutput  string
	queryIDs     string
	queryIDsFile string
)

var queryCmd = &cobra.Command{
	Use:   "query <file>",
	Short: "Select and print elements by id",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryOutput, "output", "o", "-", "output path (\"-\" for stdout)")
	queryCmd.Flags().StringVar(&queryIDs, "ids", "", "comma-separated list of element ids")
	queryCmd.Flags().StringVar(&queryIDsFile, "ids-file", "", "file with one element id per line")
}

func runQuery(cmd *cobra.Command, args []string) error {
	ids, err := wantedIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return usageErrorf("query requires --ids or --ids-file")
	}

	doc, err := parseFile(argOrStdin(args))
	if err != nil {
		return err
	}

	w, err := openOutput(queryOutput)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, sec := range doc.Sections {
		for id := range ids {
			if n := sec.GetNode(id); n != nil {
				fmt.Fprintf(w, "N\t%s\t%s\t%s\n", n.StringID(), sec.GraphID, n.Location.String())
			}
			if e := sec.GetEdge(id); e != nil {
				fmt.Fprintf(w, "E\t%s\t%s\t%s->%s\n", e.StringID(), sec.GraphID, e.SourceID(), e.SinkID())
			}
		}
	}
	return nil
}

func wantedIDs() (map[string]bool, error) {
	ids := map[string]bool{}
	if queryIDs != "" {
		for _, id := range strings.Split(queryIDs, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids[id] = true
			}
		}
	}
	if queryIDsFile != "" {
		f, err := os.Open(queryIDsFile)
		if err != nil {
			return nil, ioError(err)
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			id := strings.TrimSpace(sc.Text())
			if id != "" {
				ids[id] = true
			}
		}
		if err := sc.Err(); err != nil {
			return nil, ioError(err)
		}
	}
	return ids, nil
}
