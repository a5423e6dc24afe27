package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsgeco/tsg-go/emit"
	"github.com/tsgeco/tsg-go/tsg"
)

var dotOutput string

var dotCmd = &cobra.Command{
	Use:   "dot <file>",
	Short: "Convert a TSG document to DOT",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertEach(args, dotOutput, func(w writerLike, sec *tsg.GraphSection) error {
			b, err := emit.DOT(sec)
			if err != nil {
				return validationError(err)
			}
			_, err = w.Write(b)
			return ioErrorIfNotNil(err)
		})
	},
}

var gtfOutput string

var gtfCmd = &cobra.Command{
	Use:   "gtf <file>",
	Short: "Convert a TSG document's paths to GTF",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertEach(args, gtfOutput, func(w writerLike, sec *tsg.GraphSection) error {
			return ioErrorIfNotNil(emit.GTF(w, sec))
		})
	},
}

var vcfOutput string

var vcfCmd = &cobra.Command{
	Use:   "vcf <file>",
	Short: "Convert a TSG document's structural-variant edges to VCF",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertEach(args, vcfOutput, func(w writerLike, sec *tsg.GraphSection) error {
			return ioErrorIfNotNil(emit.VCF(w, sec))
		})
	},
}

var fastaOutput string

var fastaCmd = &cobra.Command{
	Use:   "fa <file>",
	Short: "Convert a TSG document's paths to FASTA",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertEach(args, fastaOutput, func(w writerLike, sec *tsg.GraphSection) error {
			warnings, err := emit.FASTA(w, sec)
			for _, msg := range warnings {
				slog.Warn(msg)
			}
			return ioErrorIfNotNil(err)
		})
	},
}

var (
	jsonOutput string
	jsonPretty bool
)

var jsonCmd = &cobra.Command{
	Use:   "json <file>",
	Short: "Convert a TSG document to JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJSON,
}

func init() {
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "-", "output path (\"-\" for stdout)")
	gtfCmd.Flags().StringVarP(&gtfOutput, "output", "o", "-", "output path (\"-\" for stdout)")
	vcfCmd.Flags().StringVarP(&vcfOutput, "output", "o", "-", "output path (\"-\" for stdout)")
	fastaCmd.Flags().StringVarP(&fastaOutput, "output", "o", "-", "output path (\"-\" for stdout)")
	jsonCmd.Flags().StringVarP(&jsonOutput, "output", "o", "-", "output path (\"-\" for stdout)")
	jsonCmd.Flags().BoolVar(&jsonPretty, "pretty", false, "pretty-print the JSON output")
}

type writerLike interface {
	Write(p []byte) (int, error)
}

func ioErrorIfNotNil(err error) error {
	if err == nil {
		return nil
	}
	return ioError(err)
}

// convertEach parses path (or stdin), then runs fn once per section in
// document order, writing to a single shared output stream.
func convertEach(args []string, output string, fn func(w writerLike, sec *tsg.GraphSection) error) error {
	doc, err := parseFile(argOrStdin(args))
	if err != nil {
		return err
	}
	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()
	for _, sec := range doc.Sections {
		if err := fn(w, sec); err != nil {
			return fmt.Errorf("section %q: %w", sec.GraphID, err)
		}
	}
	return nil
}

func runJSON(cmd *cobra.Command, args []string) error {
	doc, err := parseFile(argOrStdin(args))
	if err != nil {
		return err
	}
	w, err := openOutput(jsonOutput)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := emit.JSON(w, doc, jsonPretty); err != nil {
		return ioError(err)
	}
	return nil
}
