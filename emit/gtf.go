// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"github.com/tsgeco/tsg-go/tsg"
)

// GTF writes sec's paths to w in GTF form (§6): each ordered path becomes
// a transcript feature, and each node it traverses becomes an exon
// feature with gene_id set to the section's graph_id and transcript_id
// set to the path's id.
func GTF(w io.Writer, sec *tsg.GraphSection) error {
	enc := gff.NewWriter(w, 60, true)
	for _, p := range sec.Paths() {
		nodes, extent, err := pathExtent(sec, p)
		if err != nil {
			return fmt.Errorf("emit: gtf: path %q: %w", p.ID, err)
		}
		if len(nodes) == 0 {
			continue
		}
		attrs := gff.Attributes{
			{Tag: "gene_id", Value: sec.GraphID},
			{Tag: "transcript_id", Value: p.ID},
		}
		_, err = enc.Write(&gff.Feature{
			SeqName:        extent.chromosome,
			Source:         "tsg",
			Feature:        "transcript",
			FeatStart:      extent.start,
			FeatEnd:        extent.end,
			FeatStrand:     gtfStrand(extent.strand),
			FeatFrame:      gff.NoFrame,
			FeatAttributes: attrs,
		})
		if err != nil {
			return fmt.Errorf("emit: gtf: path %q transcript: %w", p.ID, err)
		}
		for _, n := range nodes {
			for _, iv := range n.Location.Intervals {
				_, err = enc.Write(&gff.Feature{
					SeqName:        n.Location.Chromosome,
					Source:         "tsg",
					Feature:        "exon",
					FeatStart:      iv.Start,
					FeatEnd:        iv.End,
					FeatStrand:     gtfStrand(n.Location.Strand),
					FeatFrame:      gff.NoFrame,
					FeatAttributes: attrs,
				})
				if err != nil {
					return fmt.Errorf("emit: gtf: path %q exon %q: %w", p.ID, n.StringID(), err)
				}
			}
		}
	}
	return nil
}

// transcriptExtent is the genomic span of a GTF transcript record,
// derived from the min/max of its constituent exons' coordinates.
type transcriptExtent struct {
	chromosome string
	strand     tsg.Strand
	start, end int
}

// pathExtent resolves a path's node elements in order and the genomic
// span they cover.
func pathExtent(sec *tsg.GraphSection, p *tsg.OrderedPath) ([]*tsg.Node, transcriptExtent, error) {
	var nodes []*tsg.Node
	var extent transcriptExtent
	first := true
	for _, ref := range p.Elements {
		n := sec.GetNode(ref.ID)
		if n == nil {
			continue
		}
		nodes = append(nodes, n)
		if first {
			extent.chromosome = n.Location.Chromosome
			extent.strand = n.Location.Strand
		}
		for _, iv := range n.Location.Intervals {
			if first {
				extent.start, extent.end = iv.Start, iv.End
				first = false
				continue
			}
			if iv.Start < extent.start {
				extent.start = iv.Start
			}
			if iv.End > extent.end {
				extent.end = iv.End
			}
		}
	}
	return nodes, extent, nil
}

func gtfStrand(s tsg.Strand) seq.Strand {
	switch s {
	case tsg.StrandPlus:
		return seq.Plus
	case tsg.StrandMinus:
		return seq.Minus
	default:
		return seq.None
	}
}
