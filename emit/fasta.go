// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"github.com/tsgeco/tsg-go/tsg"
)

// FASTA writes one record per ordered path to w (§6): the sequence is the
// concatenation of the path's constituent nodes' inline sequences, in
// path order. A node without an inline sequence is skipped and reported
// in the returned warnings, mirroring the wrapped-sequence %a verb used
// for FASTA output elsewhere in the corpus.
func FASTA(w io.Writer, sec *tsg.GraphSection) ([]string, error) {
	var warnings []string
	for _, p := range sec.Paths() {
		var seq []byte
		for _, ref := range p.Elements {
			n := sec.GetNode(ref.ID)
			if n == nil {
				continue
			}
			if n.Seq == "" {
				warnings = append(warnings, fmt.Sprintf("path %q: node %q has no inline sequence, skipped", p.ID, n.StringID()))
				continue
			}
			seq = append(seq, n.Seq...)
		}
		if len(seq) == 0 {
			continue
		}
		s := linear.NewSeq(p.ID, alphabet.BytesToLetters(seq), alphabet.DNAredundant)
		s.Desc = fmt.Sprintf("graph=%s", sec.GraphID)
		if _, err := fmt.Fprintf(w, "%60a\n", s); err != nil {
			return warnings, fmt.Errorf("emit: fasta: path %q: %w", p.ID, err)
		}
	}
	return warnings, nil
}
