// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package align

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadFasta reads an alignment in FASTA format
// from an input stream.
//
// In a FASTA file each sequence starts with a line
// beginning with '>' followed by the taxon name;
// the sequence follows in one or more lines.
// Lines beginning with '#' or ';' are comments.
func ReadFasta(r io.Reader) (*Alignment, error) {
	a := New()

	var taxon string
	var seq strings.Builder
	ln := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if taxon != "" {
				if err := a.Add(taxon, seq.String()); err != nil {
					return nil, fmt.Errorf("on line %d: %v", ln, err)
				}
			}
			taxon = strings.TrimSpace(line[1:])
			seq.Reset()
			continue
		}
		if taxon == "" {
			return nil, fmt.Errorf("on line %d: sequence without taxon", ln)
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("on line %d: %v", ln, err)
	}
	if taxon != "" {
		if err := a.Add(taxon, seq.String()); err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}
	}

	if len(a.taxon) == 0 {
		return nil, fmt.Errorf("while reading data: no sequences in file")
	}
	return a, nil
}

// Fasta writes an alignment in FASTA format
// into an output stream.
func (a *Alignment) Fasta(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, tx := range a.Taxa() {
		fmt.Fprintf(bw, ">%s\n", tx)
		seq := a.taxon[tx]
		for len(seq) > 60 {
			fmt.Fprintf(bw, "%s\n", seq[:60])
			seq = seq[60:]
		}
		fmt.Fprintf(bw, "%s\n", seq)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
