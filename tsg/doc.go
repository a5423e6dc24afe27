// Copyright ©2024 The TSG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsg implements the Transcript Segment Graph (TSG) text format
// and the in-memory graph engine that parses, validates, constructs,
// analyzes, traverses and re-serializes TSG documents.
//
// A TSG document is an ordered collection of independent directed
// multigraphs ("sections"), global headers and cross-section links. Each
// section holds nodes (exons/transcript segments), edges (structural-variant
// annotated connections), chains (construction witnesses), ordered paths
// and unordered sets.
package tsg // import "github.com/tsgeco/tsg-go/tsg"
