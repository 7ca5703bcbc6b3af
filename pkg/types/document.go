// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pdftext: backend and
// output selection, read configuration, and the extraction envelope
// written by the CLI.
package types

// DefaultPath is the document read when no path is given.
const DefaultPath = "assessment.pdf"

// Extraction is the text of one PDF, one entry per page in document order.
type Extraction struct {
	// Source is the path the PDF was read from.
	Source string `json:"source" yaml:"source"`

	// Backend identifies the library that produced the text.
	Backend Backend `json:"backend" yaml:"backend"`

	// Pages holds the plain text of each page. Pages[i] is page i+1; a page
	// without extractable text is an empty string.
	Pages []string `json:"pages" yaml:"pages"`
}

// PageCount returns the number of pages in the extraction.
func (e Extraction) PageCount() int {
	return len(e.Pages)
}
