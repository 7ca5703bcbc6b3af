// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the plain text of every page of a PDF file.
//
// Parsing is delegated to a Parser backend. Each backend wraps one PDF
// library and exposes exactly two operations: turn an open file into a
// Document, and turn one of that Document's pages into text. ReadPDF owns
// the file handle and walks the pages in document order.
package pdftext

import (
	"fmt"
	"os"
)

// Page is a backend-specific handle to a single page of a parsed Document.
type Page interface {
	// Number returns the 1-based position of the page in its document.
	Number() int
}

// Document is a parsed PDF. Pages are numbered from 1 to NumPage.
type Document interface {
	NumPage() int
	Page(n int) Page
}

// Parser is the narrow surface pdftext needs from a PDF library.
type Parser interface {
	// Parse reads the PDF from f. f stays owned by the caller and must not
	// be closed by the parser.
	Parse(f *os.File) (Document, error)

	// ExtractText returns the plain text of pg, which must come from a
	// Document produced by the same parser. A page with no text layer
	// yields an empty string.
	ExtractText(pg Page) (string, error)
}

// ReadPDF opens the file at path, parses it with p and returns the text of
// each page in document order. The result has exactly one entry per page.
//
// An open failure, or a path naming a directory, is returned as a
// *FileAccessError. Any failure to parse
// the document or to extract any single page is returned as a *ParseError
// and no partial result is returned. The file is closed before ReadPDF
// returns on every path.
func ReadPDF(p Parser, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Err: ErrIsDirectory}
	}

	var (
		doc   Document
		count int
	)
	err = guard(func() error {
		var err error
		if doc, err = p.Parse(f); err != nil {
			return err
		}
		count = doc.NumPage()
		return nil
	})
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	pages := make([]string, 0, count)
	for n := 1; n <= count; n++ {
		var text string
		err := guard(func() error {
			var err error
			text, err = p.ExtractText(doc.Page(n))
			return err
		})
		if err != nil {
			return nil, &ParseError{Path: path, Page: n, Err: err}
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// guard runs fn and converts a panic raised by a PDF library into an
// ErrMalformed error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()
	return fn()
}
