// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports that a PDF library panicked on the input.
	ErrMalformed = errors.New("malformed PDF")

	// ErrForeignPage reports a Page passed to a parser that did not create it.
	ErrForeignPage = errors.New("page belongs to a different backend")

	// ErrBackendUnavailable reports that a backend's external tool is missing.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrIsDirectory reports that the path names a directory, not a file.
	ErrIsDirectory = errors.New("is a directory")
)

// FileAccessError reports that the PDF file could not be opened.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("opening PDF %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports that the file could not be interpreted as a PDF, or
// that text extraction failed. Page is the 1-based page that failed, or 0
// when the document itself could not be parsed.
type ParseError struct {
	Path string
	Page int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("extracting text from %s page %d: %v", e.Path, e.Page, e.Err)
	}
	return fmt.Sprintf("parsing PDF %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func foreignPage(pg Page) error {
	return fmt.Errorf("%w: %T", ErrForeignPage, pg)
}
