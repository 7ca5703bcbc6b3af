// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// LedongthucParser parses PDFs with github.com/ledongthuc/pdf. Only the
// embedded text layer is read; scanned pages come back empty.
type LedongthucParser struct{}

type ledongthucDoc struct {
	r *pdf.Reader
}

func (d ledongthucDoc) NumPage() int { return d.r.NumPage() }

func (d ledongthucDoc) Page(n int) Page {
	return ledongthucPage{n: n, p: d.r.Page(n)}
}

type ledongthucPage struct {
	n int
	p pdf.Page
}

func (p ledongthucPage) Number() int { return p.n }

// Parse reads the cross-reference table and trailer of the PDF in f.
func (l *LedongthucParser) Parse(f *os.File) (Document, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", f.Name(), err)
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}
	return ledongthucDoc{r: r}, nil
}

// ExtractText returns the plain text of pg. A page whose object is missing
// from the page tree yields an empty string.
func (l *LedongthucParser) ExtractText(pg Page) (string, error) {
	lp, ok := pg.(ledongthucPage)
	if !ok {
		return "", foreignPage(pg)
	}
	if lp.p.V.IsNull() {
		return "", nil
	}
	return lp.p.GetPlainText(nil)
}
