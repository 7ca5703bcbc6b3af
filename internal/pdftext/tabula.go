// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"os"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"
)

// TabulaParser parses PDFs with github.com/tsawler/tabula. Tabula orders
// fragments by reading order, so multi-column pages come out column by
// column.
type TabulaParser struct{}

type tabulaDoc struct {
	r     *reader.Reader
	count int
}

func (d tabulaDoc) NumPage() int { return d.count }

func (d tabulaDoc) Page(n int) Page {
	return tabulaPage{n: n, r: d.r}
}

type tabulaPage struct {
	n int
	r *reader.Reader
}

func (p tabulaPage) Number() int { return p.n }

// Parse loads the header, cross-reference table and page tree. The reader
// is never closed here: closing it would close f.
func (t *TabulaParser) Parse(f *os.File) (Document, error) {
	r, err := reader.NewReader(f)
	if err != nil {
		return nil, err
	}
	count, err := r.PageCount()
	if err != nil {
		return nil, err
	}
	return tabulaDoc{r: r, count: count}, nil
}

// ExtractText returns the text of pg. Tabula warnings (for example a
// character-level PDF) are not errors and are dropped.
func (t *TabulaParser) ExtractText(pg Page) (string, error) {
	tp, ok := pg.(tabulaPage)
	if !ok {
		return "", foreignPage(pg)
	}
	text, _, err := tabula.FromReader(tp.r).Pages(tp.n).Text()
	return text, err
}
