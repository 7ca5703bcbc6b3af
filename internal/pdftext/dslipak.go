// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"os"

	"github.com/dslipak/pdf"
)

// DslipakParser parses PDFs with github.com/dslipak/pdf.
type DslipakParser struct{}

type dslipakDoc struct {
	r *pdf.Reader
}

func (d dslipakDoc) NumPage() int { return d.r.NumPage() }

func (d dslipakDoc) Page(n int) Page {
	return dslipakPage{n: n, p: d.r.Page(n)}
}

type dslipakPage struct {
	n int
	p pdf.Page
}

func (p dslipakPage) Number() int { return p.n }

func (d *DslipakParser) Parse(f *os.File) (Document, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", f.Name(), err)
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}
	return dslipakDoc{r: r}, nil
}

func (d *DslipakParser) ExtractText(pg Page) (string, error) {
	dp, ok := pg.(dslipakPage)
	if !ok {
		return "", foreignPage(pg)
	}
	if dp.p.V.IsNull() {
		return "", nil
	}
	return dp.p.GetPlainText(nil)
}
