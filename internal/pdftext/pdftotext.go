// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const binPdftotext = "pdftotext"

// pdftotextArgs read the PDF from stdin and write layout-preserving text to
// stdout. pdftotext terminates every page with a form feed.
var pdftotextArgs = []string{"-layout", "-", "-"}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// PdftotextParser runs poppler's pdftotext binary over the open file. The
// whole document is converted during Parse; ExtractText only hands back
// the page already split out of the output.
type PdftotextParser struct {
	exec executor
}

// NewPdftotextParser returns a parser that runs pdftotext from PATH.
func NewPdftotextParser() *PdftotextParser {
	return &PdftotextParser{exec: &osExecutor{}}
}

type pdftotextDoc struct {
	pages []string
}

func (d pdftotextDoc) NumPage() int { return len(d.pages) }

func (d pdftotextDoc) Page(n int) Page {
	return pdftotextPage{n: n, text: d.pages[n-1]}
}

type pdftotextPage struct {
	n    int
	text string
}

func (p pdftotextPage) Number() int { return p.n }

func (p *PdftotextParser) Parse(f *os.File) (Document, error) {
	if _, err := p.exec.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%w: %s not found on PATH: %v", ErrBackendUnavailable, binPdftotext, err)
	}

	var out bytes.Buffer
	if err := p.exec.RunPiped(binPdftotext, pdftotextArgs, f, &out); err != nil {
		return nil, fmt.Errorf("running %s: %w", binPdftotext, err)
	}
	return pdftotextDoc{pages: splitPages(out.String())}, nil
}

func (p *PdftotextParser) ExtractText(pg Page) (string, error) {
	pp, ok := pg.(pdftotextPage)
	if !ok {
		return "", foreignPage(pg)
	}
	return pp.text, nil
}

// splitPages splits pdftotext output on form feeds. The segment after the
// last form feed is not a page.
func splitPages(out string) []string {
	pages := strings.Split(out, "\f")
	if last := pages[len(pages)-1]; strings.TrimSpace(last) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}
