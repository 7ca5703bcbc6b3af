// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Backend identifies the PDF library that parses documents and extracts
// page text.
type Backend string

const (
	BackendLedongthuc Backend = "ledongthuc"
	BackendDslipak    Backend = "dslipak"
	BackendTabula     Backend = "tabula"
	BackendPdftotext  Backend = "pdftotext"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendLedongthuc

// OutputFormat selects how an extraction is written to stdout.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputText OutputFormat = "text"
)

// DefaultOutputFormat prints the page sequence as a JSON array.
const DefaultOutputFormat = OutputJSON

// ReadConfig holds settings for a single read.
type ReadConfig struct {
	// Path is the PDF to read (default "assessment.pdf").
	Path string `json:"path" yaml:"path"`

	// Backend selects the PDF library: ledongthuc, dslipak, tabula, or pdftotext.
	Backend Backend `json:"backend" yaml:"backend"`

	// Format selects the output format: json, yaml, or text.
	Format OutputFormat `json:"format" yaml:"format"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ReadConfig) WithDefaults() ReadConfig {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.Format == "" {
		c.Format = DefaultOutputFormat
	}
	return c
}
