// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes page text extracted from a PDF to an output stream.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdftext/pkg/types"
)

// formFeed terminates each page in text output, matching pdftotext.
const formFeed = "\f"

// Write renders ex to w in the given format. An empty format selects
// types.DefaultOutputFormat.
//
//   - json: the page sequence as an indented JSON array of strings.
//   - yaml: the whole extraction (source, backend, pages).
//   - text: each page's text followed by a form feed and a newline.
func Write(w io.Writer, format types.OutputFormat, ex types.Extraction) error {
	if ex.Pages == nil {
		ex.Pages = []string{}
	}
	if format == "" {
		format = types.DefaultOutputFormat
	}

	switch format {
	case types.OutputJSON:
		data, err := json.MarshalIndent(ex.Pages, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case types.OutputYAML:
		data, err := yaml.Marshal(ex)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case types.OutputText:
		for _, page := range ex.Pages {
			if _, err := io.WriteString(w, page+formFeed+"\n"); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (valid: json, yaml, text)", format)
	}
}
