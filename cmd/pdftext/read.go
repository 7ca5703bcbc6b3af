// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdftext/internal/pdftext"
	"github.com/pdiddy/pdftext/internal/render"
	"github.com/pdiddy/pdftext/pkg/types"
)

func runRead(cmd *cobra.Command, args []string) error {
	cfg := types.ReadConfig{
		Backend: types.Backend(viper.GetString("backend")),
		Format:  types.OutputFormat(viper.GetString("format")),
	}
	if len(args) == 1 {
		cfg.Path = args[0]
	}
	return read(cfg, cmd.OutOrStdout())
}

// read extracts the pages of cfg.Path and renders them to w. Nothing is
// written to w unless every page was extracted.
func read(cfg types.ReadConfig, w io.Writer) error {
	cfg = cfg.WithDefaults()

	parser, err := pdftext.New(cfg.Backend)
	if err != nil {
		return err
	}

	pages, err := pdftext.ReadPDF(parser, cfg.Path)
	if err != nil {
		return err
	}

	return render.Write(w, cfg.Format, types.Extraction{
		Source:  cfg.Path,
		Backend: cfg.Backend,
		Pages:   pages,
	})
}
