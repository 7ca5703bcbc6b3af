// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pdftext/pkg/types"
)

// Backends lists the parser backends New accepts, default first.
func Backends() []types.Backend {
	return []types.Backend{
		types.BackendLedongthuc,
		types.BackendDslipak,
		types.BackendTabula,
		types.BackendPdftotext,
	}
}

// New returns the parser for the named backend. An empty name selects
// types.DefaultBackend.
func New(b types.Backend) (Parser, error) {
	if b == "" {
		b = types.DefaultBackend
	}
	switch b {
	case types.BackendLedongthuc:
		return &LedongthucParser{}, nil
	case types.BackendDslipak:
		return &DslipakParser{}, nil
	case types.BackendTabula:
		return &TabulaParser{}, nil
	case types.BackendPdftotext:
		return NewPdftotextParser(), nil
	default:
		names := make([]string, 0, len(Backends()))
		for _, n := range Backends() {
			names = append(names, string(n))
		}
		return nil, fmt.Errorf("unknown backend %q (valid: %s)", b, strings.Join(names, ", "))
	}
}
