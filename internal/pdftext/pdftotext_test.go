// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	available bool
	output    string
	runErr    error

	gotName  string
	gotArgs  []string
	gotStdin []byte
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.available {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	m.gotName = name
	m.gotArgs = args
	data, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}
	m.gotStdin = data
	if m.runErr != nil {
		return m.runErr
	}
	_, err = io.WriteString(stdout, m.output)
	return err
}

func TestPdftotextParser(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake body")
	path := writeFile(t, "doc.pdf", pdf)
	m := &mockExecutor{available: true, output: "Hello\n\f\fWorld\n\f"}

	got, err := ReadPDF(&PdftotextParser{exec: m}, path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello\n", "", "World\n"}, got)
	assert.Equal(t, "pdftotext", m.gotName)
	assert.Equal(t, []string{"-layout", "-", "-"}, m.gotArgs)
	assert.Equal(t, pdf, m.gotStdin, "the open file should be piped to stdin")
}

func TestPdftotextParser_Unavailable(t *testing.T) {
	path := writeFile(t, "doc.pdf", []byte("%PDF-1.4"))

	_, err := ReadPDF(&PdftotextParser{exec: &mockExecutor{}}, path)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestPdftotextParser_RunFailure(t *testing.T) {
	path := writeFile(t, "doc.pdf", []byte("not a pdf"))
	m := &mockExecutor{available: true, runErr: errors.New("exit status 1: Syntax Error: Couldn't find trailer dictionary")}

	got, err := ReadPDF(&PdftotextParser{exec: m}, path)
	assert.Nil(t, got)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "running pdftotext")
	assert.Contains(t, err.Error(), "trailer dictionary")
}

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{name: "empty output has no pages", out: "", want: []string{}},
		{name: "one page", out: "Hello\n\f", want: []string{"Hello\n"}},
		{name: "blank middle page", out: "Hello\n\f\fWorld\n\f", want: []string{"Hello\n", "", "World\n"}},
		{name: "all pages blank", out: "\f\f", want: []string{"", ""}},
		{name: "missing final form feed", out: "a\fb", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPages(tt.out))
		})
	}
}

func TestPdftotextParser_ForeignPage(t *testing.T) {
	_, err := NewPdftotextParser().ExtractText(fakePage(1))
	assert.ErrorIs(t, err, ErrForeignPage)
}
