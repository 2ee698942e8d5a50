package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		face, ext, expected string
	}{
		{"Arial", "ttf", "Arial.ttf"},
		{"Segoe UI", "otf", "Segoe UI.otf"},
		{"arial.ttf", "otf", "arial.otf"},
		{"Cambria.TTC", "ttc", "Cambria.ttc"},
		{"Font v1.2", "ttf", "Font v1.2.ttf"},
		{"a/b\\c:d*e?f\"g<h>i|j", "bin", "a_b_c_d_e_f_g_h_i_j.bin"},
		{"tab\there", "ttf", "tab_here.ttf"},
		{"Trailing. ", "ttf", "Trailing.ttf"},
		{"  ", "ttf", "font.ttf"},
		{"Arial", ".ttf", "Arial.ttf"},
		{"Arial", "", "Arial"},
		{"Con", "ttf", "_Con.ttf"},
		{"nul", "otf", "_nul.otf"},
		{"AUX.ttf", "ttf", "_AUX.ttf"},
		{"PRN", "bin", "_PRN.bin"},
		{"COM1", "ttf", "_COM1.ttf"},
		{"lpt9", "ttc", "_lpt9.ttc"},
		{"Con.v2", "ttf", "_Con.v2.ttf"},
		{"COM0", "ttf", "COM0.ttf"},
		{"COM10", "ttf", "COM10.ttf"},
		{"Console", "ttf", "Console.ttf"},
		{"Nullbyte", "otf", "Nullbyte.otf"},
	}
	for _, tt := range tests {
		if result := FileName(tt.face, tt.ext); result != tt.expected {
			t.Errorf("FileName(%q, %q) = %q; want %q", tt.face, tt.ext, result, tt.expected)
		}
	}
}

func TestDirSinkWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract.output")
	defer teardown()
	//
	dir := filepath.Join(t.TempDir(), "nested", "out")
	data := []byte("OTTO and then some")
	path, err := DirSink{Dir: dir}.Write(data, "Segoe UI", "otf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Segoe UI.otf"), path)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, written)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may be left over")
}

func TestDirSinkReplacesExistingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract.output")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Arial.ttf"), []byte("old data, longer"), 0644))
	path, err := DirSink{Dir: dir}.Write([]byte("new"), "Arial", "ttf")
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), written)
}

func TestDirSinkUnwritableDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract.output")
	defer teardown()
	//
	dir := t.TempDir()
	notADir := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0644))
	_, err := DirSink{Dir: notADir}.Write([]byte("OTTO"), "Arial", "otf")
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, notADir, ioErr.Path)
	assert.NotNil(t, errors.Unwrap(err))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
