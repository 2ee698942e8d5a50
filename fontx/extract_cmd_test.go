package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontextract/config"
	"github.com/npillmayer/fontextract/gdi"
	"github.com/npillmayer/fontextract/internal/gdimock"
	"github.com/npillmayer/fontextract/output"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func otfData() []byte {
	return append([]byte("OTTO"), make([]byte, 64)...)
}

// recordingSink counts writes and forwards them to a DirSink.
type recordingSink struct {
	output.DirSink
	writes int
}

func (s *recordingSink) Write(data []byte, faceName string, ext string) (string, error) {
	s.writes++
	return s.DirSink.Write(data, faceName, ext)
}

type failingSink struct{}

func (failingSink) Write([]byte, string, string) (string, error) {
	return "", &output.IOError{Path: "nowhere", Err: errors.New("disk full")}
}

func TestRunWritesFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract", "fontextract.gdi", "fontextract.output")
	defer teardown()
	//
	dir := t.TempDir()
	flags := config.FromMap(map[string]string{
		config.KeyFontName:  "Segoe UI",
		config.KeyOutputDir: dir,
	})
	mock := gdimock.New(otfData())
	err := run(flags, "", nil, mock, output.DirSink{})
	require.NoError(t, err)
	written, err := os.ReadFile(filepath.Join(dir, "Segoe UI.otf"))
	require.NoError(t, err)
	assert.Equal(t, mock.Data, written)
	assert.Empty(t, mock.Leaks())
	assert.Equal(t, exitOK, exitCode(err))
}

func TestRunWithConfigFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract", "fontextract.config")
	defer teardown()
	//
	dir := t.TempDir()
	confPath := filepath.Join(t.TempDir(), "fontx.toml")
	require.NoError(t, os.WriteFile(confPath, []byte(
		"font-name = \"Cambria\"\ncollection = true\noutput-dir = \""+filepath.ToSlash(dir)+"\"\n"), 0644))
	mock := gdimock.New(append([]byte("ttcf"), make([]byte, 32)...))
	err := run(config.FromMap(nil), confPath, nil, mock, output.DirSink{})
	require.NoError(t, err)
	assert.Equal(t, []gdi.Tag{gdi.CollectionTable, gdi.CollectionTable}, mock.Tables)
	_, err = os.Stat(filepath.Join(dir, "Cambria.ttc"))
	assert.NoError(t, err)
}

func TestRunExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract")
	defer teardown()
	//
	tests := []struct {
		name  string
		flags map[string]string
		conf  string
		api   gdi.API
		code  int
	}{
		{"missing font name", nil, "", gdimock.New(otfData()), exitUsage},
		{"missing config file", map[string]string{config.KeyFontName: "Arial"},
			filepath.Join(t.TempDir(), "none.toml"), gdimock.New(otfData()), exitUsage},
		{"invalid face name", map[string]string{config.KeyFontName: "A Face Name Much Too Long For LOGFONTW"},
			"", gdimock.New(otfData()), exitExtract},
		{"zero size font", map[string]string{config.KeyFontName: "GhostFont"},
			"", gdimock.New(nil), exitExtract},
		{"GDI failure", map[string]string{config.KeyFontName: "Arial"},
			"", gdimock.New(otfData()).FailAt(gdimock.CreateFont), exitExtract},
		{"size mismatch", map[string]string{config.KeyFontName: "Arial"},
			"", gdimock.New(otfData()).ReportFilled(10), exitExtract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			sink := &recordingSink{DirSink: output.DirSink{Dir: dir}}
			err := run(config.FromMap(tt.flags), tt.conf, nil, tt.api, sink)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(err))
			assert.Equal(t, 0, sink.writes, "no write may be attempted")
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "no output file may be created")
		})
	}
}

func TestRunWriteFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract")
	defer teardown()
	//
	flags := config.FromMap(map[string]string{config.KeyFontName: "Arial"})
	mock := gdimock.New(otfData())
	err := run(flags, "", nil, mock, failingSink{})
	require.Error(t, err)
	assert.Equal(t, exitWrite, exitCode(err))
	assert.Empty(t, mock.Leaks())
}

func TestRunCallsSinkOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract")
	defer teardown()
	//
	sink := &recordingSink{DirSink: output.DirSink{Dir: t.TempDir()}}
	flags := config.FromMap(map[string]string{config.KeyFontName: "Arial"})
	require.NoError(t, run(flags, "", nil, gdimock.New(otfData()), sink))
	assert.Equal(t, 1, sink.writes)
}

func TestDescribeAddsHints(t *testing.T) {
	err := describe(&gdi.ZeroSizeFontError{FaceName: "GhostFont"})
	assert.Contains(t, err.Error(), "substitute")
	err = describe(&gdi.APIError{Call: "create_font", Err: gdimock.ErrInjected})
	assert.Contains(t, err.Error(), "OS error code 87")
	var apiErr *gdi.APIError
	assert.True(t, errors.As(err, &apiErr))
	err = describe(gdi.ErrUnsupported)
	assert.ErrorIs(t, err, gdi.ErrUnsupported)
	assert.Contains(t, err.Error(), "Windows")
}
