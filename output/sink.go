/*
Package output writes extracted font data to disk.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fontextract/fontformat"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextract.output'
func tracer() tracing.Trace {
	return tracing.Select("fontextract.output")
}

// Sink accepts the data of an extracted font.
type Sink interface {
	// Write stores data for face `faceName` with file extension `ext` and
	// returns where it went.
	Write(data []byte, faceName string, ext string) (string, error)
}

// IOError reports a failure to create or write an output file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot write font file '%s': %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// DirSink writes font files into a directory.
type DirSink struct {
	Dir string // output directory, created if missing; "" means "."
}

var _ Sink = DirSink{}

// Write writes data verbatim to Dir/FileName(faceName, ext).
//
// The file appears under its final name only after all of its data has been
// written; on failure, no file (and no partial file) is left behind.
// An existing file of the same name is replaced.
func (s DirSink) Write(data []byte, faceName string, ext string) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	target := filepath.Join(dir, FileName(faceName, ext))
	tracer().Debugf("writing %d bytes to %s", len(data), target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &IOError{Path: dir, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".fontextract-*")
	if err != nil {
		return "", &IOError{Path: target, Err: err}
	}
	tmpname := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmpname, 0644)
	}
	if err == nil {
		err = os.Rename(tmpname, target)
	}
	if err != nil {
		if rerr := os.Remove(tmpname); rerr != nil && !os.IsNotExist(rerr) {
			tracer().Errorf("cannot remove temporary file %s: %v", tmpname, rerr)
		}
		return "", &IOError{Path: target, Err: err}
	}
	tracer().Infof("wrote font file %s", target)
	return target, nil
}

// FileName derives a file name for face `faceName` with extension `ext`.
//
// If the face name already ends in a font extension (e.g. "arial.ttf"), that
// extension is replaced, otherwise `ext` is appended ("Segoe UI" → "Segoe
// UI.ttf"). Characters which are not allowed in Windows file names are
// replaced by underscores. Names of Windows devices ("CON", "NUL", "COM1",
// …) get a leading underscore.
func FileName(faceName string, ext string) string {
	name := sanitize(strings.TrimSpace(faceName))
	if e := filepath.Ext(name); e != "" && fontformat.IsFontExtension(e) {
		name = strings.TrimSuffix(name, e)
	}
	name = strings.TrimRight(name, ". ")
	if name == "" {
		name = "font"
	}
	if isReservedName(name) {
		name = "_" + name
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return '_'
		}
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		}
		return r
	}, s)
}

// isReservedName reports whether Windows would resolve a file name to a
// device. Only the part before the first dot counts, case-insensitively.
func isReservedName(name string) bool {
	base := name
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	base = strings.ToUpper(strings.TrimRight(base, " "))
	switch base {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(base) == 4 && (strings.HasPrefix(base, "COM") || strings.HasPrefix(base, "LPT")) {
		return base[3] >= '1' && base[3] <= '9'
	}
	return false
}
