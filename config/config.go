/*
Package config resolves the settings of a font extraction run.

Settings may come from three sources, in order of precedence:

▪︎ command-line flags,

▪︎ a TOML configuration file,

▪︎ an interactive prompt (for the font name only, and only if a terminal is
attached).

Flags and file are both presented as schuko.Configuration. A configuration
file looks like this:

	font-name  = "Segoe UI"
	output-dir = "C:/recovered"
	collection = false
	trace      = "Info"

The same settings may be given in NestedText format, in a file ending in
".nt".

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextract.config'
func tracer() tracing.Trace {
	return tracing.Select("fontextract.config")
}

// Configuration keys
const (
	KeyFontName   = "font-name"
	KeyOutputDir  = "output-dir"
	KeyCollection = "collection"
	KeyTrace      = "trace"
)

// DefaultOutputDir is used if no output directory is configured.
const DefaultOutputDir = "."

// ErrMissingSetting is wrapped by errors for settings which are required but
// could not be resolved.
var ErrMissingSetting = errors.New("missing setting")

// Settings are the resolved parameters of one extraction run.
type Settings struct {
	FontName   string // face name of the font to extract
	OutputDir  string // directory to write the font file to
	Collection bool   // extract the complete collection
	TraceLevel string // Debug, Info or Error; empty if not configured
}

// Prompter asks the user for a value.
type Prompter interface {
	Prompt(question string) (string, error)
}

// LoadFile reads a configuration file. Files ending in ".nt" are read as
// NestedText, all others as TOML.
func LoadFile(path string) (schuko.Configuration, error) {
	k := koanf.New(".")
	var parser koanf.Parser = toml.Parser()
	if filepath.Ext(path) == ".nt" {
		parser = koanfadapter.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("cannot load configuration file %s: %w", path, err)
	}
	tracer().Debugf("loaded configuration file %s, keys = %v", path, k.Keys())
	return koanfadapter.New(k, "", nil), nil
}

// Resolve merges flags and file (either of which may be nil) into Settings.
// If neither has a font name and prompt is non-nil, the user is asked for
// one.
func Resolve(flags, file schuko.Configuration, prompt Prompter) (*Settings, error) {
	confs := make([]schuko.Configuration, 0, 2)
	for _, c := range []schuko.Configuration{flags, file} {
		if c != nil {
			confs = append(confs, c)
		}
	}
	s := &Settings{
		FontName:   lookupString(confs, KeyFontName),
		OutputDir:  lookupString(confs, KeyOutputDir),
		Collection: lookupBool(confs, KeyCollection),
		TraceLevel: lookupString(confs, KeyTrace),
	}
	if s.FontName == "" && prompt != nil {
		name, err := prompt.Prompt("Name of the font to extract")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingSetting, KeyFontName, err)
		}
		s.FontName = strings.TrimSpace(name)
	}
	if s.FontName == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingSetting, KeyFontName)
	}
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	if s.TraceLevel != "" {
		switch strings.ToLower(s.TraceLevel) {
		case "debug", "info", "error":
		default:
			return nil, fmt.Errorf("invalid trace level %q (expected Debug|Info|Error)", s.TraceLevel)
		}
	}
	tracer().Debugf("settings = %+v", *s)
	return s, nil
}

// FromMap creates a configuration from key/value pairs, e.g. from parsed
// command-line flags. Empty values are left out, so they do not shadow
// values of lower precedence.
func FromMap(m map[string]string) schuko.Configuration {
	conf := testconfig.Conf{}
	for k, v := range m {
		if v = strings.TrimSpace(v); v != "" {
			conf[k] = v
		}
	}
	return conf
}

func lookupString(confs []schuko.Configuration, key string) string {
	for _, c := range confs {
		if c.IsSet(key) {
			if v := strings.TrimSpace(c.GetString(key)); v != "" {
				return v
			}
		}
	}
	return ""
}

func lookupBool(confs []schuko.Configuration, key string) bool {
	for _, c := range confs {
		if c.IsSet(key) {
			return c.GetBool(key)
		}
	}
	return false
}
