package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontextract"
	"github.com/npillmayer/fontextract/config"
	"github.com/npillmayer/fontextract/gdi"
	"github.com/npillmayer/fontextract/output"
	"github.com/npillmayer/schuko"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// extractError attaches an exit code to an error.
type extractError struct {
	code int
	err  error
}

func (e *extractError) Error() string { return e.err.Error() }
func (e *extractError) Unwrap() error { return e.err }

func runExtractCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	collection := ""
	if mustFlagBool(flags["collection"], "collection") {
		collection = "true"
	}
	flagConf := config.FromMap(map[string]string{
		config.KeyFontName:   flagString(flags["font-name"], "font-name"),
		config.KeyOutputDir:  flagString(flags["output-dir"], "output-dir"),
		config.KeyCollection: collection,
		config.KeyTrace:      flagString(flags["trace"], "trace"),
	})
	var prompt config.Prompter
	if config.Interactive() {
		prompt = config.TerminalPrompter{}
	}
	err := run(flagConf, flagString(flags["config"], "config"), prompt, gdi.System(), output.DirSink{})
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitCode(err))
	}
}

// run resolves the settings, extracts the font and hands it to the sink.
// A sink of type output.DirSink without a directory gets the configured
// output directory.
func run(flagConf schuko.Configuration, configPath string, prompt config.Prompter,
	api gdi.API, sink output.Sink) error {
	//
	settings, err := resolveSettings(flagConf, configPath, prompt)
	if err != nil {
		return &extractError{code: exitUsage, err: err}
	}
	if settings.TraceLevel != "" {
		setTraceLevel(settings.TraceLevel)
	}
	if ds, ok := sink.(output.DirSink); ok && ds.Dir == "" {
		sink = output.DirSink{Dir: settings.OutputDir}
	}
	pterm.Info.Printf("Extracting font data for: %s\n", settings.FontName)
	reportStandaloneFile(settings.FontName)
	var opts []fontextract.Option
	if settings.Collection {
		opts = append(opts, fontextract.WholeCollection)
	}
	x, err := fontextract.ExtractFont(api, settings.FontName, opts...)
	if err != nil {
		return &extractError{code: exitExtract, err: describe(err)}
	}
	pterm.Printf("Font data size: %d bytes, format %s\n", x.Size(), x.Format)
	path, err := sink.Write(x.Data, x.FaceName, x.Extension)
	if err != nil {
		return &extractError{code: exitWrite, err: err}
	}
	pterm.Success.Printf("Font data written to: %s\n", path)
	return nil
}

func resolveSettings(flagConf schuko.Configuration, configPath string, prompt config.Prompter) (*config.Settings, error) {
	var fileConf schuko.Configuration
	if configPath != "" {
		c, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		fileConf = c
	}
	return config.Resolve(flagConf, fileConf, prompt)
}

// reportStandaloneFile tells the user if there is a font file which
// matches the face name anyway. Extraction proceeds regardless.
func reportStandaloneFile(faceName string) {
	if path, err := findfont.Find(faceName); err == nil {
		tracer().Infof("a font file matching '%s' exists: %s", faceName, path)
	} else {
		tracer().Debugf("no font file found for '%s'", faceName)
	}
}

// describe adds a hint to errors users are likely to run into.
func describe(err error) error {
	var zero *gdi.ZeroSizeFontError
	var mismatch *gdi.SizeMismatchError
	var apiErr *gdi.APIError
	switch {
	case errors.Is(err, gdi.ErrUnsupported):
		return fmt.Errorf("%w (font extraction requires Windows)", err)
	case errors.As(err, &zero):
		return fmt.Errorf("%w; the font may be a substitute without physical data", err)
	case errors.As(err, &mismatch):
		return fmt.Errorf("%w; the font may have been (un)installed during extraction", err)
	case errors.As(err, &apiErr) && apiErr.Code() != 0:
		return fmt.Errorf("%w [OS error code %d]", err, apiErr.Code())
	}
	return err
}
