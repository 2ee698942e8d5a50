/*
Command fontx extracts an installed font from Windows GDI and saves it as a
font file.

	fontx --font-name "Segoe UI" --output-dir ./recovered
	fontx --config fontx.toml
	fontx --font-name "Cambria" --collection

The file extension (otf, ttf, ttc or bin) is derived from the data's
signature.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fontextract'
func tracer() tracing.Trace {
	return tracing.Select("fontextract")
}

// all tracer keys of the module, for level settings
var traceKeys = []string{
	"fontextract",
	"fontextract.gdi",
	"fontextract.output",
	"fontextract.config",
}

// exit codes
const (
	exitOK = iota
	exitUsage
	exitExtract
	exitWrite
	exitTracing
)

func main() {
	initDisplay()
	if err := initTracing("Info"); err != nil {
		fmt.Printf("error configuring tracing: %v\n", err)
		os.Exit(exitTracing)
	}
	commando.
		SetExecutableName("fontx").
		SetVersion("v0.1.0").
		SetDescription("Extracts font data of an installed font and saves it as a font file.")

	commando.
		Register(nil).
		AddFlag("font-name,f", "name of the font to extract (e.g. \"Arial\", \"Times New Roman\")", commando.String, "-").
		AddFlag("output-dir,o", "directory where the font file should be saved", commando.String, "-").
		AddFlag("config,c", "TOML configuration file", commando.String, "-").
		AddFlag("collection,C", "extract the complete font collection (ttc) the font belongs to", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		SetAction(runExtractCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all tracers of the module to Go's log package.
func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.root":      "Error",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// setTraceLevel sets the level of all tracers of the module.
func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("trace level is %s", l)
}

// flagString returns a string flag's value, with "-" denoting "not given".
func flagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf(exitUsage, "invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf(exitUsage, "invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(code int, format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(code)
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var ee *extractError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ee):
		return ee.code
	}
	return exitUsage
}
