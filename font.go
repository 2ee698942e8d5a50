/*
Package fontextract recovers font files from fonts installed in the operating
system.

Windows will happily render with fonts which are nowhere to be found as a
standalone file, e.g. fonts installed from memory, fonts managed by a font
service, or fonts of which only the registry entry survived. GDI still hands
out the raw data of such a font to anyone who selects it into a device
context. ExtractFont does exactly that and returns the bytes, together with
the file extension matching the data's format signature.

	x, err := fontextract.ExtractFont(gdi.System(), "Segoe UI")
	if err != nil {
	    …
	}
	os.WriteFile("Segoe UI."+x.Extension, x.Data, 0644)

Writing the data is up to the client; package output has a sink which
writes atomically.

# Status

Works on Windows only. On other platforms gdi.System returns an API where
every call fails.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontextract

import (
	"github.com/npillmayer/fontextract/fontformat"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextract'
func tracer() tracing.Trace {
	return tracing.Select("fontextract")
}

// Extraction is the data of an installed font, as handed out by the OS.
type Extraction struct {
	FaceName  string            // face name the font has been requested by
	Data      []byte            // raw data, byte-identical to what the OS reported
	Format    fontformat.Format // format, judging from the data's signature
	Extension string            // file extension for Format, without dot
}

// Size returns the number of bytes extracted.
func (x *Extraction) Size() int {
	if x == nil {
		return 0
	}
	return len(x.Data)
}
