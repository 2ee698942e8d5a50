/*
Package gdi wraps the handful of Windows GDI calls needed to pull the raw
bytes of an installed font out of the operating system.

GDI hands out three kinds of resources on the way to a font's data:

▪︎ a memory device context (DC), used only as a vehicle for the font,

▪︎ a font object, created from a logical font descriptor (essentially the
face name),

▪︎ the selection of the font object into the DC, which displaces whatever
object occupied the DC's font slot before.

Each of these is represented by a type with an explicit Release method.
Clients push releases onto a Releaser in acquisition order and unwind it on
exit, which runs them in reverse:

	var rel gdi.Releaser
	defer rel.Unwind()
	dc, err := gdi.AcquireDC(api)
	if err != nil {
	    return err
	}
	rel.Push("dc", dc.Release)
	…

Font data is read through a Selection, never through a bare DC, so it is
impossible to ask for data after the font has been deselected.

All OS calls go through the API interface. On Windows, System returns an
implementation backed by gdi32.dll; on other platforms every call fails with
ErrUnsupported. Tests substitute a mock.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package gdi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextract.gdi'
func tracer() tracing.Trace {
	return tracing.Select("fontextract.gdi")
}
