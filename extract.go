package fontextract

import (
	"runtime"

	"github.com/npillmayer/fontextract/fontformat"
	"github.com/npillmayer/fontextract/gdi"
)

// Option influences the extraction of a font.
type Option int

const (
	// WholeCollection extracts the complete TrueType collection a face belongs
	// to, instead of the single font of the face.
	WholeCollection Option = iota
)

// extraction states, for tracing
type state int

const (
	stStart state = iota
	stContextAcquired
	stFontCreated
	stSelected
	stSizeQueried
	stDataFilled
	stSniffed
	stDone
)

var stateNames = [...]string{
	"Start", "ContextAcquired", "FontCreated", "Selected", "SizeQueried", "DataFilled", "Sniffed", "Done",
}

func (s state) String() string {
	return stateNames[s]
}

// ExtractFont retrieves the data of the installed font with face name
// `faceName` from the graphics subsystem `api` (usually gdi.System()).
//
// ExtractFont acquires a device context, creates a font object for the face,
// selects the font into the context and reads the font's data through the
// selection. On every exit path, these resources are released in reverse
// order of acquisition: the selection is undone first, then the font
// object is deleted, then the context. Release failures are traced but do not
// change the outcome.
//
// Errors are *gdi.APIError, *gdi.ZeroSizeFontError, *gdi.SizeMismatchError
// or *gdi.FaceNameError. ExtractFont does not retry.
func ExtractFont(api gdi.API, faceName string, opts ...Option) (x *Extraction, err error) {
	table := gdi.WholeFont
	for _, opt := range opts {
		if opt == WholeCollection {
			table = gdi.CollectionTable
		}
	}
	runtime.LockOSThread() // GDI objects are bound to the creating thread
	defer runtime.UnlockOSThread()
	//
	var rel gdi.Releaser
	st := stStart
	defer func() {
		if err != nil {
			tracer().Debugf("extraction of '%s' failed in state %s, unwinding", faceName, st)
		}
		if rerr := rel.Unwind(); rerr != nil {
			tracer().Errorf("cleanup after extraction of '%s': %v", faceName, rerr)
		}
	}()
	tracer().Debugf("extracting '%s' [%s]", faceName, table)
	dc, err := gdi.AcquireDC(api)
	if err != nil {
		return nil, err
	}
	rel.Push("device context", dc.Release)
	st = next(st, stContextAcquired)
	font, err := gdi.CreateFont(api, faceName)
	if err != nil {
		return nil, err
	}
	rel.Push("font object", font.Release)
	st = next(st, stFontCreated)
	sel, err := gdi.Select(dc, font)
	if err != nil {
		return nil, err
	}
	rel.Push("font selection", sel.Release)
	st = next(st, stSelected)
	size, err := gdi.QueryFontDataSize(sel, table)
	if err != nil {
		return nil, err
	}
	st = next(st, stSizeQueried)
	data, err := gdi.FillFontData(sel, table, size)
	if err != nil {
		return nil, err
	}
	st = next(st, stDataFilled)
	format := fontformat.Sniff(data)
	st = next(st, stSniffed)
	x = &Extraction{
		FaceName:  faceName,
		Data:      data,
		Format:    format,
		Extension: format.Extension(),
	}
	st = next(st, stDone)
	tracer().Infof("extracted %d bytes of '%s', format %s", len(data), faceName, format)
	return x, nil
}

func next(from, to state) state {
	tracer().Debugf("%s -> %s", from, to)
	return to
}
