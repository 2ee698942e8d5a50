package gdi

import "errors"

// --- Device Context --------------------------------------------------------

// DC owns a memory device context. It is never drawn into; it only serves to
// select a font into, so GDI will hand out the font's data.
type DC struct {
	api      API
	h        Handle
	released bool
}

// AcquireDC creates a memory device context compatible with the screen.
func AcquireDC(api API) (*DC, error) {
	h, err := api.CreateCompatibleDC()
	if !h.IsValid() {
		return nil, apiError("create_context", "", err)
	}
	tracer().Debugf("acquired DC %#x", uintptr(h))
	return &DC{api: api, h: h}, nil
}

// Handle returns the native handle of the context.
func (dc *DC) Handle() Handle {
	return dc.h
}

// Release deletes the context. Calling Release more than once is a no-op.
func (dc *DC) Release() error {
	if dc == nil || dc.released {
		return nil
	}
	dc.released = true
	if err := dc.api.DeleteDC(dc.h); err != nil {
		return apiError("delete_context", "", err)
	}
	return nil
}

// --- Font Object -----------------------------------------------------------

// Font owns a GDI font object, created from a face name.
type Font struct {
	api      API
	h        Handle
	faceName string
	selected *Selection // live selection of the font, if any
	released bool
}

// CreateFont creates a font object for face `faceName`, with every other
// attribute left at its default.
func CreateFont(api API, faceName string) (*Font, error) {
	desc, err := NewFontDescriptor(faceName)
	if err != nil {
		return nil, err
	}
	h, err := api.CreateFont(desc)
	if !h.IsValid() {
		return nil, apiError("create_font", faceName, err)
	}
	tracer().Debugf("created font %#x for '%s'", uintptr(h), faceName)
	return &Font{api: api, h: h, faceName: faceName}, nil
}

// Handle returns the native handle of the font object.
func (f *Font) Handle() Handle {
	return f.h
}

// FaceName returns the face name the font has been created from.
func (f *Font) FaceName() string {
	return f.faceName
}

// Release deletes the font object. Calling Release more than once is a no-op.
//
// A font must not be deleted while it is selected into a DC. Release then
// fails with ErrStillSelected and leaves the font intact; release the
// Selection first.
func (f *Font) Release() error {
	if f == nil || f.released {
		return nil
	}
	if f.selected != nil {
		return ErrStillSelected
	}
	f.released = true
	if err := f.api.DeleteObject(f.h); err != nil {
		return apiError("delete_font", f.faceName, err)
	}
	return nil
}

// --- Font Selection --------------------------------------------------------

// Selection is the binding of a Font into a DC. It remembers the object
// which occupied the DC's font slot before and puts it back on Release.
//
// A Selection borrows its DC and Font; it must be released before either
// of them.
type Selection struct {
	dc       *DC
	font     *Font
	prev     Handle
	released bool
}

// Select binds font into dc. If GDI refuses, nothing has changed and no
// restore is owed.
func Select(dc *DC, font *Font) (*Selection, error) {
	if dc == nil || font == nil {
		return nil, apiError("select_font", "", errors.New("missing DC or font"))
	}
	if dc.released || font.released {
		return nil, apiError("select_font", font.faceName, errors.New("resource already released"))
	}
	if font.selected != nil {
		return nil, apiError("select_font", font.faceName, ErrStillSelected)
	}
	prev, err := dc.api.SelectObject(dc.h, font.h)
	if !prev.IsValid() {
		return nil, apiError("select_font", font.faceName, err)
	}
	tracer().Debugf("selected font %#x into DC %#x, displacing %#x",
		uintptr(font.h), uintptr(dc.h), uintptr(prev))
	sel := &Selection{dc: dc, font: font, prev: prev}
	font.selected = sel
	return sel, nil
}

// Font returns the selected font.
func (sel *Selection) Font() *Font {
	return sel.font
}

// IsOpen reports whether font data may be read through this selection.
func (sel *Selection) IsOpen() bool {
	return sel != nil && !sel.released && !sel.dc.released && !sel.font.released
}

// Release puts the previously selected object back into the DC. The restore
// call is issued at most once; further calls are no-ops. If the DC has been
// deleted already, there is nothing to restore into and Release reports
// ErrContextReleased.
func (sel *Selection) Release() error {
	if sel == nil || sel.released {
		return nil
	}
	sel.released = true
	sel.font.selected = nil
	if sel.dc.released {
		return apiError("restore_font", sel.font.faceName, ErrContextReleased)
	}
	h, err := sel.dc.api.SelectObject(sel.dc.h, sel.prev)
	if !h.IsValid() {
		return apiError("restore_font", sel.font.faceName, err)
	}
	return nil
}
