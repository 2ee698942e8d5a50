package gdi

// Handle is an opaque GDI object identifier (HDC, HFONT, HGDIOBJ).
// The zero value is never a valid handle.
type Handle uintptr

// IsValid reports whether h may denote a live GDI object. GDI signals
// failure either with NULL or, for SelectObject, with HGDI_ERROR.
func (h Handle) IsValid() bool {
	return h != 0 && h != HGDIError
}

// HGDIError is the (HGDIOBJ)-1 sentinel some GDI functions return on failure.
const HGDIError = ^Handle(0)

// GDIError is the DWORD sentinel GetFontData returns on failure.
const GDIError = ^uint32(0)

// API is the capability boundary to the operating system's graphics
// subsystem. Every method corresponds to exactly one native call.
//
// Implementations report failure by returning the native sentinel value
// (a zero Handle, HGDIError or GDIError) together with a non-nil error
// carrying the OS error code, if one is available. Callers in this package
// treat a sentinel as failure even if err is nil.
type API interface {
	CreateCompatibleDC() (Handle, error)
	DeleteDC(dc Handle) error
	CreateFont(desc *FontDescriptor) (Handle, error)
	DeleteObject(obj Handle) error
	// SelectObject selects obj into dc and returns the object it displaced.
	SelectObject(dc Handle, obj Handle) (Handle, error)
	// GetFontData copies font data of the font currently selected into dc.
	// With a nil buf it returns the size of the data.
	GetFontData(dc Handle, table Tag, offset uint32, buf []byte) (uint32, error)
}
