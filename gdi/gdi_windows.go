//go:build windows

package gdi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	gdi32 = windows.NewLazySystemDLL("gdi32.dll")

	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procCreateFontW        = gdi32.NewProc("CreateFontW")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
	procSelectObject       = gdi32.NewProc("SelectObject")
	procGetFontData        = gdi32.NewProc("GetFontData")
)

// System returns the API backed by gdi32.dll.
//
// GDI objects have thread affinity; callers have to stay on one OS thread
// (runtime.LockOSThread) from creating a DC to deleting it.
func System() API {
	return gdi32API{}
}

type gdi32API struct{}

func (gdi32API) CreateCompatibleDC() (Handle, error) {
	if err := procCreateCompatibleDC.Find(); err != nil {
		return 0, err
	}
	r, _, e := procCreateCompatibleDC.Call(0)
	if r == 0 {
		return 0, lastError(e)
	}
	return Handle(r), nil
}

func (gdi32API) DeleteDC(dc Handle) error {
	if err := procDeleteDC.Find(); err != nil {
		return err
	}
	r, _, e := procDeleteDC.Call(uintptr(dc))
	if r == 0 {
		return lastError(e)
	}
	return nil
}

func (gdi32API) CreateFont(desc *FontDescriptor) (Handle, error) {
	if err := procCreateFontW.Find(); err != nil {
		return 0, err
	}
	r, _, e := procCreateFontW.Call(
		uintptr(desc.Height),
		uintptr(desc.Width),
		uintptr(desc.Escapement),
		uintptr(desc.Orientation),
		uintptr(desc.Weight),
		uintptr(desc.Italic),
		uintptr(desc.Underline),
		uintptr(desc.Strike),
		uintptr(desc.CharSet),
		uintptr(desc.OutPrecision),
		uintptr(desc.ClipPrecision),
		uintptr(desc.Quality),
		uintptr(desc.PitchAndFamily),
		uintptr(unsafe.Pointer(&desc.FaceName[0])),
	)
	if r == 0 {
		return 0, lastError(e)
	}
	return Handle(r), nil
}

func (gdi32API) DeleteObject(obj Handle) error {
	if err := procDeleteObject.Find(); err != nil {
		return err
	}
	r, _, e := procDeleteObject.Call(uintptr(obj))
	if r == 0 {
		return lastError(e)
	}
	return nil
}

func (gdi32API) SelectObject(dc Handle, obj Handle) (Handle, error) {
	if err := procSelectObject.Find(); err != nil {
		return 0, err
	}
	r, _, e := procSelectObject.Call(uintptr(dc), uintptr(obj))
	if h := Handle(r); !h.IsValid() {
		return h, lastError(e)
	}
	return Handle(r), nil
}

func (gdi32API) GetFontData(dc Handle, table Tag, offset uint32, buf []byte) (uint32, error) {
	if err := procGetFontData.Find(); err != nil {
		return GDIError, err
	}
	var r uintptr
	var e error
	if len(buf) == 0 {
		r, _, e = procGetFontData.Call(uintptr(dc), uintptr(table.DWORD()), uintptr(offset), 0, 0)
	} else {
		r, _, e = procGetFontData.Call(uintptr(dc), uintptr(table.DWORD()), uintptr(offset),
			uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	}
	if n := uint32(r); n == GDIError {
		return n, lastError(e)
	}
	return uint32(r), nil
}

// lastError filters the error returned by LazyProc.Call, which is never nil
// but may carry ERROR_SUCCESS if the failing GDI function did not set one.
func lastError(e error) error {
	if errno, ok := e.(windows.Errno); ok && errno == 0 {
		return nil
	}
	return e
}
