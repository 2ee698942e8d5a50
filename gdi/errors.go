package gdi

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrUnsupported is returned by every call of the API on platforms without GDI.
var ErrUnsupported = errors.New("GDI is not available on this platform")

// ErrSelectionReleased is returned when font data is requested through a
// selection which has already been released, or whose DC is gone.
var ErrSelectionReleased = errors.New("font selection has been released")

// ErrStillSelected is returned when a font is to be deleted or selected
// while it is selected into a DC.
var ErrStillSelected = errors.New("font is still selected into a device context")

// ErrContextReleased is reported when a font selection is undone after its
// device context has been deleted.
var ErrContextReleased = errors.New("device context has already been released")

// ErrInvalidSize is returned when font data is to be filled into a buffer
// whose size is the GDI_ERROR sentinel.
var ErrInvalidSize = errors.New("invalid font data size")

// APIError reports a failed GDI call. Call names the step of the extraction
// protocol which failed ("create_context", "create_font", "select_font",
// "get_font_data(size)", "get_font_data(fill)"); Err is the OS error, if any.
type APIError struct {
	Call     string
	FaceName string // set if the call is associated with a face name
	Err      error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("GDI call '%s' failed", e.Call)
	if e.FaceName != "" {
		msg = fmt.Sprintf("%s (font: '%s')", msg, e.FaceName)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Code returns the OS error code of the failed call, or 0 if the OS did not
// report one.
func (e *APIError) Code() uint32 {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return uint32(errno)
	}
	return 0
}

// ZeroSizeFontError reports a font for which GDI has no extractable data.
// This happens for some system-substituted fonts.
type ZeroSizeFontError struct {
	FaceName string
}

func (e *ZeroSizeFontError) Error() string {
	return fmt.Sprintf("font '%s' reported size 0 or could not be read", e.FaceName)
}

// SizeMismatchError reports that the second GetFontData call copied a
// different number of bytes than the first one announced, e.g. because the
// font was (un)installed in between.
type SizeMismatchError struct {
	Expected uint32
	Got      uint32
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("GetFontData reported unexpected size: expected %d, got %d", e.Expected, e.Got)
}

// FaceNameError reports a face name which cannot be handed to GDI unaltered.
type FaceNameError struct {
	FaceName string
	Reason   string
}

func (e *FaceNameError) Error() string {
	return fmt.Sprintf("invalid face name %q: %s", e.FaceName, e.Reason)
}

func apiError(call string, faceName string, err error) *APIError {
	return &APIError{Call: call, FaceName: faceName, Err: err}
}
