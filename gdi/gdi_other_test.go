//go:build !windows

package gdi

import (
	"errors"
	"testing"
)

func TestSystemIsUnsupported(t *testing.T) {
	api := System()
	if _, err := api.CreateCompatibleDC(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := AcquireDC(api); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected AcquireDC to wrap ErrUnsupported, got %v", err)
	}
	if n, _ := api.GetFontData(0, WholeFont, 0, nil); n != GDIError {
		t.Errorf("expected GetFontData to report GDI_ERROR, got %d", n)
	}
}
