//go:build !windows

package gdi

// System returns the platform's GDI. There is no GDI outside of Windows, so
// every call of the returned API fails with ErrUnsupported.
func System() API {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) CreateCompatibleDC() (Handle, error)        { return 0, ErrUnsupported }
func (unsupported) DeleteDC(Handle) error                      { return ErrUnsupported }
func (unsupported) CreateFont(*FontDescriptor) (Handle, error) { return 0, ErrUnsupported }
func (unsupported) DeleteObject(Handle) error                  { return ErrUnsupported }
func (unsupported) SelectObject(Handle, Handle) (Handle, error) {
	return 0, ErrUnsupported
}
func (unsupported) GetFontData(Handle, Tag, uint32, []byte) (uint32, error) {
	return GDIError, ErrUnsupported
}
