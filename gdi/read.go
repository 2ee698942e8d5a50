package gdi

// ReadFontData retrieves the data of the font bound by `sel`, following
// GDI's size-then-fill convention:
//
// (1) ask for the size of the data, passing no buffer (QueryFontDataSize),
//
// (2) allocate a buffer of exactly that size and ask again, passing the
// buffer; check that GDI copied exactly the announced number of bytes
// (FillFontData).
//
// `table` selects what to read: WholeFont for the font file,
// CollectionTable for the complete collection file, or a single table tag.
func ReadFontData(sel *Selection, table Tag) ([]byte, error) {
	size, err := QueryFontDataSize(sel, table)
	if err != nil {
		return nil, err
	}
	return FillFontData(sel, table, size)
}

// QueryFontDataSize is the first phase of ReadFontData. A size of 0 is
// reported as a *ZeroSizeFontError: some system-substituted fonts have no
// physical data.
func QueryFontDataSize(sel *Selection, table Tag) (uint32, error) {
	if !sel.IsOpen() {
		return 0, ErrSelectionReleased
	}
	faceName := sel.font.faceName
	size, err := sel.dc.api.GetFontData(sel.dc.h, table, 0, nil)
	if size == GDIError {
		return 0, apiError("get_font_data(size)", faceName, err)
	}
	if size == 0 {
		return 0, &ZeroSizeFontError{FaceName: faceName}
	}
	tracer().Debugf("font data of '%s' [%s] has %d bytes", faceName, table, size)
	return size, nil
}

// FillFontData is the second phase of ReadFontData. It allocates `size`
// bytes and has GDI fill them. `size` must be a size reported by
// QueryFontDataSize; the GDI_ERROR sentinel is rejected with ErrInvalidSize.
//
// A font provider may change between the two phases, e.g. if the font is
// uninstalled in the meantime. A size mismatch is therefore reported as a
// *SizeMismatchError and never as partial success.
func FillFontData(sel *Selection, table Tag, size uint32) ([]byte, error) {
	if !sel.IsOpen() {
		return nil, ErrSelectionReleased
	}
	if size == 0 {
		return nil, &ZeroSizeFontError{FaceName: sel.font.faceName}
	}
	if size == GDIError {
		return nil, apiError("get_font_data(fill)", sel.font.faceName, ErrInvalidSize)
	}
	buf := make([]byte, size)
	n, err := sel.dc.api.GetFontData(sel.dc.h, table, 0, buf)
	if n == GDIError {
		return nil, apiError("get_font_data(fill)", sel.font.faceName, err)
	}
	if n != size {
		return nil, &SizeMismatchError{Expected: size, Got: n}
	}
	return buf, nil
}
