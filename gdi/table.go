package gdi

// Tag is an OpenType table tag, as used by GetFontData to select a single
// table out of a font. Tag 0 selects the complete font.
type Tag uint32

// WholeFont makes GetFontData return the complete font file, starting at
// the font's offset table.
const WholeFont Tag = 0

// CollectionTable makes GetFontData return the complete TrueType collection
// file the selected font belongs to.
var CollectionTable = T("ttcf")

// T creates a Tag from a string, e.g. T("ttcf"). Strings shorter than 4
// bytes are padded with spaces, longer ones are cut.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(uint32(t[0])<<24 | uint32(t[1])<<16 | uint32(t[2])<<8 | uint32(t[3]))
}

func (t Tag) String() string {
	if t == WholeFont {
		return "<font>"
	}
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// DWORD returns the tag in the byte order GetFontData expects for its
// dwTable parameter: the tag's characters in memory order, read as a
// little-endian DWORD.
func (t Tag) DWORD() uint32 {
	return uint32(t>>24&0xff) | uint32(t>>16&0xff)<<8 | uint32(t>>8&0xff)<<16 | uint32(t&0xff)<<24
}
