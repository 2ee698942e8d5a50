package gdi

import "testing"

func TestTags(t *testing.T) {
	tag := T("ttcf")
	if tag != Tag(0x74746366) {
		t.Errorf("expected T(ttcf) to be 0x74746366, is %#x", uint32(tag))
	}
	if tag.String() != "ttcf" {
		t.Errorf("expected tag ttcf to have string 'ttcf', has %s", tag.String())
	}
	if CollectionTable != tag {
		t.Errorf("expected CollectionTable to be 'ttcf', is %s", CollectionTable)
	}
	if T("OS/2").String() != "OS/2" {
		t.Errorf("expected tag 'OS/2', has %s", T("OS/2").String())
	}
	if T("cvt").String() != "cvt " {
		t.Errorf("expected short tag to be padded, is %q", T("cvt").String())
	}
	if WholeFont.String() != "<font>" {
		t.Errorf("expected tag 0 to denote the whole font, is %s", WholeFont.String())
	}
}

func TestTagDWORD(t *testing.T) {
	// GetFontData documentation: 'ttcf' is passed as 0x66637474
	if d := CollectionTable.DWORD(); d != 0x66637474 {
		t.Errorf("expected dwTable for ttcf to be 0x66637474, is %#x", d)
	}
	if d := T("cmap").DWORD(); d != 0x70616d63 {
		t.Errorf("expected dwTable for cmap to be 0x70616d63, is %#x", d)
	}
	if WholeFont.DWORD() != 0 {
		t.Errorf("expected dwTable 0 for the whole font")
	}
}
