package gdi

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// LFFaceSize is the size of the face name buffer of a LOGFONTW, in UTF-16
// code units, including the terminating NUL.
const LFFaceSize = 32

// Values of LOGFONTW fields used for font creation.
const (
	FWNormal          = 400 // FW_NORMAL
	DefaultCharset    = 1   // DEFAULT_CHARSET
	OutDefaultPrecis  = 0   // OUT_DEFAULT_PRECIS
	ClipDefaultPrecis = 0   // CLIP_DEFAULT_PRECIS
	DefaultQuality    = 0   // DEFAULT_QUALITY
	DefaultPitch      = 0   // DEFAULT_PITCH
	FFDontCare        = 0   // FF_DONTCARE
)

// FontDescriptor holds the parameters of a CreateFontW call.
//
// We are after the font file, not after a rendering configuration, so
// everything except the face name is left at GDI's defaults.
type FontDescriptor struct {
	Height, Width             int32
	Escapement, Orientation   int32
	Weight                    int32
	Italic, Underline, Strike uint32
	CharSet                   uint32
	OutPrecision              uint32
	ClipPrecision             uint32
	Quality                   uint32
	PitchAndFamily            uint32
	FaceName                  []uint16 // UTF-16, NUL-terminated
}

// NewFontDescriptor creates a descriptor requesting face `faceName` with
// default size, weight, charset and pitch.
//
// The face name must fit into a LOGFONTW without truncation: GDI would
// silently cut a longer name and then substitute whatever font matches the
// rest, which is not what the caller asked for.
func NewFontDescriptor(faceName string) (*FontDescriptor, error) {
	units, err := encodeFaceName(faceName)
	if err != nil {
		return nil, err
	}
	return &FontDescriptor{
		Weight:         FWNormal,
		CharSet:        DefaultCharset,
		OutPrecision:   OutDefaultPrecis,
		ClipPrecision:  ClipDefaultPrecis,
		Quality:        DefaultQuality,
		PitchAndFamily: DefaultPitch | FFDontCare,
		FaceName:       units,
	}, nil
}

func encodeFaceName(faceName string) ([]uint16, error) {
	if faceName == "" {
		return nil, &FaceNameError{FaceName: faceName, Reason: "empty"}
	}
	if !utf8.ValidString(faceName) {
		return nil, &FaceNameError{FaceName: faceName, Reason: "not valid UTF-8"}
	}
	if strings.ContainsRune(faceName, 0) {
		return nil, &FaceNameError{FaceName: faceName, Reason: "contains NUL character"}
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(faceName))
	if err != nil {
		return nil, &FaceNameError{FaceName: faceName, Reason: err.Error()}
	}
	n := len(b) / 2
	if n > LFFaceSize-1 {
		return nil, &FaceNameError{
			FaceName: faceName,
			Reason:   fmt.Sprintf("%d UTF-16 code units, at most %d allowed", n, LFFaceSize-1),
		}
	}
	units := make([]uint16, n+1) // last unit stays 0
	for i := 0; i < n; i++ {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units, nil
}
