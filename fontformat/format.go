/*
Package fontformat classifies font data by its leading signature.

Only the first four bytes of the data are inspected, i.e. the sfntVersion
field of an OpenType offset table or the tag of a collection header. No
further validation of the data is attempted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontformat

import (
	"bytes"
	"strings"
)

// Format is the container format of font data.
type Format int

const (
	Unknown    Format = iota // unrecognized data
	OpenType                 // OpenType with CFF outlines, 'OTTO'
	TrueType                 // TrueType outlines, sfntVersion 0x00010000
	Collection               // TrueType/OpenType collection, 'ttcf'
)

var (
	sigOpenType   = []byte("OTTO")
	sigTrueType   = []byte{0x00, 0x01, 0x00, 0x00}
	sigCollection = []byte("ttcf")
)

// Sniff returns the format of font data, judging from its first 4 bytes.
// Data shorter than 4 bytes is Unknown.
func Sniff(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}
	sig := data[:4]
	switch {
	case bytes.Equal(sig, sigOpenType):
		return OpenType
	case bytes.Equal(sig, sigTrueType):
		return TrueType
	case bytes.Equal(sig, sigCollection):
		return Collection
	}
	return Unknown
}

// Extension returns the file extension for a format, without a leading dot.
func (f Format) Extension() string {
	switch f {
	case OpenType:
		return "otf"
	case TrueType:
		return "ttf"
	case Collection:
		return "ttc"
	}
	return "bin"
}

func (f Format) String() string {
	switch f {
	case OpenType:
		return "OpenType"
	case TrueType:
		return "TrueType"
	case Collection:
		return "Collection"
	}
	return "Unknown"
}

// IsFontExtension reports whether ext (with or without leading dot) is a
// file extension Sniff may produce, or one commonly used for installed
// font files.
func IsFontExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "otf", "ttf", "ttc", "otc", "bin", "fon", "fnt":
		return true
	}
	return false
}
