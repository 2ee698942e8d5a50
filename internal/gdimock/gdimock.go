/*
Package gdimock provides a deterministic stand-in for the GDI API.

A Mock counts acquisitions and releases, records every call in order, and
may be told to fail any single call or to report inconsistent sizes for
font data.
*/
package gdimock

import (
	"fmt"
	"syscall"
	"unicode/utf16"

	"github.com/npillmayer/fontextract/gdi"
)

// Call names, as recorded in Mock.Calls and accepted by FailAt.
const (
	CreateDC   = "CreateCompatibleDC"
	CreateFont = "CreateFont"
	Select     = "SelectObject"
	SizeQuery  = "GetFontData(size)"
	Fill       = "GetFontData(fill)"
	Restore    = "SelectObject(restore)"
	DeleteFont = "DeleteObject"
	DeleteDC   = "DeleteDC"
)

// Resource names, as recorded in Mock.Acquired and Mock.Released.
const (
	ResDC        = "dc"
	ResFont      = "font"
	ResSelection = "selection"
)

// Handles handed out by the mock.
const (
	DCHandle        gdi.Handle = 0x0d0c
	FontHandle      gdi.Handle = 0x0f0f
	StockFontHandle gdi.Handle = 0x5f0f // the font a fresh DC comes with
)

// ErrInjected is the OS error reported by failing calls
// (ERROR_INVALID_PARAMETER).
const ErrInjected = syscall.Errno(87)

// Mock implements gdi.API.
type Mock struct {
	Data      []byte    // font data of every font created
	Calls     []string  // calls in order of execution
	FaceNames []string  // face names of CreateFont calls
	Tables    []gdi.Tag // tables requested by GetFontData calls
	Acquired  []string  // resources successfully acquired, in order
	Released  []string  // resources released (or attempted to), in order
	failAt    map[string]bool
	querySize *uint32
	fillCount *uint32
	selected  gdi.Handle // font currently in the DC's font slot
	liveDC    bool
	liveFont  bool
}

var _ gdi.API = &Mock{}

// New creates a mock whose fonts contain `data`.
func New(data []byte) *Mock {
	return &Mock{Data: data, failAt: make(map[string]bool)}
}

// FailAt makes call `name` fail. It returns the mock for chaining.
func (m *Mock) FailAt(name string) *Mock {
	m.failAt[name] = true
	return m
}

// ReportSize makes the size query report `size` instead of len(Data).
func (m *Mock) ReportSize(size uint32) *Mock {
	m.querySize = &size
	return m
}

// ReportFilled makes the fill call report `n` copied bytes.
func (m *Mock) ReportFilled(n uint32) *Mock {
	m.fillCount = &n
	return m
}

// Lifecycle returns the calls which acquire or release resources, in order
// of execution, leaving out data queries.
func (m *Mock) Lifecycle() []string {
	var l []string
	for _, c := range m.Calls {
		switch c {
		case SizeQuery, Fill:
		default:
			l = append(l, c)
		}
	}
	return l
}

// Count returns how often call `name` has been issued.
func (m *Mock) Count(name string) int {
	n := 0
	for _, c := range m.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// Leaks reports resources still alive.
func (m *Mock) Leaks() []string {
	var leaks []string
	if m.liveDC {
		leaks = append(leaks, "DC")
	}
	if m.liveFont {
		leaks = append(leaks, "font")
	}
	if m.selected == FontHandle {
		leaks = append(leaks, "selection")
	}
	return leaks
}

func (m *Mock) record(name string) bool {
	m.Calls = append(m.Calls, name)
	return m.failAt[name]
}

// --- gdi.API ---------------------------------------------------------------

func (m *Mock) CreateCompatibleDC() (gdi.Handle, error) {
	if m.record(CreateDC) {
		return 0, ErrInjected
	}
	m.liveDC = true
	m.selected = StockFontHandle
	m.Acquired = append(m.Acquired, ResDC)
	return DCHandle, nil
}

func (m *Mock) DeleteDC(dc gdi.Handle) error {
	if dc != DCHandle {
		return fmt.Errorf("DeleteDC: unknown DC %#x", uintptr(dc))
	}
	m.liveDC = false
	m.Released = append(m.Released, ResDC)
	if m.record(DeleteDC) {
		return ErrInjected
	}
	return nil
}

func (m *Mock) CreateFont(desc *gdi.FontDescriptor) (gdi.Handle, error) {
	m.FaceNames = append(m.FaceNames, decodeFaceName(desc.FaceName))
	if m.record(CreateFont) {
		return 0, ErrInjected
	}
	m.liveFont = true
	m.Acquired = append(m.Acquired, ResFont)
	return FontHandle, nil
}

func (m *Mock) DeleteObject(obj gdi.Handle) error {
	if obj != FontHandle {
		return fmt.Errorf("DeleteObject: unknown object %#x", uintptr(obj))
	}
	m.liveFont = false
	m.Released = append(m.Released, ResFont)
	if m.record(DeleteFont) {
		return ErrInjected
	}
	return nil
}

func (m *Mock) SelectObject(dc gdi.Handle, obj gdi.Handle) (gdi.Handle, error) {
	if dc != DCHandle || !m.liveDC {
		return 0, fmt.Errorf("SelectObject: unknown DC %#x", uintptr(dc))
	}
	if obj == StockFontHandle {
		m.Released = append(m.Released, ResSelection)
		if m.record(Restore) {
			return 0, ErrInjected
		}
	} else {
		if m.record(Select) {
			return 0, ErrInjected
		}
		m.Acquired = append(m.Acquired, ResSelection)
	}
	prev := m.selected
	m.selected = obj
	return prev, nil
}

func (m *Mock) GetFontData(dc gdi.Handle, table gdi.Tag, offset uint32, buf []byte) (uint32, error) {
	m.Tables = append(m.Tables, table)
	if buf == nil {
		if m.record(SizeQuery) {
			return gdi.GDIError, ErrInjected
		}
		if m.selected != FontHandle {
			return gdi.GDIError, nil
		}
		if m.querySize != nil {
			return *m.querySize, nil
		}
		return uint32(len(m.Data)), nil
	}
	if m.record(Fill) {
		return gdi.GDIError, ErrInjected
	}
	if m.selected != FontHandle {
		return gdi.GDIError, nil
	}
	n := copy(buf, m.Data)
	if m.fillCount != nil {
		return *m.fillCount, nil
	}
	return uint32(n), nil
}

func decodeFaceName(units []uint16) string {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	return string(utf16.Decode(units))
}
