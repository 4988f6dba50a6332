// Package iftable reads the interface table exposed by GetIfTable. The OS
// primitive needs a caller-allocated buffer whose size is only known after a
// first call, so every read goes through Read.
package iftable

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var (
	ErrInsufficientBuffer = errors.New("insufficient buffer")
	ErrTruncated          = errors.New("interface table truncated")
)

// Caller performs one call of the table primitive. On entry *size is the
// length of buf; on exit it holds the size the primitive needs or wrote.
type Caller func(buf []byte, size *uint32) error

// MIB_IFROW layout.
const (
	RowSize    = 860
	headerSize = 4
	descrLen   = 256

	offIndex       = 512
	offType        = 516
	offMTU         = 520
	offSpeed       = 524
	offAdminStatus = 540
	offOperStatus  = 544
	offInOctets    = 552
	offOutOctets   = 576
	offDescr       = 604
)

type Row struct {
	Index       uint32
	Type        uint32
	MTU         uint32
	Speed       uint32
	AdminStatus uint32
	OperStatus  uint32
	InOctets    uint32
	OutOctets   uint32
	Name        string
}

// Read runs the size-then-fill protocol. The first call must report
// ErrInsufficientBuffer; the second must succeed. No data is returned on failure.
func Read(call Caller) ([]byte, error) {
	var size uint32

	err := call(nil, &size)
	if err == nil {
		return nil, errors.New("size query returned data without a buffer")
	}
	if !errors.Is(err, ErrInsufficientBuffer) {
		return nil, fmt.Errorf("query table size: %w", err)
	}
	if size < headerSize {
		return nil, fmt.Errorf("query table size: reported %d bytes: %w", size, ErrTruncated)
	}

	buf := make([]byte, size)
	if err := call(buf, &size); err != nil {
		return nil, fmt.Errorf("fill table: %w", err)
	}

	if int(size) < len(buf) {
		buf = buf[:size]
	}

	return buf, nil
}

// Parse decodes exactly the number of rows the table header announces. The
// count is checked against len(buf) before any row is touched.
func Parse(buf []byte) ([]Row, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("header: %w", ErrTruncated)
	}

	count := binary.LittleEndian.Uint32(buf[:headerSize])
	avail := uint64(len(buf)-headerSize) / RowSize
	if uint64(count) > avail {
		return nil, fmt.Errorf("%d rows announced, room for %d: %w", count, avail, ErrTruncated)
	}

	rows := make([]Row, 0, count)
	for i := range int(count) {
		start := headerSize + i*RowSize
		rows = append(rows, parseRow(buf[start:start+RowSize]))
	}

	return rows, nil
}

func parseRow(b []byte) Row {
	u32 := func(off int) uint32 {
		return binary.LittleEndian.Uint32(b[off : off+4])
	}

	return Row{
		Index:       u32(offIndex),
		Type:        u32(offType),
		MTU:         u32(offMTU),
		Speed:       u32(offSpeed),
		AdminStatus: u32(offAdminStatus),
		OperStatus:  u32(offOperStatus),
		InOctets:    u32(offInOctets),
		OutOctets:   u32(offOutOctets),
		Name:        DecodeName(b[offDescr : offDescr+descrLen]),
	}
}

// DecodeName decodes a fixed-width, NUL padded description. Invalid UTF-8
// becomes U+FFFD; only trailing NULs are removed.
func DecodeName(b []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		decoded = bytes.ToValidUTF8(b, []byte("\uFFFD"))
	}

	return string(bytes.TrimRight(decoded, "\x00"))
}
