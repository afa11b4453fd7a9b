package snes

import (
	"fmt"
	"io"
)

// These are the two places the title region can be found
const (
	LoROMTitleOffset int64 = 0x7fc0
	HiROMTitleOffset int64 = 0xffc0
)

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 32 || c > 127 {
			return false
		}
	}
	return true
}

// readAt reads exactly n bytes at off, anything less is ErrTruncated
func readAt(r io.ReaderAt, off int64, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(io.NewSectionReader(r, off, int64(n)), b); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTruncated, n, off)
		}
		return nil, err
	}
	return b, nil
}

// LocateTitle returns the offset and raw bytes of the title region. The
// LoROM region is used if it is entirely printable ASCII, otherwise the
// HiROM region is used as-is without any further checks
func LocateTitle(r io.ReaderAt) (int64, []byte, error) {
	b, err := readAt(r, LoROMTitleOffset, TitleLength)
	if err != nil {
		return 0, nil, err
	}

	if isPrintable(b) {
		return LoROMTitleOffset, b, nil
	}

	// No fallback from here, the HiROM title is used even if unprintable
	if b, err = readAt(r, HiROMTitleOffset, TitleLength); err != nil {
		return 0, nil, err
	}

	return HiROMTitleOffset, b, nil
}
