package snes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bodgit/snesinfo/licensee"
)

const (
	// TitleLength is the size of the internal name, it is space-padded to this size
	TitleLength int = 21
	// FieldBlockLength is the size of the block holding the remaining header fields
	FieldBlockLength int = 6
)

// Positions within the field block
const (
	mappingIndex int = iota
	cartridgeIndex
	romSizeIndex
	sramSizeIndex
	regionIndex
	licenseeIndex
)

// Header represents the decoded header of a Super Famicom cartridge image
type Header struct {
	// InternalName is the raw title region
	InternalName string
	// TitleOffset is where InternalName was read from, either
	// LoROMTitleOffset or HiROMTitleOffset
	TitleOffset int64
	Mapping     Mapping
	Cartridge   Cartridge
	// ROMSize and SRAMSize are stored verbatim, nominally they are 2^n KB
	ROMSize   uint8
	SRAMSize  uint8
	Region    Region
	Licensee  licensee.Licensee
	// Publisher is always Licensee.String(), empty for an unassigned code
	Publisher string

	fields [FieldBlockLength]byte
}

// NewHeader decodes a Header from the title region found at offset and the
// six byte field block. The title must be valid UTF-8, every field block
// value decodes to something
func NewHeader(title []byte, offset int64, fields [FieldBlockLength]byte) (Header, error) {
	if len(title) != TitleLength {
		return Header{}, errTitleLength
	}

	if !utf8.Valid(title) {
		return Header{}, ErrInvalidTitle
	}

	return Header{
		InternalName: string(title),
		TitleOffset:  offset,
		Mapping:      mappingFromCode(fields[mappingIndex]),
		Cartridge:    cartridgeFromCode(fields[cartridgeIndex]),
		ROMSize:      fields[romSizeIndex],
		SRAMSize:     fields[sramSizeIndex],
		Region:       regionFromCode(fields[regionIndex]),
		Licensee:     licensee.Licensee(fields[licenseeIndex]),
		Publisher:    licensee.Licensee(fields[licenseeIndex]).String(),
		fields:       fields,
	}, nil
}

// Name returns the internal name with any padding removed
func (h Header) Name() string {
	return strings.TrimRight(h.InternalName, " \x00")
}

// FieldBlock returns the undecoded field block
func (h Header) FieldBlock() [FieldBlockLength]byte {
	return h.fields
}

func (h Header) String() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s", h.Name(), h.Mapping, h.Cartridge, h.Region, h.Publisher)
}
