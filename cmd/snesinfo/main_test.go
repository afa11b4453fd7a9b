package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bodgit/snesinfo/snes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeader(t *testing.T, name string, fields [snes.FieldBlockLength]byte) snes.Header {
	h, err := snes.NewHeader([]byte(name+strings.Repeat(" ", snes.TitleLength-len(name))), snes.LoROMTitleOffset, fields)
	require.NoError(t, err)
	return h
}

func TestRender(t *testing.T) {
	b := new(bytes.Buffer)
	render(b, newHeader(t, "SUPER MARIOWORLD", [snes.FieldBlockLength]byte{32, 2, 8, 3, 1, 1}), "ABCD", true)

	out := b.String()
	assert.Contains(t, out, "SUPER MARIOWORLD")
	assert.Contains(t, out, "LoROM (0x20)")
	assert.Contains(t, out, "ROM+SRAM (0x02)")
	assert.Contains(t, out, "8 (256 KB)")
	assert.Contains(t, out, "USA")
	assert.Contains(t, out, "NTSC")
	assert.Contains(t, out, "Nintendo (0x01)")
	assert.Contains(t, out, "0x7fc0 (LoROM)")
	assert.Contains(t, out, "20 02 08 03 01 01")
	assert.Contains(t, out, "ABCD")
}

func TestRenderUnknown(t *testing.T) {
	b := new(bytes.Buffer)
	render(b, newHeader(t, "MYSTERY", [snes.FieldBlockLength]byte{99, 200, 0, 0, 250, 2}), "", false)

	out := b.String()
	assert.Contains(t, out, "Unknown (raw 0x63)")
	assert.Contains(t, out, "Unknown (raw 0xc8)")
	assert.Contains(t, out, "Unassigned (0x02)")
	assert.NotContains(t, out, "Field Block:")
}

func TestSizeToString(t *testing.T) {
	assert.Equal(t, "0 (1 KB)", sizeToString(0))
	assert.Equal(t, "12 (4096 KB)", sizeToString(12))
	assert.Equal(t, "200", sizeToString(200))
}
