package snes

// Mapping represents the memory mapping layout of the cartridge
type Mapping int

// These are the mapping layouts that can be identified from the header.
// UnknownMapping is used for any code not in the list
const (
	UnknownMapping Mapping = iota
	LoROM
	HiROM
	LoROMFastROM
	HiROMFastROM
	ExLoROM
	ExHiROM
)

// Checked in order, first match wins
var mappingCodes = []struct {
	code    byte
	mapping Mapping
}{
	{0x20, LoROM},
	{0x21, HiROM},
	{0x30, LoROMFastROM},
	{0x31, HiROMFastROM},
	{0x32, ExLoROM},
	{0x35, ExHiROM},
}

func mappingFromCode(b byte) Mapping {
	for _, x := range mappingCodes {
		if x.code == b {
			return x.mapping
		}
	}
	return UnknownMapping
}

// Code returns the header byte for the mapping layout. The second return
// value is false for UnknownMapping as it has no canonical code
func (m Mapping) Code() (byte, bool) {
	for _, x := range mappingCodes {
		if x.mapping == m {
			return x.code, true
		}
	}
	return 0, false
}

func (m Mapping) String() string {
	strings := map[Mapping]string{
		UnknownMapping: "Unknown",
		LoROM:          "LoROM",
		HiROM:          "HiROM",
		LoROMFastROM:   "LoROM+FastROM",
		HiROMFastROM:   "HiROM+FastROM",
		ExLoROM:        "ExLoROM",
		ExHiROM:        "ExHiROM",
	}

	if s, ok := strings[m]; ok {
		return s
	}
	return strings[UnknownMapping]
}

// Cartridge represents the hardware fitted to the cartridge
type Cartridge int

// These are the cartridge types that can be identified from the header.
// UnknownCartridge is used for any code not in the list
const (
	UnknownCartridge Cartridge = iota
	ROM
	ROMRAM
	ROMSRAM
	ROMDSP1
	ROMDSP1RAM
	ROMDSP1SRAM
	FX
)

var cartridgeCodes = []struct {
	code      byte
	cartridge Cartridge
}{
	{0, ROM},
	{1, ROMRAM},
	{2, ROMSRAM},
	{3, ROMDSP1},
	{4, ROMDSP1RAM},
	{5, ROMDSP1SRAM},
	{6, FX},
}

func cartridgeFromCode(b byte) Cartridge {
	for _, x := range cartridgeCodes {
		if x.code == b {
			return x.cartridge
		}
	}
	return UnknownCartridge
}

// Code returns the header byte for the cartridge type. The second return
// value is false for UnknownCartridge
func (c Cartridge) Code() (byte, bool) {
	for _, x := range cartridgeCodes {
		if x.cartridge == c {
			return x.code, true
		}
	}
	return 0, false
}

func (c Cartridge) String() string {
	strings := map[Cartridge]string{
		UnknownCartridge: "Unknown",
		ROM:              "ROM",
		ROMRAM:           "ROM+RAM",
		ROMSRAM:          "ROM+SRAM",
		ROMDSP1:          "ROM+DSP1",
		ROMDSP1RAM:       "ROM+DSP1+RAM",
		ROMDSP1SRAM:      "ROM+DSP1+SRAM",
		FX:               "FX",
	}

	if s, ok := strings[c]; ok {
		return s
	}
	return strings[UnknownCartridge]
}
