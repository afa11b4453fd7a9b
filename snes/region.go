package snes

import "fmt"

// Timing is the video timing used by the console
type Timing int

// Video timings
const (
	UnknownTiming Timing = iota
	NTSC
	PAL
)

func (t Timing) String() string {
	switch t {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	default:
		return "Unknown"
	}
}

// Region pairs the destination country with its video timing
type Region struct {
	Country string
	Timing  Timing
}

// UnknownRegion is returned for any region code not in the table
var UnknownRegion = Region{"Unknown", UnknownTiming}

// Indexed by region code
var regions = [...]Region{
	{"Japan", NTSC},
	{"USA", NTSC},
	{"Europe", PAL},
	{"Sweden", PAL},
	{"Finland", PAL},
	{"Denmark", PAL},
	{"France", PAL},
	{"Holland", PAL},
	{"Spain", PAL},
	{"Germany", PAL},
	{"Italy", PAL},
	{"China", PAL},
	{"Indonesia", PAL},
	{"Korea", PAL},
}

func regionFromCode(b byte) Region {
	if int(b) < len(regions) {
		return regions[b]
	}
	return UnknownRegion
}

func (r Region) String() string {
	return fmt.Sprintf("%s (%s)", r.Country, r.Timing)
}
