// Package licensee maps the one byte licensee code found in a Super Famicom
// cartridge header to the publisher name
package licensee

// Licensee is the publisher code from the cartridge header
type Licensee uint8

// Invalid is the reserved zero code
const Invalid Licensee = 0

// Indexed by licensee code. An empty string is an unassigned code
var names = [...]string{
	// 0x00
	"Invalid",
	"Nintendo",
	"",
	"",
	"",
	"",
	"Zamuse",
	"",
	"",
	"",
	"Capcom",
	"HOT B",
	"Jaleco",
	"STORM (Sales Curve) (1)",
	"",
	"",
	// 0x10
	"",
	"",
	"Mebio Software",
	"",
	"",
	"",
	"Gremlin Graphics",
	"",
	"",
	"",
	"COBRA Team",
	"Human/Field",
	"",
	"",
	"Hudson Soft",
	"",
	// 0x20
	"",
	"Yanoman",
	"",
	"",
	"Tecmo (1)",
	"",
	"",
	"Forum",
	"Park Place Productions / VIRGIN",
	"",
	"",
	"Tokai Engeneering (SUNSOFT?)",
	"POW",
	"Loriciel / Micro World",
	"",
	"",
	// 0x30
	"",
	"Enix",
	"",
	"",
	"Kemco (1)",
	"Seta Co.,Ltd.",
	"",
	"",
	"",
	"",
	"Visit Co.,Ltd.",
	"",
	"",
	"",
	"",
	"",
	// 0x40
	"",
	"",
	"",
	"HECT",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"Loriciel",
	"",
	"",
	"",
	// 0x50
	"Seika Corp.",
	"UBI Soft",
	"",
	"",
	"",
	"",
	"",
	"",
	"Spectrum Holobyte",
	"",
	"",
	"Irem",
	"",
	"",
	"Raya Systems/Sculptured Software",
	"Renovation Pruducts",
	// 0x60
	"Malibu Games (T*HQ Inc.) / Black Pearl",
	"",
	"",
	"U.S. Gold",
	"Absolute Entertainment",
	"Acclaim",
	"Activision",
	"American Sammy",
	"GameTek",
	"Hi Tech",
	"LJN Toys",
	"",
	"",
	"",
	"",
	"Mindscape",
	// 0x70
	"",
	"",
	"",
	"Technos Japan Corp. (Tradewest)",
	"",
	"",
	"American Softworks Corp.",
	"Titus",
	"Virgin Games",
	"Maxis",
	"",
	"",
	"",
	"",
	"",
	"Ocean",
	// 0x80
	"",
	"",
	"Electronic Arts",
	"",
	"",
	"Laser Beam",
	"",
	"",
	"",
	"Elite",
	"Electro Brain",
	"Infogrames",
	"Interplay",
	"LucasArts",
	"Sculptured Soft",
	"",
	// 0x90
	"",
	"STORM (Sales Curve) (2)",
	"",
	"",
	"",
	"THQ Software",
	"Accolade Inc.",
	"Triffix Entertainment",
	"",
	"",
	"Microprose",
	"",
	"",
	"",
	"Kemco (2)",
	"",
	// 0xa0
	"",
	"",
	"Namcot/Namco Ltd. (1)",
	"",
	"",
	"Koei/Koei! (second license?)",
	"",
	"",
	"Tokuma Shoten Intermedia",
	"",
	"",
	"DATAM-Polystar",
	"",
	"",
	"",
	"Bullet-Proof Software",
	// 0xb0
	"Vic Tokai",
	"",
	"",
	"",
	"I'Max",
	"",
	"",
	"CHUN Soft",
	"Video System Co., Ltd.",
	"BEC",
	"",
	"",
	"",
	"",
	"Kaneco",
	"",
	// 0xc0
	"",
	"Pack in Video",
	"Nichibutsu",
	"TECMO (2)",
	"Imagineer Co.",
	"",
	"",
	"",
	"",
	"Wolf Team",
	"",
	"",
	"",
	"",
	"Konami",
	"K.Amusement",
	// 0xd0
	"",
	"",
	"Takara",
	"",
	"",
	"Technos Jap. ????",
	"JVC",
	"",
	"",
	"Toei Animation",
	"Toho",
	"",
	"",
	"Namcot/Namco Ltd. (2)",
	"",
	"",
	// 0xe0
	"ASCII Co. Activison",
	"BanDai America",
	"",
	"",
	"Enix",
	"",
	"",
	"Halken",
	"",
	"",
	"",
	"",
	"Culture Brain",
	"Sunsoft",
	"Toshiba EMI/System Vision",
	"Sony (Japan) / Imagesoft",
	// 0xf0
	"",
	"",
	"Sammy",
	"Taito",
	"",
	"",
	"Kemco (3) ????",
	"Square",
	"NHK",
	"Data East",
	"Tonkin House",
	"",
	"",
	"KOEI",
	"",
	"",
}

// Every possible code has an entry
var _ [len(names)]struct{} = [1 << 8]struct{}{}

func (l Licensee) String() string {
	return names[l]
}

// Assigned returns true if the code has a publisher name
func (l Licensee) Assigned() bool {
	return names[l] != ""
}
