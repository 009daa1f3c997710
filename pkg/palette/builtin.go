package palette

// Palettes holds the built-in ramps by name, packed as RGB565.
var Palettes = map[string][]uint16{
	"ironbow":   ironbow,
	"spectrum":  spectrum,
	"grayscale": grayscale,
}

// ironbow is the classic thermal ramp: black through purple and red up
// to white hot.
var ironbow = []uint16{
	0x0000, 0x0001, 0x0803, 0x0804, 0x1006, 0x1007, 0x1809, 0x180A,
	0x200C, 0x280D, 0x300F, 0x3810, 0x4012, 0x4813, 0x5015, 0x5816,
	0x6017, 0x6817, 0x7016, 0x7816, 0x8015, 0x8815, 0x9014, 0x9814,
	0xA013, 0xA831, 0xB050, 0xB86E, 0xC08D, 0xC8AB, 0xD0CA, 0xD8E8,
	0xE127, 0xE166, 0xE9A5, 0xE9E4, 0xF223, 0xF262, 0xFAA1, 0xFAE0,
	0xFB20, 0xFB60, 0xFBA0, 0xFBE0, 0xFC20, 0xFC60, 0xFCA0, 0xFCE0,
	0xFD20, 0xFD61, 0xFDA2, 0xFDE3, 0xFE24, 0xFE65, 0xFEA6, 0xFEE7,
	0xFF0A, 0xFF2D, 0xFF50, 0xFF73, 0xFF96, 0xFFB9, 0xFFDC, 0xFFFF,
}

// spectrum runs cold blue to hot red.
var spectrum = []uint16{
	0x001F, 0x011F, 0x021F, 0x031F, 0x043F, 0x053F, 0x063F, 0x073F,
	0x07FE, 0x07FA, 0x07F6, 0x07F2, 0x07EE, 0x07EA, 0x07E6, 0x07E2,
	0x17E0, 0x37E0, 0x57E0, 0x77E0, 0x97E0, 0xB7E0, 0xD7E0, 0xF7E0,
	0xFF20, 0xFE20, 0xFD20, 0xFC20, 0xFB00, 0xFA00, 0xF900, 0xF800,
}

var grayscale = []uint16{
	0x0000, 0x1082, 0x2104, 0x3186, 0x4228, 0x52AA, 0x632C, 0x73AE,
	0x8C51, 0x9CD3, 0xAD55, 0xBDD7, 0xCE79, 0xDEFB, 0xEF7D, 0xFFFF,
}
