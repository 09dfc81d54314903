package shadetex

import "image/color"

// Texture dimensions of the shadow lookup texture. Columns are palette
// indices, rows are shadow levels.
const (
	PaletteSize  = 32
	ShadowLevels = 8
)

// Palette is an ordered set of colors addressable by index.
type Palette [PaletteSize]color.RGBA

// DefaultPalette is the Picotron 32-color palette. Index 0 must stay pure
// black: the shadow table uses it as the darkest shade for every color.
var DefaultPalette = Palette{
	{0x00, 0x00, 0x00, 0xff}, // 0: black
	{0x1d, 0x2b, 0x53, 0xff}, // 1: dark blue
	{0x7e, 0x25, 0x53, 0xff}, // 2: dark purple
	{0x00, 0x87, 0x51, 0xff}, // 3: dark green
	{0xab, 0x52, 0x36, 0xff}, // 4: brown
	{0x5f, 0x57, 0x4f, 0xff}, // 5: dark gray
	{0xc2, 0xc3, 0xc7, 0xff}, // 6: light gray
	{0xff, 0xf1, 0xe8, 0xff}, // 7: white
	{0xff, 0x00, 0x4d, 0xff}, // 8: red
	{0xff, 0xa3, 0x00, 0xff}, // 9: orange
	{0xff, 0xec, 0x27, 0xff}, // 10: yellow
	{0x00, 0xe4, 0x36, 0xff}, // 11: green
	{0x29, 0xad, 0xff, 0xff}, // 12: blue
	{0x83, 0x76, 0x9c, 0xff}, // 13: indigo
	{0xff, 0x77, 0xa8, 0xff}, // 14: pink
	{0xff, 0xcc, 0xaa, 0xff}, // 15: peach
	{0x1c, 0x5e, 0xac, 0xff}, // 16: cobalt
	{0x00, 0xa5, 0xa1, 0xff}, // 17: teal
	{0x75, 0x4e, 0x97, 0xff}, // 18: purple
	{0x12, 0x53, 0x59, 0xff}, // 19: deep teal
	{0x74, 0x2f, 0x29, 0xff}, // 20: dark brown
	{0x49, 0x2d, 0x38, 0xff}, // 21: charcoal
	{0xa2, 0x88, 0x79, 0xff}, // 22: taupe
	{0xff, 0xac, 0xc5, 0xff}, // 23: light pink
	{0xc3, 0x00, 0x4c, 0xff}, // 24: crimson
	{0xeb, 0x6b, 0x00, 0xff}, // 25: burnt orange
	{0x90, 0xec, 0x42, 0xff}, // 26: lime
	{0x00, 0xb2, 0x51, 0xff}, // 27: medium green
	{0x64, 0xdf, 0xf6, 0xff}, // 28: sky blue
	{0xbd, 0x9a, 0xdf, 0xff}, // 29: lavender
	{0xe4, 0x0d, 0xab, 0xff}, // 30: magenta
	{0xff, 0x85, 0x6d, 0xff}, // 31: salmon
}
