package game

import "image/color"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// NRGBA converts to a straight-alpha colour usable by the draw layer.
func (c RGB) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

var Palette = struct {
	Background RGB
	Grid       RGB
	Border     RGB
	HUDText    RGB
	HUDAccent  RGB
	HUDDim     RGB
	MeterFull  RGB
	MeterEmpty RGB
}{
	Background: RGB{R: 16, G: 17, B: 26},
	Grid:       RGB{R: 31, G: 33, B: 48},
	Border:     RGB{R: 201, G: 59, B: 59},
	HUDText:    RGB{R: 235, G: 235, B: 240},
	HUDAccent:  RGB{R: 255, G: 214, B: 90},
	HUDDim:     RGB{R: 150, G: 152, B: 165},
	MeterFull:  RGB{R: 96, G: 222, B: 115},
	MeterEmpty: RGB{R: 222, G: 84, B: 70},
}

// creaturePalette cycles across creatures; index i%len picks the colour.
var creaturePalette = []RGB{
	{R: 96, G: 222, B: 115},  // leaf green
	{R: 84, G: 158, B: 255},  // sky blue
	{R: 255, G: 112, B: 97},  // coral
	{R: 255, G: 214, B: 90},  // gold
	{R: 196, G: 110, B: 255}, // violet
	{R: 86, G: 228, B: 212},  // teal
	{R: 255, G: 140, B: 210}, // pink
	{R: 240, G: 240, B: 245}, // bone white
	{R: 255, G: 158, B: 61},  // amber
	{R: 126, G: 255, B: 84},  // lime
}

// orbPalette keeps consumables visually distinct from creatures.
var orbPalette = []RGB{
	{R: 255, G: 120, B: 120},
	{R: 120, G: 200, B: 255},
	{R: 255, G: 220, B: 120},
	{R: 160, G: 255, B: 160},
	{R: 230, G: 140, B: 255},
	{R: 140, G: 255, B: 230},
}
