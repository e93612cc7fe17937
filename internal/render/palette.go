package render

import "image/color"

// Palette maps binary cell states to display colors.
type Palette struct {
	Name string
	On   color.RGBA
	Off  color.RGBA
}

// Palettes lists the built-in color schemes, in cycling order.
var Palettes = []Palette{
	{Name: "neon", On: color.RGBA{0xff, 0x2b, 0xd6, 0xff}, Off: color.RGBA{0x0a, 0x0a, 0x12, 0xff}},
	{Name: "cyan", On: color.RGBA{0x00, 0xf0, 0xff, 0xff}, Off: color.RGBA{0x05, 0x08, 0x14, 0xff}},
	{Name: "matrix", On: color.RGBA{0x39, 0xff, 0x14, 0xff}, Off: color.RGBA{0x01, 0x0a, 0x01, 0xff}},
	{Name: "vapor", On: color.RGBA{0xff, 0x71, 0xce, 0xff}, Off: color.RGBA{0x18, 0x10, 0x2e, 0xff}},
	{Name: "amber", On: color.RGBA{0xff, 0xb0, 0x00, 0xff}, Off: color.RGBA{0x14, 0x0a, 0x00, 0xff}},
}

// ByName returns the named palette, falling back to the first entry.
func ByName(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Palettes[0]
}

// Next returns the palette after p in cycling order.
func Next(p Palette) Palette {
	for i, q := range Palettes {
		if q.Name == p.Name {
			return Palettes[(i+1)%len(Palettes)]
		}
	}
	return Palettes[0]
}
