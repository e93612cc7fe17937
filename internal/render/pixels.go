package render

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf
// using the palette's on/off colors. buf must hold 4*len(cells) bytes.
func FillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		base := i * 4
		col := p.Off
		if c != 0 {
			col = p.On
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
