package render

import (
	"bytes"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	p := ByName("matrix")
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	FillBinaryRGBA(buf, cells, p)

	on := []byte{p.On.R, p.On.G, p.On.B, p.On.A}
	off := []byte{p.Off.R, p.Off.G, p.Off.B, p.Off.A}
	for i, c := range cells {
		want := off
		if c != 0 {
			want = on
		}
		if got := buf[i*4 : i*4+4]; !bytes.Equal(got, want) {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("matrix"); got.Name != "matrix" {
		t.Fatalf("ByName(matrix) = %q", got.Name)
	}
	if got := ByName("nope"); got.Name != Palettes[0].Name {
		t.Fatalf("unknown palette resolved to %q, want %q", got.Name, Palettes[0].Name)
	}
}

func TestNextCycles(t *testing.T) {
	p := Palettes[0]
	for i := 0; i < len(Palettes); i++ {
		p = Next(p)
	}
	if p.Name != Palettes[0].Name {
		t.Fatalf("cycling %d times landed on %q, want %q", len(Palettes), p.Name, Palettes[0].Name)
	}
	if got := Next(Palette{Name: "nope"}); got.Name != Palettes[0].Name {
		t.Fatalf("Next of unknown palette = %q, want %q", got.Name, Palettes[0].Name)
	}
}
