package eca

import "testing"

func TestTableMatchesRuleBits(t *testing.T) {
	for r := 0; r <= 255; r++ {
		table := Table(uint8(r))
		for i := 0; i < 8; i++ {
			want := uint8((r >> i) & 1)
			if table[i] != want {
				t.Fatalf("rule %d: table[%d] = %d, want %d", r, i, table[i], want)
			}
		}
	}
}

func TestClampRule(t *testing.T) {
	cases := []struct {
		in   int
		want uint8
	}{
		{0, 0},
		{255, 255},
		{110, 110},
		{300, 255},
		{-5, 0},
		{256, 255},
	}
	for _, c := range cases {
		if got := ClampRule(c.in); got != c.want {
			t.Errorf("ClampRule(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
