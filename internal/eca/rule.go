package eca

import "log"

// ClampRule coerces an arbitrary rule number into the Wolfram range [0, 255].
// Out-of-range inputs are clamped with a warning rather than rejected: rule
// selection is an exploratory control, and best-effort correction beats
// interrupting the session.
func ClampRule(rule int) uint8 {
	if rule < 0 {
		log.Printf("eca: rule %d below range, clamped to 0", rule)
		return 0
	}
	if rule > 255 {
		log.Printf("eca: rule %d above range, clamped to 255", rule)
		return 255
	}
	return uint8(rule)
}

// Table expands a Wolfram rule number into its 8-entry transition table.
// Entry i holds bit i of the rule and is the next state for the neighborhood
// whose cells compose the index (left<<2)|(center<<1)|right.
func Table(rule uint8) [8]uint8 {
	var t [8]uint8
	for i := range t {
		t[i] = (rule >> i) & 1
	}
	return t
}
