package dsp

import (
	"math"

	"github.com/valerio/go-spc/spc/bit"
)

// gauss holds the 4-tap interpolation kernel. Entry k weighs a sample that
// sits 2 - k/256 samples away from the interpolation point; the four taps
// of one output sample add up to roughly 2048.
var gauss = makeGaussTable()

func makeGaussTable() [512]int {
	var table [512]int
	for k := range table {
		d := 2 - float64(k)/256
		table[k] = int(math.Round(1305 * math.Exp(-1.27*d*d)))
	}
	return table
}

// interpolate filters the four buffered samples around the voice's
// fractional position.
func interpolate(v *voice) int {
	offset := (v.interpPos >> 4) & 0xFF
	base := v.bufPos + (v.interpPos >> 12)
	in := func(i int) int {
		return v.buf[(base+i)%brrBufSize]
	}

	out := (gauss[255-offset] * in(0)) >> 11
	out += (gauss[511-offset] * in(1)) >> 11
	out += (gauss[256+offset] * in(2)) >> 11
	out = int(int16(out))
	out += (gauss[offset] * in(3)) >> 11
	return bit.Clamp16(out) &^ 1
}
