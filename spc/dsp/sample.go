package dsp

import (
	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/bit"
)

// sample produces one stereo output pair.
func (d *DSP) sample(ram []byte) {
	// KON and KOFF are only sampled every other output sample
	d.everyOtherSample = !d.everyOtherSample
	if d.everyOtherSample {
		d.newKON &^= d.kon
		d.kon = d.newKON
		d.tKOFF = int(d.regs[addr.KOFF])
	}

	d.counter--
	if d.counter < 0 {
		d.counter = counterRange - 1
	}

	if d.counterFires(int(d.regs[addr.FLG] & addr.FLGNoiseRate)) {
		feedback := (d.noise << 13) ^ (d.noise << 14)
		d.noise = (feedback & 0x4000) ^ (d.noise >> 1)
	}

	var mainOut, echoOut [2]int
	output := 0
	for i := range d.voices {
		output = d.runVoice(ram, i, output)
		if d.cfg.muteMask&(1<<i) != 0 {
			continue
		}

		volL, volR := d.volumes(int8(d.regs[i*0x10+addr.VVOLL]), int8(d.regs[i*0x10+addr.VVOLR]))
		ampL := (output * volL) >> 7
		ampR := (output * volR) >> 7

		mainOut[0] = bit.Clamp16(mainOut[0] + ampL)
		mainOut[1] = bit.Clamp16(mainOut[1] + ampR)
		if int(d.regs[addr.EON])&(1<<i) != 0 {
			echoOut[0] = bit.Clamp16(echoOut[0] + ampL)
			echoOut[1] = bit.Clamp16(echoOut[1] + ampR)
		}
	}

	var echoIn [2]int
	if !d.cfg.echoDisabled {
		echoIn = d.runEcho(ram, echoOut)
	}

	mvolL, mvolR := d.volumes(int8(d.regs[addr.MVOLL]), int8(d.regs[addr.MVOLR]))
	l := (mainOut[0]*mvolL)>>7 + (echoIn[0]*int(int8(d.regs[addr.EVOLL])))>>7
	r := (mainOut[1]*mvolR)>>7 + (echoIn[1]*int(int8(d.regs[addr.EVOLR])))>>7
	l = bit.Clamp16(l)
	r = bit.Clamp16(r)

	if d.regs[addr.FLG]&addr.FLGMute != 0 {
		l, r = 0, 0
	}

	d.emit(l, r)
}

// volumes applies surround suppression to a left/right volume pair.
func (d *DSP) volumes(left, right int8) (int, int) {
	l, r := int(left), int(right)
	threshold := surroundOn
	if d.cfg.surroundDisabled {
		threshold = surroundOff
	}
	if l*r < threshold {
		l ^= l >> 7
	}
	return l, r
}

// runEcho reads the oldest echo sample, filters it through the 8-tap FIR
// and writes the new echo sample back. It returns the filtered echo.
func (d *DSP) runEcho(ram []byte, echoOut [2]int) [2]int {
	if d.echoOffset == 0 {
		d.echoLength = int(d.regs[addr.EDL]&0x0F) * 0x800
	}
	ptr := (int(d.regs[addr.ESA])*0x100 + d.echoOffset) & 0xFFFF
	d.echoOffset += 4
	if d.echoOffset >= d.echoLength {
		d.echoOffset = 0
	}

	d.echoHistPos = (d.echoHistPos + 1) % echoHistSize
	for ch := 0; ch < 2; ch++ {
		lo := int(ram[(ptr+ch*2)&0xFFFF])
		hi := int(ram[(ptr+ch*2+1)&0xFFFF])
		d.echoHist[d.echoHistPos][ch] = int(int16(hi<<8|lo)) >> 1
	}

	var echoIn [2]int
	for ch := 0; ch < 2; ch++ {
		sum := 0
		for tap := 0; tap < 7; tap++ {
			sum += d.fir(tap, ch)
		}
		sum = int(int16(sum))
		sum += int(int16(d.fir(7, ch)))
		echoIn[ch] = bit.Clamp16(sum) &^ 1
	}

	if d.regs[addr.FLG]&addr.FLGEchoDisable == 0 {
		efb := int(int8(d.regs[addr.EFB]))
		for ch := 0; ch < 2; ch++ {
			e := echoOut[ch] + int(int16((echoIn[ch]*efb)>>7))
			e = bit.Clamp16(e) &^ 1
			ram[(ptr+ch*2)&0xFFFF] = uint8(e)
			ram[(ptr+ch*2+1)&0xFFFF] = uint8(e >> 8)
		}
	}

	return echoIn
}

// fir applies coefficient tap to the history sample tap+1 steps after the
// oldest one, so tap 7 weighs the sample just read.
func (d *DSP) fir(tap, ch int) int {
	pos := (d.echoHistPos + tap + 1) % echoHistSize
	return (d.echoHist[pos][ch] * int(int8(d.regs[addr.FIR+tap*0x10]))) >> 6
}
