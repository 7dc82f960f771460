package dsp

import (
	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/bit"
)

// runVoice renders one sample of voice i and advances it. prevOutput is the
// previous voice's enveloped output, used for pitch modulation. It returns
// this voice's enveloped output.
func (d *DSP) runVoice(ram []byte, i int, prevOutput int) int {
	v := &d.voices[i]
	base := i * 0x10
	vbit := 1 << i

	header := int(ram[v.brrAddr&0xFFFF])

	pitch := (int(d.regs[base+addr.VPITCHH])&0x3F)<<8 | int(d.regs[base+addr.VPITCHL])
	if i > 0 && int(d.regs[addr.PMON])&vbit != 0 {
		pitch += ((prevOutput >> 5) * pitch) >> 10
	}

	if v.konDelay > 0 {
		if v.konDelay == 5 {
			v.brrAddr = d.sampleAddr(ram, i, 0)
			v.brrOffset = 1
			v.bufPos = 0
			header = 0 // ignored on this sample
			d.konCheck = true
			d.regs[addr.ENDX] &^= uint8(vbit)
		}

		// the envelope does not run during key on
		v.env = 0
		v.hiddenEnv = 0

		// decode the first blocks during the last samples of the delay
		v.interpPos = 0
		v.konDelay--
		if v.konDelay&3 != 0 {
			v.interpPos = 0x4000
		}
		pitch = 0
	}

	var output int
	if int(d.regs[addr.NON])&vbit != 0 {
		output = int(int16(d.noise * 2))
	} else {
		output = interpolate(v)
	}
	output = ((output * v.env) >> 11) &^ 1

	d.regs[base+addr.VENVX] = uint8(v.env >> 4)
	d.regs[base+addr.VOUTX] = uint8(output >> 8)

	// end of a non-looping sample and soft reset silence the voice at once
	if d.regs[addr.FLG]&addr.FLGSoftReset != 0 || header&3 == 1 {
		v.envMode = envRelease
		v.env = 0
	}

	if d.everyOtherSample {
		if d.tKOFF&vbit != 0 {
			v.envMode = envRelease
		}
		if d.kon&vbit != 0 {
			v.konDelay = 5
			v.envMode = envAttack
		}
	}

	if v.konDelay == 0 {
		d.runEnvelope(i)
	}

	if v.interpPos >= 0x4000 {
		d.decodeBRR(ram, v, header)
		v.brrOffset += 2
		if v.brrOffset >= brrBlockSize {
			v.brrAddr = (v.brrAddr + brrBlockSize) & 0xFFFF
			if header&1 != 0 {
				v.brrAddr = d.sampleAddr(ram, i, 2)
				d.regs[addr.ENDX] |= uint8(vbit)
			}
			v.brrOffset = 1
		}
	}

	v.interpPos = (v.interpPos & 0x3FFF) + pitch
	if v.interpPos > 0x7FFF {
		v.interpPos = 0x7FFF
	}

	return output
}

// sampleAddr reads the start (offset 0) or loop (offset 2) address of the
// voice's source from the sample directory.
func (d *DSP) sampleAddr(ram []byte, i, offset int) int {
	srcn := int(d.regs[i*0x10+addr.VSRCN])
	entry := (int(d.regs[addr.DIR])*0x100 + srcn*4 + offset) & 0xFFFF
	return int(ram[entry]) | int(ram[(entry+1)&0xFFFF])<<8
}

// decodeBRR decodes the next four samples of the current block into the
// voice's ring buffer.
func (d *DSP) decodeBRR(ram []byte, v *voice, header int) {
	nibbles := int(ram[(v.brrAddr+v.brrOffset)&0xFFFF])<<8 | int(ram[(v.brrAddr+v.brrOffset+1)&0xFFFF])
	shift := header >> 4
	filter := header & 0x0C

	pos := v.bufPos
	v.bufPos = (v.bufPos + 4) % brrBufSize

	for n := 0; n < 4; n++ {
		s := bit.SignExtend4(uint8(nibbles >> 12))
		nibbles <<= 4

		if shift >= 0xD {
			// invalid shifts keep only the sign
			if s < 0 {
				s = -0x800
			} else {
				s = 0
			}
		} else {
			s = (s << shift) >> 1
		}

		p1 := v.buf[(pos+brrBufSize-1)%brrBufSize]
		p2 := v.buf[(pos+brrBufSize-2)%brrBufSize] >> 1

		switch filter {
		case 0x04:
			s += p1 >> 1
			s += (-p1) >> 5
		case 0x08:
			s += p1
			s -= p2
			s += p2 >> 4
			s += (p1 * -3) >> 6
		case 0x0C:
			s += p1
			s -= p2
			s += (p1 * -13) >> 7
			s += (p2 * 3) >> 4
		}

		s = bit.Clamp16(s)
		v.buf[pos] = int(int16(s * 2))
		pos = (pos + 1) % brrBufSize
	}
}

// runEnvelope advances the ADSR or GAIN envelope of voice i by one sample.
func (d *DSP) runEnvelope(i int) {
	v := &d.voices[i]
	base := i * 0x10
	env := v.env

	if v.envMode == envRelease {
		env -= 0x8
		if env < 0 {
			env = 0
		}
		v.env = env
		return
	}

	var rate, envData int
	adsr0 := int(d.regs[base+addr.VADSR1])
	if adsr0&0x80 != 0 {
		envData = int(d.regs[base+addr.VADSR2])
		if v.envMode >= envDecay {
			env--
			env -= env >> 8
			rate = envData & 0x1F
			if v.envMode == envDecay {
				rate = (adsr0>>3)&0x0E + 0x10
			}
		} else {
			rate = (adsr0&0x0F)*2 + 1
			if rate < 31 {
				env += 0x20
			} else {
				env += 0x400
			}
		}
	} else {
		envData = int(d.regs[base+addr.VGAIN])
		mode := envData >> 5
		if mode < 4 {
			// direct
			env = envData * 0x10
			rate = 31
		} else {
			rate = envData & 0x1F
			switch {
			case mode == 4:
				env -= 0x20
			case mode == 5:
				env--
				env -= env >> 8
			default:
				env += 0x20
				if mode > 6 && v.hiddenEnv >= 0x600 {
					env += 0x8 - 0x20
				}
			}
		}
	}

	if env>>8 == envData>>5 && v.envMode == envDecay {
		v.envMode = envSustain
	}

	v.hiddenEnv = env

	if env < 0 || env > 0x7FF {
		if env < 0 {
			env = 0
		} else {
			env = 0x7FF
		}
		if v.envMode == envAttack {
			v.envMode = envDecay
		}
	}

	if d.counterFires(rate) {
		v.env = env
	}
}

func (d *DSP) counterFires(rate int) bool {
	return (d.counter+counterOffsets[rate])%counterRates[rate] == 0
}
