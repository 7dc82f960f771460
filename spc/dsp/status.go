package dsp

import "github.com/valerio/go-spc/spc/addr"

// VoiceStatus is a read-only view of one voice for monitors.
type VoiceStatus struct {
	Index    int
	SRCN     uint8
	Pitch    int
	VolL     int8
	VolR     int8
	Env      int
	EnvMode  string
	Output   int8
	Echo     bool
	Noise    bool
	Muted    bool
	KeyDelay int
}

// Voice returns the status of voice i.
func (d *DSP) Voice(i int) VoiceStatus {
	v := &d.voices[i]
	base := i * 0x10
	vbit := 1 << i
	return VoiceStatus{
		Index:    i,
		SRCN:     d.regs[base+addr.VSRCN],
		Pitch:    (int(d.regs[base+addr.VPITCHH])&0x3F)<<8 | int(d.regs[base+addr.VPITCHL]),
		VolL:     int8(d.regs[base+addr.VVOLL]),
		VolR:     int8(d.regs[base+addr.VVOLR]),
		Env:      v.env,
		EnvMode:  v.envMode.String(),
		Output:   int8(d.regs[base+addr.VOUTX]),
		Echo:     int(d.regs[addr.EON])&vbit != 0,
		Noise:    int(d.regs[addr.NON])&vbit != 0,
		Muted:    d.cfg.muteMask&vbit != 0,
		KeyDelay: v.konDelay,
	}
}
