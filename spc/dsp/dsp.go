// Package dsp implements the S-DSP, the SNES sound chip that turns the
// register state written by the SPC-700 into 32 kHz stereo samples.
// Reference: https://problemkaputt.de/fullsnes.htm#snesapudsp
package dsp

import "github.com/valerio/go-spc/spc/addr"

type voice struct {
	buf       [brrBufSize]int // decoded samples, ring buffer
	bufPos    int             // where the next four decoded samples go
	interpPos int             // 4.12 fixed point position relative to bufPos
	brrAddr   int
	brrOffset int
	konDelay  int
	envMode   envMode
	env       int
	hiddenEnv int
}

// config is set by the owner and never part of a snapshot.
type config struct {
	muteMask         int
	surroundDisabled bool
	echoDisabled     bool
}

// DSP holds the complete synthesis state. It never references the memory it
// renders from; the owner passes RAM to Run so a DSP embedded by value in a
// larger machine copies cleanly.
type DSP struct {
	regs   [addr.DSPRegCount]uint8
	voices [addr.VoiceCount]voice

	echoHist    [echoHistSize][2]int
	echoHistPos int
	echoOffset  int
	echoLength  int

	everyOtherSample bool
	kon              int
	newKON           int
	tKOFF            int
	konCheck         bool

	noise   int
	counter int
	phase   int

	out     []int16
	outPos  int
	inExtra bool
	extra   [ExtraSize]int16

	cfg config
}

// New creates a DSP in its power-on state.
func New() *DSP {
	d := &DSP{}
	d.Reset()
	return d
}

// Reset restores the power-on register values.
func (d *DSP) Reset() {
	var regs [addr.DSPRegCount]uint8
	regs[addr.FLG] = addr.FLGSoftReset | addr.FLGMute | addr.FLGEchoDisable
	d.Load(regs)
}

// SoftReset keys off every voice and resets internal counters, keeping the
// rest of the registers.
func (d *DSP) SoftReset() {
	d.regs[addr.FLG] = addr.FLGSoftReset | addr.FLGMute | addr.FLGEchoDisable
	d.softResetCommon()
}

// Load replaces all registers and clears the internal state, as when a
// captured register image is restored.
func (d *DSP) Load(regs [addr.DSPRegCount]uint8) {
	cfg := d.cfg
	out, outPos, inExtra := d.out, d.outPos, d.inExtra

	*d = DSP{}
	d.regs = regs
	for i := range d.voices {
		d.voices[i].brrOffset = 1
	}
	d.newKON = int(regs[addr.KON])
	d.softResetCommon()

	d.cfg = cfg
	d.out, d.outPos, d.inExtra = out, outPos, inExtra
}

func (d *DSP) softResetCommon() {
	d.noise = noiseSeed
	d.echoHistPos = 0
	d.everyOtherSample = true
	d.echoOffset = 0
	d.phase = 0
	d.counter = 0
}

// Read returns a DSP register. Addresses $80-$FF mirror $00-$7F.
func (d *DSP) Read(reg uint8) uint8 {
	return d.regs[reg&0x7F]
}

// Write stores a DSP register.
func (d *DSP) Write(reg uint8, value uint8) {
	reg &= 0x7F
	d.regs[reg] = value
	switch reg {
	case addr.KON:
		d.newKON = int(value)
	case addr.ENDX:
		// any write clears every end flag
		d.regs[addr.ENDX] = 0
	}
}

// Regs returns a copy of the register file.
func (d *DSP) Regs() [addr.DSPRegCount]uint8 {
	return d.regs
}

// CheckKON reports whether any voice was keyed on since the last call.
func (d *DSP) CheckKON() bool {
	old := d.konCheck
	d.konCheck = false
	return old
}

// MuteVoices silences the voices whose bits are set in mask. Muted voices
// keep running and contribute nothing to the main or echo mix.
func (d *DSP) MuteVoices(mask int) {
	d.cfg.muteMask = mask & 0xFF
}

func (d *DSP) MuteMask() int {
	return d.cfg.muteMask
}

// ToggleVoice flips the mute state of a single voice.
func (d *DSP) ToggleVoice(v int) {
	if v < 0 || v >= addr.VoiceCount {
		return
	}
	d.cfg.muteMask ^= 1 << v
}

// SoloVoice mutes every voice except v.
func (d *DSP) SoloVoice(v int) {
	if v < 0 || v >= addr.VoiceCount {
		return
	}
	d.cfg.muteMask = 0xFF &^ (1 << v)
}

func (d *DSP) UnmuteAll() {
	d.cfg.muteMask = 0
}

// DisableSurround removes the phase inversion effect produced by opposite
// signed left and right volumes.
func (d *DSP) DisableSurround(disable bool) {
	d.cfg.surroundDisabled = disable
}

// DisableEcho skips the echo filter entirely. The echo buffer in RAM is
// neither read nor written while disabled.
func (d *DSP) DisableEcho(disable bool) {
	d.cfg.echoDisabled = disable
}

func (d *DSP) EchoDisabled() bool {
	return d.cfg.echoDisabled
}

// SetOutput directs generated samples into out starting at pos. A nil out
// sends samples to the internal extra buffer. When out fills up the DSP
// continues in the extra buffer.
func (d *DSP) SetOutput(out []int16, pos int) {
	if out == nil || pos+2 > len(out) {
		if out != nil {
			pos = 0
		}
		d.out = nil
		d.inExtra = true
		d.outPos = pos % ExtraSize
		return
	}
	d.out = out
	d.inExtra = false
	d.outPos = pos
}

// OutPos is the index of the next sample to be written in the current
// destination.
func (d *DSP) OutPos() int {
	return d.outPos
}

// InExtra reports whether samples currently go to the extra buffer.
func (d *DSP) InExtra() bool {
	return d.inExtra
}

// Extra exposes the internal overflow buffer.
func (d *DSP) Extra() []int16 {
	return d.extra[:]
}

// Run generates one stereo sample for every 32 clocks, carrying the
// remainder over to the next call. ram is the coprocessor's address space
// the voices and the echo buffer live in.
func (d *DSP) Run(ram []byte, clocks int) {
	if clocks <= 0 {
		return
	}
	phase := d.phase + clocks
	count := phase / ClocksPerSample
	d.phase = phase % ClocksPerSample
	for ; count > 0; count-- {
		d.sample(ram)
	}
}

func (d *DSP) emit(l, r int) {
	if d.inExtra {
		d.extra[d.outPos] = int16(l)
		d.extra[d.outPos+1] = int16(r)
		d.outPos += 2
		if d.outPos >= ExtraSize {
			d.outPos = 0
		}
		return
	}

	d.out[d.outPos] = int16(l)
	d.out[d.outPos+1] = int16(r)
	d.outPos += 2
	if d.outPos+2 > len(d.out) {
		d.out = nil
		d.inExtra = true
		d.outPos = 0
	}
}
