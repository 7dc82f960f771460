package dsp

import (
	"errors"

	"github.com/valerio/go-spc/spc/state"
)

var errBadVoice = errors.New("dsp voice state out of range")

// Serialize writes the synthesis state. Output routing and configuration are
// owned by the caller and not included.
func (d *DSP) Serialize(w *state.Writer) {
	w.WriteData(d.regs[:])
	for i := range d.voices {
		v := &d.voices[i]
		for _, s := range v.buf {
			w.Write16(uint16(int16(s)))
		}
		w.Write8(uint8(v.bufPos))
		w.Write16(uint16(v.interpPos))
		w.Write16(uint16(v.brrAddr))
		w.Write8(uint8(v.brrOffset))
		w.Write8(uint8(v.konDelay))
		w.Write8(uint8(v.envMode))
		w.Write16(uint16(v.env))
		w.WriteInt(v.hiddenEnv)
	}
	for i := range d.echoHist {
		w.Write16(uint16(int16(d.echoHist[i][0])))
		w.Write16(uint16(int16(d.echoHist[i][1])))
	}
	w.Write8(uint8(d.echoHistPos))
	w.Write16(uint16(d.echoOffset))
	w.Write16(uint16(d.echoLength))
	w.WriteBool(d.everyOtherSample)
	w.Write8(uint8(d.kon))
	w.Write8(uint8(d.newKON))
	w.Write8(uint8(d.tKOFF))
	w.WriteBool(d.konCheck)
	w.Write16(uint16(d.noise))
	w.Write16(uint16(d.counter))
	w.Write8(uint8(d.phase))
}

// Deserialize restores state written by Serialize.
func (d *DSP) Deserialize(r *state.Reader) {
	r.ReadData(d.regs[:])
	for i := range d.voices {
		v := &d.voices[i]
		for j := range v.buf {
			v.buf[j] = int(int16(r.Read16()))
		}
		v.bufPos = int(r.Read8())
		v.interpPos = int(r.Read16())
		v.brrAddr = int(r.Read16())
		v.brrOffset = int(r.Read8())
		v.konDelay = int(r.Read8())
		v.envMode = envMode(r.Read8())
		v.env = int(r.Read16())
		v.hiddenEnv = r.ReadInt()
		if v.bufPos >= brrBufSize || v.interpPos > 0x7FFF || v.brrOffset >= brrBlockSize ||
			v.konDelay > 5 || v.envMode > envSustain || v.env > 0x7FF {
			r.Fail(errBadVoice)
		}
	}
	for i := range d.echoHist {
		d.echoHist[i][0] = int(int16(r.Read16()))
		d.echoHist[i][1] = int(int16(r.Read16()))
	}
	d.echoHistPos = int(r.Read8()) % echoHistSize
	d.echoOffset = int(r.Read16())
	d.echoLength = int(r.Read16())
	d.everyOtherSample = r.ReadBool()
	d.kon = int(r.Read8())
	d.newKON = int(r.Read8())
	d.tKOFF = int(r.Read8())
	d.konCheck = r.ReadBool()
	d.noise = int(r.Read16())
	d.counter = int(r.Read16()) % counterRange
	d.phase = int(r.Read8()) % ClocksPerSample
}
