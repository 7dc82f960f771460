package spc

import "github.com/valerio/go-spc/spc/addr"

// echoRegion returns the RAM range the DSP's echo buffer occupies, ok is
// false when echo writes are disabled.
func (a *APU) echoRegion() (start, end int, ok bool) {
	if a.dsp.Read(addr.FLG)&addr.FLGEchoDisable != 0 {
		return 0, 0, false
	}
	start = 0x100 * int(a.dsp.Read(addr.ESA))
	size := 0x800 * int(a.dsp.Read(addr.EDL)&0x0F)
	if size == 0 {
		size = 4
	}
	end = min(start+size, addr.RAMSize)
	return start, end, true
}

func (a *APU) checkEchoAccess(address uint16) {
	if a.echoAccessed {
		return
	}
	start, end, ok := a.echoRegion()
	if ok && int(address) >= start && int(address) < end {
		a.echoAccessed = true
	}
}

// ClearEcho fills the echo buffer with $FF. Many .spc files carry stale
// echo data that is audible as a burst of noise when playback starts.
func (a *APU) ClearEcho() {
	start, end, ok := a.echoRegion()
	if !ok || a.dsp.Read(addr.EDL)&0x0F == 0 {
		return
	}
	ram := a.ram.Bytes()
	for i := start; i < end; i++ {
		ram[i] = 0xFF
	}
}
