package addr

// memory map
const (
	// First byte of the register window.
	RegStart uint16 = 0x00F0
	// Last byte of the register window.
	RegEnd uint16 = 0x00FF
	// Stack page base. SP is an offset into it.
	StackPage uint16 = 0x0100
	// The IPL ROM overlays the top of RAM when CONTROL bit 7 is set.
	ROMStart uint16 = 0xFFC0
	// Reset vector inside the IPL ROM.
	ResetVector uint16 = 0xFFFE
	// TCALL 0 vector, TCALL n lives 2*n bytes below it.
	TCallVector uint16 = 0xFFDE

	ROMSize = 0x40
	RAMSize = 0x10000
)

// Register indices inside the $F0-$FF window (address - RegStart).
const (
	Test     = 0x0
	Control  = 0x1
	DSPAddr  = 0x2
	DSPData  = 0x3
	CPUIO0   = 0x4
	CPUIO1   = 0x5
	CPUIO2   = 0x6
	CPUIO3   = 0x7
	F8       = 0x8
	F9       = 0x9
	T0Target = 0xA
	T1Target = 0xB
	T2Target = 0xC
	T0Out    = 0xD
	T1Out    = 0xE
	T2Out    = 0xF

	RegCount  = 0x10
	PortCount = 4
)

// CONTROL register bits
const (
	ControlTimer0    = 0x01
	ControlTimer1    = 0x02
	ControlTimer2    = 0x04
	ControlClear01   = 0x10
	ControlClear23   = 0x20
	ControlROMEnable = 0x80
)

// Global DSP registers.
// Reference: https://problemkaputt.de/fullsnes.htm#snesapudspbrrsamples
const (
	MVOLL = 0x0C
	MVOLR = 0x1C
	EVOLL = 0x2C
	EVOLR = 0x3C
	KON   = 0x4C
	KOFF  = 0x5C
	FLG   = 0x6C
	ENDX  = 0x7C
	EFB   = 0x0D
	PMON  = 0x2D
	NON   = 0x3D
	EON   = 0x4D
	DIR   = 0x5D
	ESA   = 0x6D
	EDL   = 0x7D
	FIR   = 0x0F // FIR coefficient i lives at FIR + i*0x10

	DSPRegCount = 0x80
)

// Per-voice DSP registers, offset from voice*0x10.
const (
	VVOLL   = 0x0
	VVOLR   = 0x1
	VPITCHL = 0x2
	VPITCHH = 0x3
	VSRCN   = 0x4
	VADSR1  = 0x5
	VADSR2  = 0x6
	VGAIN   = 0x7
	VENVX   = 0x8
	VOUTX   = 0x9

	VoiceCount = 8
)

// FLG bits
const (
	FLGSoftReset   = 0x80
	FLGMute        = 0x40
	FLGEchoDisable = 0x20
	FLGNoiseRate   = 0x1F
)
