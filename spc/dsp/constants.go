package dsp

// Timing and buffer constants
// Reference: https://problemkaputt.de/fullsnes.htm#snesapudsp
const (
	// ClocksPerSample is the number of SPC clocks per stereo output pair.
	ClocksPerSample = 32
	// SampleRate is the output rate in stereo pairs per second.
	SampleRate = 32000
	// ExtraSize is the capacity, in samples, of the overflow buffer used
	// when the caller's output buffer is full.
	ExtraSize = 16

	brrBlockSize = 9
	brrBufSize   = 12
	echoHistSize = 8

	// the global envelope/noise counter cycles through this many samples
	counterRange = 2048 * 5 * 3

	noiseSeed = 0x4000

	// surround is suppressed when left*right volume falls below this
	surroundOn  = -0x4000
	surroundOff = 0
)

// counterRates holds the period in samples of each of the 32 envelope and
// noise rates. Rate 0 never fires.
var counterRates = [32]int{
	counterRange + 1,
	2048, 1536,
	1280, 1024, 768,
	640, 512, 384,
	320, 256, 192,
	160, 128, 96,
	80, 64, 48,
	40, 32, 24,
	20, 16, 12,
	10, 8, 6,
	5, 4, 3,
	2,
	1,
}

var counterOffsets = [32]int{
	1, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	536, 0, 1040,
	0,
	0,
}

type envMode uint8

const (
	envRelease envMode = iota
	envAttack
	envDecay
	envSustain
)

func (m envMode) String() string {
	switch m {
	case envRelease:
		return "release"
	case envAttack:
		return "attack"
	case envDecay:
		return "decay"
	case envSustain:
		return "sustain"
	default:
		return "?"
	}
}
