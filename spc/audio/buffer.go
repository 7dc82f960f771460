package audio

import (
	"time"

	"github.com/valerio/go-spc/spc"
)

// Duration returns how long pairs sample pairs play.
func Duration(pairs int) time.Duration {
	return time.Duration(pairs) * time.Second / spc.SampleRate
}

// Pairs returns the number of sample pairs played in d.
func Pairs(d time.Duration) int {
	return int(d * spc.SampleRate / time.Second)
}
