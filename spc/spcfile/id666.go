package spcfile

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
	"time"
)

// OffsetSong is where the song title starts, SongSize its length.
const (
	OffsetSong = 0x2E
	SongSize   = 32
)

// ID666 field offsets. Text and binary tags agree up to the dump date.
const (
	id666Game    = 0x4E
	id666Dumper  = 0x6E
	id666Comment = 0x7E
	id666Date    = 0x9E

	textSeconds  = 0xA9
	textFade     = 0xAC
	textArtist   = 0xB1
	textMuted    = 0xD1
	textEmulator = 0xD2

	binSeconds  = 0xA9
	binFade     = 0xAC
	binArtist   = 0xB0
	binMuted    = 0xD0
	binEmulator = 0xD1
)

// Tags is the ID666 metadata of a file.
type Tags struct {
	Song     string
	Game     string
	Dumper   string
	Comment  string
	Artist   string
	Date     string
	Seconds  int // play time before fading
	FadeMS   int
	Muted    uint8 // default channel disables
	Emulator uint8
	Binary   bool
}

// Length is the intended play time including the fade.
func (t Tags) Length() time.Duration {
	return time.Duration(t.Seconds)*time.Second + time.Duration(t.FadeMS)*time.Millisecond
}

// ParseID666 returns the tags of a file, ok is false when the header has
// none.
func ParseID666(data []byte) (Tags, bool) {
	if len(data) < OffsetRAM || data[OffsetHasID666] != HasID666 {
		return Tags{}, false
	}

	t := Tags{
		Song:    field(data, OffsetSong, SongSize),
		Game:    field(data, id666Game, 32),
		Dumper:  field(data, id666Dumper, 16),
		Comment: field(data, id666Comment, 32),
	}

	if isTextTag(data) {
		t.Date = field(data, id666Date, 11)
		t.Seconds = number(data, textSeconds, 3)
		t.FadeMS = number(data, textFade, 5)
		t.Artist = field(data, textArtist, 32)
		t.Muted = data[textMuted]
		t.Emulator = data[textEmulator]
		return t, true
	}

	t.Binary = true
	day, month := data[id666Date], data[id666Date+1]
	year := binary.LittleEndian.Uint16(data[id666Date+2:])
	if year != 0 {
		t.Date = strconv.Itoa(int(month)) + "/" + strconv.Itoa(int(day)) + "/" + strconv.Itoa(int(year))
	}
	t.Seconds = int(data[binSeconds]) | int(data[binSeconds+1])<<8 | int(data[binSeconds+2])<<16
	t.FadeMS = int(binary.LittleEndian.Uint32(data[binFade:]))
	t.Artist = field(data, binArtist, 32)
	t.Muted = data[binMuted]
	t.Emulator = data[binEmulator]
	return t, true
}

// isTextTag guesses the tag flavor: text tags store the play length as
// ASCII digits, binary ones as little-endian integers.
func isTextTag(data []byte) bool {
	digits := 0
	for _, c := range data[textSeconds:textArtist] {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == 0:
		default:
			return false
		}
	}
	if digits > 0 {
		return true
	}
	// no lengths at all, a binary artist would start one byte early
	return data[binArtist] == 0
}

func field(data []byte, offset, size int) string {
	b := data[offset : offset+size]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

func number(data []byte, offset, size int) int {
	n, err := strconv.Atoi(field(data, offset, size))
	if err != nil {
		return 0
	}
	return n
}
