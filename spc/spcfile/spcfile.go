// Package spcfile describes the .spc music file container: a snapshot of
// the sound coprocessor's memory and registers with an ID666 tag header.
package spcfile

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// Signature opens every file. Only the first SignatureCheckSize bytes are
	// compared when loading, the version digits vary between dumpers.
	Signature          = "SNES-SPC700 Sound File Data v0.30\x1A\x1A"
	SignatureSize      = 35
	SignatureCheckSize = 27

	// HasID666 marks a header carrying ID666 tags.
	HasID666 = 26
	Version  = 30
)

// Layout of the container.
const (
	OffsetHasID666 = 0x23
	OffsetVersion  = 0x24
	OffsetPC       = 0x25
	OffsetA        = 0x27
	OffsetX        = 0x28
	OffsetY        = 0x29
	OffsetPSW      = 0x2A
	OffsetSP       = 0x2B
	OffsetText     = 0x2C
	TextSize       = 212
	OffsetRAM      = 0x100
	RAMSize        = 0x10000
	OffsetDSP      = 0x10100
	DSPSize        = 128
	OffsetUnused   = 0x10180
	UnusedSize     = 0x40
	OffsetIPL      = 0x101C0
	IPLSize        = 0x40

	// MinFileSize covers everything up to the DSP registers, the trailing
	// blocks are optional.
	MinFileSize = 0x10180
	FileSize    = 0x10200
)

var (
	ErrFileTooSmall = errors.New("spc file too small")
	ErrNotSPC       = errors.New("not an spc file")
)

// Validate checks size and signature without looking at anything else.
func Validate(data []byte) error {
	if len(data) < MinFileSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrFileTooSmall, len(data), MinFileSize)
	}
	if !bytes.Equal(data[:SignatureCheckSize], []byte(Signature[:SignatureCheckSize])) {
		return ErrNotSPC
	}
	return nil
}

// HasIPL reports whether data includes the trailing boot ROM image.
func HasIPL(data []byte) bool {
	return len(data) >= FileSize
}

// InitHeader writes the signature and version and clears the tag text. The
// rest of out is left alone so it can be filled before or after.
func InitHeader(out []byte) {
	copy(out, Signature)
	out[OffsetHasID666] = HasID666
	out[OffsetVersion] = Version
	clear(out[OffsetText : OffsetText+TextSize])
}

// Registers is the CPU register image stored in the header.
type Registers struct {
	PC  uint16
	A   uint8
	X   uint8
	Y   uint8
	PSW uint8
	SP  uint8
}

// ReadRegisters decodes the header register image.
func ReadRegisters(data []byte) Registers {
	return Registers{
		PC:  uint16(data[OffsetPC]) | uint16(data[OffsetPC+1])<<8,
		A:   data[OffsetA],
		X:   data[OffsetX],
		Y:   data[OffsetY],
		PSW: data[OffsetPSW],
		SP:  data[OffsetSP],
	}
}

// WriteRegisters stores r into the header.
func WriteRegisters(out []byte, r Registers) {
	out[OffsetPC] = uint8(r.PC)
	out[OffsetPC+1] = uint8(r.PC >> 8)
	out[OffsetA] = r.A
	out[OffsetX] = r.X
	out[OffsetY] = r.Y
	out[OffsetPSW] = r.PSW
	out[OffsetSP] = r.SP
}
