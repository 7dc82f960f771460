package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatMemory [0x10000]uint8

func (m *flatMemory) Read(addr uint16) uint8 { return m[addr] }

func load(pc uint16, program ...uint8) *flatMemory {
	m := &flatMemory{}
	for i, b := range program {
		m[pc+uint16(i)] = b
	}
	return m
}

func TestDisassembleAt(t *testing.T) {
	tests := []struct {
		name     string
		program  []uint8
		expected string
		length   int
	}{
		{"implied", []uint8{0x00}, "NOP", 1},
		{"tcall", []uint8{0x01}, "TCALL 0", 1},
		{"immediate", []uint8{0xE8, 0x42}, "MOV A,#$42", 2},
		{"direct page", []uint8{0xE4, 0xF4}, "MOV A,$F4", 2},
		{"direct page indexed", []uint8{0xF4, 0x10}, "MOV A,$10+X", 2},
		{"indirect indexed", []uint8{0xF7, 0x20}, "MOV A,[$20]+Y", 2},
		{"store direct page", []uint8{0xC4, 0xF4}, "MOV $F4,A", 2},
		{"absolute", []uint8{0xE5, 0x34, 0x12}, "MOV A,!$1234", 3},
		{"absolute indexed jump", []uint8{0x1F, 0x00, 0x03}, "JMP [!$0300+X]", 3},
		{"call", []uint8{0x3F, 0xC0, 0xFF}, "CALL !$FFC0", 3},
		{"dp to dp", []uint8{0xFA, 0x10, 0x20}, "MOV $20,$10", 3},
		{"dp immediate", []uint8{0x8F, 0x6C, 0xF2}, "MOV $F2,#$6C", 3},
		{"branch forward", []uint8{0x10, 0x04}, "BPL $0206", 2},
		{"branch backward", []uint8{0x2F, 0xFE}, "BRA $0200", 2},
		{"dbnz y", []uint8{0xFE, 0xFC}, "DBNZ Y,$01FE", 2},
		{"cbne", []uint8{0x2E, 0x30, 0x02}, "CBNE $30,$0205", 3},
		{"bit branch", []uint8{0x83, 0x12, 0xFD}, "BBS $12.4,$0200", 3},
		{"set bit", []uint8{0xE2, 0x40}, "SET1 $40.7", 2},
		{"absolute bit", []uint8{0xAA, 0x34, 0x52}, "MOV1 C,$1234.2", 3},
		{"negated bit", []uint8{0x2A, 0x00, 0x20}, "OR1 C,/$0000.1", 3},
		{"pcall", []uint8{0x4F, 0x80}, "PCALL $FF80", 2},
		{"word op", []uint8{0xBA, 0xF4}, "MOVW YA,$F4", 2},
		{"autoincrement", []uint8{0xAF}, "MOV (X)+,A", 1},
		{"sleep", []uint8{0xEF}, "SLEEP", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := DisassembleAt(0x0200, load(0x0200, tt.program...))
			assert.Equal(t, tt.expected, line.Instruction)
			assert.Equal(t, tt.length, line.Length)
			assert.Equal(t, uint16(0x0200), line.Address)
			assert.Equal(t, tt.program, line.Bytes)
		})
	}
}

func TestDisassembleWrapsAddressSpace(t *testing.T) {
	m := &flatMemory{}
	m[0xFFFF] = 0xE5
	m[0x0000] = 0xCD
	m[0x0001] = 0xAB

	line := DisassembleAt(0xFFFF, m)
	assert.Equal(t, "MOV A,!$ABCD", line.Instruction)
}

func TestDisassembleSequence(t *testing.T) {
	m := load(0x0400, 0xE4, 0xF4, 0xC4, 0xF4, 0x2F, 0xFA)
	lines := Disassemble(0x0400, 3, m)
	require.Len(t, lines, 3)

	assert.Equal(t, "MOV A,$F4", lines[0].Instruction)
	assert.Equal(t, uint16(0x0402), lines[1].Address)
	assert.Equal(t, "MOV $F4,A", lines[1].Instruction)
	assert.Equal(t, "BRA $0400", lines[2].Instruction)
}

func TestDisassembleBytes(t *testing.T) {
	data := []byte{0x8F, 0x01, 0xF1, 0xE5}

	text, length := DisassembleBytes(data, 0, 0x0400)
	assert.Equal(t, "MOV $F1,#$01", text)
	assert.Equal(t, 3, length)

	text, length = DisassembleBytes(data, 3, 0x0400)
	assert.Equal(t, "MOV A,!$0000", text)
	assert.Equal(t, 3, length)

	text, length = DisassembleBytes(data, 9, 0x0400)
	assert.Equal(t, "???", text)
	assert.Equal(t, 1, length)
}

func TestLengthsMatchTemplates(t *testing.T) {
	for op, tmpl := range InstructionTemplates {
		length := InstructionLength(uint8(op))
		assert.GreaterOrEqual(t, length, 1, tmpl)
		assert.LessOrEqual(t, length, 3, tmpl)
		assert.NotContains(t, DisassembleAt(0, &flatMemory{uint8(op)}).Instruction, "#i", tmpl)
	}
}
