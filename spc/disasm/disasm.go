// Package disasm decodes SPC-700 machine code into assembler text.
package disasm

import (
	"fmt"
	"strings"
)

//go:generate go run ../../cmd/gen_opcode_templates

// MemoryReader reads memory without side effects.
type MemoryReader interface {
	Read(addr uint16) uint8
}

// DisassemblyLine represents a single disassembled instruction
type DisassemblyLine struct {
	Address     uint16
	Instruction string
	Length      int
	Bytes       []uint8
}

type operandMode int

const (
	modeNone operandMode = iota
	modeDP
	modeImm
	modeRel
	modeUpage
	modeAbs
	modeBit
	modeDPDP
	modeDPImm
	modeDPRel
)

var (
	modes   [256]operandMode
	lengths [256]int
)

func init() {
	for op, tmpl := range InstructionTemplates {
		m := modeOf(tmpl)
		modes[op] = m
		lengths[op] = m.length()
	}
}

func modeOf(tmpl string) operandMode {
	_, operands, _ := strings.Cut(tmpl, " ")
	switch {
	case strings.Contains(operands, "dd,ds"):
		return modeDPDP
	case strings.Contains(operands, "m.b"):
		return modeBit
	case strings.Contains(operands, "!a"):
		return modeAbs
	case strings.Contains(operands, "d,#i"):
		return modeDPImm
	case strings.Contains(operands, "#i"):
		return modeImm
	case strings.HasSuffix(operands, "r") && strings.Contains(operands, "d"):
		return modeDPRel
	case strings.HasSuffix(operands, "r"):
		return modeRel
	case operands == "u":
		return modeUpage
	case strings.Contains(operands, "d"):
		return modeDP
	}
	return modeNone
}

func (m operandMode) length() int {
	switch m {
	case modeNone:
		return 1
	case modeDP, modeImm, modeRel, modeUpage:
		return 2
	}
	return 3
}

// InstructionLength returns the encoded size of an opcode in bytes.
func InstructionLength(opcode uint8) int {
	return lengths[opcode]
}

// DisassembleAt disassembles the instruction at the given program counter.
// Operands wrap around the end of the address space.
func DisassembleAt(pc uint16, mem MemoryReader) DisassemblyLine {
	opcode := mem.Read(pc)
	length := lengths[opcode]

	raw := make([]uint8, length)
	raw[0] = opcode
	for i := 1; i < length; i++ {
		raw[i] = mem.Read(pc + uint16(i))
	}

	return DisassemblyLine{
		Address:     pc,
		Instruction: format(pc, raw),
		Length:      length,
		Bytes:       raw,
	}
}

// DisassembleBytes disassembles the instruction starting at data[offset],
// assuming data[0] is loaded at base. Truncated instructions are reported
// with their missing operand bytes as zero.
func DisassembleBytes(data []byte, offset int, base uint16) (string, int) {
	if offset < 0 || offset >= len(data) {
		return "???", 1
	}

	opcode := data[offset]
	length := lengths[opcode]
	raw := make([]uint8, length)
	copy(raw, data[offset:])
	raw[0] = opcode

	return format(base+uint16(offset), raw), length
}

// Disassemble decodes count consecutive instructions starting at pc.
func Disassemble(pc uint16, count int, mem MemoryReader) []DisassemblyLine {
	lines := make([]DisassemblyLine, 0, count)
	for i := 0; i < count; i++ {
		line := DisassembleAt(pc, mem)
		lines = append(lines, line)
		pc += uint16(line.Length)
	}
	return lines
}

func format(pc uint16, raw []uint8) string {
	opcode := raw[0]
	tmpl := InstructionTemplates[opcode]

	dp := func(v uint8) string { return fmt.Sprintf("$%02X", v) }
	target := func(rel uint8) string {
		return fmt.Sprintf("$%04X", pc+uint16(len(raw))+uint16(int8(rel)))
	}

	switch modes[opcode] {
	case modeDP:
		return strings.Replace(tmpl, "d", dp(raw[1]), 1)
	case modeImm:
		return strings.Replace(tmpl, "#i", "#"+dp(raw[1]), 1)
	case modeRel:
		return replaceLast(tmpl, "r", target(raw[1]))
	case modeUpage:
		return strings.Replace(tmpl, "u", fmt.Sprintf("$FF%02X", raw[1]), 1)
	case modeAbs:
		return strings.Replace(tmpl, "!a", fmt.Sprintf("!$%04X", word(raw)), 1)
	case modeBit:
		w := word(raw)
		return strings.Replace(tmpl, "m.b", fmt.Sprintf("$%04X.%d", w&0x1FFF, w>>13), 1)
	case modeDPDP:
		return strings.Replace(tmpl, "dd,ds", dp(raw[2])+","+dp(raw[1]), 1)
	case modeDPImm:
		s := strings.Replace(tmpl, "#i", "#"+dp(raw[1]), 1)
		return strings.Replace(s, "d", dp(raw[2]), 1)
	case modeDPRel:
		s := replaceLast(tmpl, "r", target(raw[2]))
		return strings.Replace(s, "d", dp(raw[1]), 1)
	}
	return tmpl
}

func word(raw []uint8) uint16 {
	return uint16(raw[1]) | uint16(raw[2])<<8
}

func replaceLast(s, old, repl string) string {
	i := strings.LastIndex(s, old)
	if i < 0 {
		return s
	}
	return s[:i] + repl + s[i+len(old):]
}
