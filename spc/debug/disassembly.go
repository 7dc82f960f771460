package debug

import "github.com/valerio/go-spc/spc/disasm"

type DisasmLine struct {
	Address     uint16
	Instruction string
	IsCurrent   bool
}

// CreateDisassembly decodes maxLines instructions starting at pc.
func CreateDisassembly(mem disasm.MemoryReader, pc uint16, maxLines int) []DisasmLine {
	lines := make([]DisasmLine, 0, maxLines)
	for _, l := range disasm.Disassemble(pc, maxLines, mem) {
		lines = append(lines, DisasmLine{
			Address:     l.Address,
			Instruction: l.Instruction,
			IsCurrent:   l.Address == pc,
		})
	}
	return lines
}
