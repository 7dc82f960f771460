package cpu

import "github.com/valerio/go-spc/spc/addr"

// Opcode executes one instruction and returns the cycles it used.
type Opcode func(*CPU) int

var opcodes = [256]Opcode{
	opcode0x00, opcode0x01, opcode0x02, opcode0x03, opcode0x04, opcode0x05, opcode0x06, opcode0x07, opcode0x08, opcode0x09, opcode0x0A, opcode0x0B, opcode0x0C, opcode0x0D, opcode0x0E, opcode0x0F,
	opcode0x10, opcode0x11, opcode0x12, opcode0x13, opcode0x14, opcode0x15, opcode0x16, opcode0x17, opcode0x18, opcode0x19, opcode0x1A, opcode0x1B, opcode0x1C, opcode0x1D, opcode0x1E, opcode0x1F,
	opcode0x20, opcode0x21, opcode0x22, opcode0x23, opcode0x24, opcode0x25, opcode0x26, opcode0x27, opcode0x28, opcode0x29, opcode0x2A, opcode0x2B, opcode0x2C, opcode0x2D, opcode0x2E, opcode0x2F,
	opcode0x30, opcode0x31, opcode0x32, opcode0x33, opcode0x34, opcode0x35, opcode0x36, opcode0x37, opcode0x38, opcode0x39, opcode0x3A, opcode0x3B, opcode0x3C, opcode0x3D, opcode0x3E, opcode0x3F,
	opcode0x40, opcode0x41, opcode0x42, opcode0x43, opcode0x44, opcode0x45, opcode0x46, opcode0x47, opcode0x48, opcode0x49, opcode0x4A, opcode0x4B, opcode0x4C, opcode0x4D, opcode0x4E, opcode0x4F,
	opcode0x50, opcode0x51, opcode0x52, opcode0x53, opcode0x54, opcode0x55, opcode0x56, opcode0x57, opcode0x58, opcode0x59, opcode0x5A, opcode0x5B, opcode0x5C, opcode0x5D, opcode0x5E, opcode0x5F,
	opcode0x60, opcode0x61, opcode0x62, opcode0x63, opcode0x64, opcode0x65, opcode0x66, opcode0x67, opcode0x68, opcode0x69, opcode0x6A, opcode0x6B, opcode0x6C, opcode0x6D, opcode0x6E, opcode0x6F,
	opcode0x70, opcode0x71, opcode0x72, opcode0x73, opcode0x74, opcode0x75, opcode0x76, opcode0x77, opcode0x78, opcode0x79, opcode0x7A, opcode0x7B, opcode0x7C, opcode0x7D, opcode0x7E, opcode0x7F,
	opcode0x80, opcode0x81, opcode0x82, opcode0x83, opcode0x84, opcode0x85, opcode0x86, opcode0x87, opcode0x88, opcode0x89, opcode0x8A, opcode0x8B, opcode0x8C, opcode0x8D, opcode0x8E, opcode0x8F,
	opcode0x90, opcode0x91, opcode0x92, opcode0x93, opcode0x94, opcode0x95, opcode0x96, opcode0x97, opcode0x98, opcode0x99, opcode0x9A, opcode0x9B, opcode0x9C, opcode0x9D, opcode0x9E, opcode0x9F,
	opcode0xA0, opcode0xA1, opcode0xA2, opcode0xA3, opcode0xA4, opcode0xA5, opcode0xA6, opcode0xA7, opcode0xA8, opcode0xA9, opcode0xAA, opcode0xAB, opcode0xAC, opcode0xAD, opcode0xAE, opcode0xAF,
	opcode0xB0, opcode0xB1, opcode0xB2, opcode0xB3, opcode0xB4, opcode0xB5, opcode0xB6, opcode0xB7, opcode0xB8, opcode0xB9, opcode0xBA, opcode0xBB, opcode0xBC, opcode0xBD, opcode0xBE, opcode0xBF,
	opcode0xC0, opcode0xC1, opcode0xC2, opcode0xC3, opcode0xC4, opcode0xC5, opcode0xC6, opcode0xC7, opcode0xC8, opcode0xC9, opcode0xCA, opcode0xCB, opcode0xCC, opcode0xCD, opcode0xCE, opcode0xCF,
	opcode0xD0, opcode0xD1, opcode0xD2, opcode0xD3, opcode0xD4, opcode0xD5, opcode0xD6, opcode0xD7, opcode0xD8, opcode0xD9, opcode0xDA, opcode0xDB, opcode0xDC, opcode0xDD, opcode0xDE, opcode0xDF,
	opcode0xE0, opcode0xE1, opcode0xE2, opcode0xE3, opcode0xE4, opcode0xE5, opcode0xE6, opcode0xE7, opcode0xE8, opcode0xE9, opcode0xEA, opcode0xEB, opcode0xEC, opcode0xED, opcode0xEE, opcode0xEF,
	opcode0xF0, opcode0xF1, opcode0xF2, opcode0xF3, opcode0xF4, opcode0xF5, opcode0xF6, opcode0xF7, opcode0xF8, opcode0xF9, opcode0xFA, opcode0xFB, opcode0xFC, opcode0xFD, opcode0xFE, opcode0xFF,
}

// NOP
// #0x00:
func opcode0x00(_ *CPU) int {
	return 2
}

// TCALL 0
// #0x01:
func opcode0x01(c *CPU) int {
	return c.tcall(0)
}

// SET1 d.0
// #0x02:
func opcode0x02(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x01 })
	return 4
}

// BBS d.0,r
// #0x03:
func opcode0x03(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x01 != 0, 7)
}

// OR A,d
// #0x04:
func opcode0x04(c *CPU) int {
	c.aluA(opOR, c.modeDP())
	return 3
}

// OR A,!a
// #0x05:
func opcode0x05(c *CPU) int {
	c.aluA(opOR, c.modeAbs())
	return 4
}

// OR A,(X)
// #0x06:
func opcode0x06(c *CPU) int {
	c.aluA(opOR, c.modeX())
	return 3
}

// OR A,[d+X]
// #0x07:
func opcode0x07(c *CPU) int {
	c.aluA(opOR, c.modeIndX())
	return 6
}

// OR A,#i
// #0x08:
func opcode0x08(c *CPU) int {
	c.A = opOR(c, c.A, c.imm())
	return 2
}

// OR dd,ds
// #0x09:
func opcode0x09(c *CPU) int {
	src := c.read(c.modeDP())
	c.aluMem(opOR, c.modeDP(), src, true)
	return 6
}

// OR1 C,m.b
// #0x0A:
func opcode0x0A(c *CPU) int {
	a, b := c.modeBit()
	if (c.read(a)>>b)&1 != 0 {
		c.setFlag(flagC, true)
	}
	return 5
}

// ASL d
// #0x0B:
func opcode0x0B(c *CPU) int {
	c.modify(c.modeDP(), c.asl)
	return 4
}

// ASL !a
// #0x0C:
func opcode0x0C(c *CPU) int {
	c.modify(c.modeAbs(), c.asl)
	return 5
}

// PUSH PSW
// #0x0D:
func opcode0x0D(c *CPU) int {
	c.push(c.PSW)
	return 4
}

// TSET1 !a
// #0x0E:
func opcode0x0E(c *CPU) int {
	a := c.modeAbs()
	v := c.read(a)
	c.setNZ(c.A - v)
	c.write(a, v|c.A)
	return 6
}

// BRK
// #0x0F:
func opcode0x0F(c *CPU) int {
	c.pushWord(c.PC)
	c.push(c.PSW)
	c.setFlag(flagB, true)
	c.setFlag(flagI, false)
	c.PC = c.readWord(addr.TCallVector)
	return 8
}

// BPL r
// #0x10:
func opcode0x10(c *CPU) int {
	return c.branch(!c.flag(flagN), 4)
}

// TCALL 1
// #0x11:
func opcode0x11(c *CPU) int {
	return c.tcall(1)
}

// CLR1 d.0
// #0x12:
func opcode0x12(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x01 })
	return 4
}

// BBC d.0,r
// #0x13:
func opcode0x13(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x01 == 0, 7)
}

// OR A,d+X
// #0x14:
func opcode0x14(c *CPU) int {
	c.aluA(opOR, c.modeDPX())
	return 4
}

// OR A,!a+X
// #0x15:
func opcode0x15(c *CPU) int {
	c.aluA(opOR, c.modeAbsX())
	return 5
}

// OR A,!a+Y
// #0x16:
func opcode0x16(c *CPU) int {
	c.aluA(opOR, c.modeAbsY())
	return 5
}

// OR A,[d]+Y
// #0x17:
func opcode0x17(c *CPU) int {
	c.aluA(opOR, c.modeIndY())
	return 6
}

// OR d,#i
// #0x18:
func opcode0x18(c *CPU) int {
	src := c.imm()
	c.aluMem(opOR, c.modeDP(), src, true)
	return 5
}

// OR (X),(Y)
// #0x19:
func opcode0x19(c *CPU) int {
	src := c.read(c.modeY())
	c.aluMem(opOR, c.modeX(), src, true)
	return 5
}

// DECW d
// #0x1A:
func opcode0x1A(c *CPU) int {
	d := c.imm()
	v := c.readDPWord(d) - 1
	c.writeDPWord(d, v)
	c.setNZ16(v)
	return 6
}

// ASL d+X
// #0x1B:
func opcode0x1B(c *CPU) int {
	c.modify(c.modeDPX(), c.asl)
	return 5
}

// ASL A
// #0x1C:
func opcode0x1C(c *CPU) int {
	c.A = c.asl(c.A)
	return 2
}

// DEC X
// #0x1D:
func opcode0x1D(c *CPU) int {
	c.X = c.dec(c.X)
	return 2
}

// CMP X,!a
// #0x1E:
func opcode0x1E(c *CPU) int {
	opCMP(c, c.X, c.read(c.modeAbs()))
	return 4
}

// JMP [!a+X]
// #0x1F:
func opcode0x1F(c *CPU) int {
	c.PC = c.readWord(c.modeAbsX())
	return 6
}

// CLRP
// #0x20:
func opcode0x20(c *CPU) int {
	c.setFlag(flagP, false)
	return 2
}

// TCALL 2
// #0x21:
func opcode0x21(c *CPU) int {
	return c.tcall(2)
}

// SET1 d.1
// #0x22:
func opcode0x22(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x02 })
	return 4
}

// BBS d.1,r
// #0x23:
func opcode0x23(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x02 != 0, 7)
}

// AND A,d
// #0x24:
func opcode0x24(c *CPU) int {
	c.aluA(opAND, c.modeDP())
	return 3
}

// AND A,!a
// #0x25:
func opcode0x25(c *CPU) int {
	c.aluA(opAND, c.modeAbs())
	return 4
}

// AND A,(X)
// #0x26:
func opcode0x26(c *CPU) int {
	c.aluA(opAND, c.modeX())
	return 3
}

// AND A,[d+X]
// #0x27:
func opcode0x27(c *CPU) int {
	c.aluA(opAND, c.modeIndX())
	return 6
}

// AND A,#i
// #0x28:
func opcode0x28(c *CPU) int {
	c.A = opAND(c, c.A, c.imm())
	return 2
}

// AND dd,ds
// #0x29:
func opcode0x29(c *CPU) int {
	src := c.read(c.modeDP())
	c.aluMem(opAND, c.modeDP(), src, true)
	return 6
}

// OR1 C,/m.b
// #0x2A:
func opcode0x2A(c *CPU) int {
	a, b := c.modeBit()
	if (c.read(a)>>b)&1 == 0 {
		c.setFlag(flagC, true)
	}
	return 5
}

// ROL d
// #0x2B:
func opcode0x2B(c *CPU) int {
	c.modify(c.modeDP(), c.rol)
	return 4
}

// ROL !a
// #0x2C:
func opcode0x2C(c *CPU) int {
	c.modify(c.modeAbs(), c.rol)
	return 5
}

// PUSH A
// #0x2D:
func opcode0x2D(c *CPU) int {
	c.push(c.A)
	return 4
}

// CBNE d,r
// #0x2E:
func opcode0x2E(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v != c.A, 7)
}

// BRA r
// #0x2F:
func opcode0x2F(c *CPU) int {
	return c.branch(true, 4)
}

// BMI r
// #0x30:
func opcode0x30(c *CPU) int {
	return c.branch(c.flag(flagN), 4)
}

// TCALL 3
// #0x31:
func opcode0x31(c *CPU) int {
	return c.tcall(3)
}

// CLR1 d.1
// #0x32:
func opcode0x32(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x02 })
	return 4
}

// BBC d.1,r
// #0x33:
func opcode0x33(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x02 == 0, 7)
}

// AND A,d+X
// #0x34:
func opcode0x34(c *CPU) int {
	c.aluA(opAND, c.modeDPX())
	return 4
}

// AND A,!a+X
// #0x35:
func opcode0x35(c *CPU) int {
	c.aluA(opAND, c.modeAbsX())
	return 5
}

// AND A,!a+Y
// #0x36:
func opcode0x36(c *CPU) int {
	c.aluA(opAND, c.modeAbsY())
	return 5
}

// AND A,[d]+Y
// #0x37:
func opcode0x37(c *CPU) int {
	c.aluA(opAND, c.modeIndY())
	return 6
}

// AND d,#i
// #0x38:
func opcode0x38(c *CPU) int {
	src := c.imm()
	c.aluMem(opAND, c.modeDP(), src, true)
	return 5
}

// AND (X),(Y)
// #0x39:
func opcode0x39(c *CPU) int {
	src := c.read(c.modeY())
	c.aluMem(opAND, c.modeX(), src, true)
	return 5
}

// INCW d
// #0x3A:
func opcode0x3A(c *CPU) int {
	d := c.imm()
	v := c.readDPWord(d) + 1
	c.writeDPWord(d, v)
	c.setNZ16(v)
	return 6
}

// ROL d+X
// #0x3B:
func opcode0x3B(c *CPU) int {
	c.modify(c.modeDPX(), c.rol)
	return 5
}

// ROL A
// #0x3C:
func opcode0x3C(c *CPU) int {
	c.A = c.rol(c.A)
	return 2
}

// INC X
// #0x3D:
func opcode0x3D(c *CPU) int {
	c.X = c.inc(c.X)
	return 2
}

// CMP X,d
// #0x3E:
func opcode0x3E(c *CPU) int {
	opCMP(c, c.X, c.read(c.modeDP()))
	return 3
}

// CALL !a
// #0x3F:
func opcode0x3F(c *CPU) int {
	c.call(c.modeAbs())
	return 8
}

// SETP
// #0x40:
func opcode0x40(c *CPU) int {
	c.setFlag(flagP, true)
	return 2
}

// TCALL 4
// #0x41:
func opcode0x41(c *CPU) int {
	return c.tcall(4)
}

// SET1 d.2
// #0x42:
func opcode0x42(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x04 })
	return 4
}

// BBS d.2,r
// #0x43:
func opcode0x43(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x04 != 0, 7)
}

// EOR A,d
// #0x44:
func opcode0x44(c *CPU) int {
	c.aluA(opEOR, c.modeDP())
	return 3
}

// EOR A,!a
// #0x45:
func opcode0x45(c *CPU) int {
	c.aluA(opEOR, c.modeAbs())
	return 4
}

// EOR A,(X)
// #0x46:
func opcode0x46(c *CPU) int {
	c.aluA(opEOR, c.modeX())
	return 3
}

// EOR A,[d+X]
// #0x47:
func opcode0x47(c *CPU) int {
	c.aluA(opEOR, c.modeIndX())
	return 6
}

// EOR A,#i
// #0x48:
func opcode0x48(c *CPU) int {
	c.A = opEOR(c, c.A, c.imm())
	return 2
}

// EOR dd,ds
// #0x49:
func opcode0x49(c *CPU) int {
	src := c.read(c.modeDP())
	c.aluMem(opEOR, c.modeDP(), src, true)
	return 6
}

// AND1 C,m.b
// #0x4A:
func opcode0x4A(c *CPU) int {
	a, b := c.modeBit()
	if (c.read(a)>>b)&1 == 0 {
		c.setFlag(flagC, false)
	}
	return 4
}

// LSR d
// #0x4B:
func opcode0x4B(c *CPU) int {
	c.modify(c.modeDP(), c.lsr)
	return 4
}

// LSR !a
// #0x4C:
func opcode0x4C(c *CPU) int {
	c.modify(c.modeAbs(), c.lsr)
	return 5
}

// PUSH X
// #0x4D:
func opcode0x4D(c *CPU) int {
	c.push(c.X)
	return 4
}

// TCLR1 !a
// #0x4E:
func opcode0x4E(c *CPU) int {
	a := c.modeAbs()
	v := c.read(a)
	c.setNZ(c.A - v)
	c.write(a, v&^c.A)
	return 6
}

// PCALL u
// #0x4F:
func opcode0x4F(c *CPU) int {
	c.call(0xFF00 | uint16(c.imm()))
	return 6
}

// BVC r
// #0x50:
func opcode0x50(c *CPU) int {
	return c.branch(!c.flag(flagV), 4)
}

// TCALL 5
// #0x51:
func opcode0x51(c *CPU) int {
	return c.tcall(5)
}

// CLR1 d.2
// #0x52:
func opcode0x52(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x04 })
	return 4
}

// BBC d.2,r
// #0x53:
func opcode0x53(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x04 == 0, 7)
}

// EOR A,d+X
// #0x54:
func opcode0x54(c *CPU) int {
	c.aluA(opEOR, c.modeDPX())
	return 4
}

// EOR A,!a+X
// #0x55:
func opcode0x55(c *CPU) int {
	c.aluA(opEOR, c.modeAbsX())
	return 5
}

// EOR A,!a+Y
// #0x56:
func opcode0x56(c *CPU) int {
	c.aluA(opEOR, c.modeAbsY())
	return 5
}

// EOR A,[d]+Y
// #0x57:
func opcode0x57(c *CPU) int {
	c.aluA(opEOR, c.modeIndY())
	return 6
}

// EOR d,#i
// #0x58:
func opcode0x58(c *CPU) int {
	src := c.imm()
	c.aluMem(opEOR, c.modeDP(), src, true)
	return 5
}

// EOR (X),(Y)
// #0x59:
func opcode0x59(c *CPU) int {
	src := c.read(c.modeY())
	c.aluMem(opEOR, c.modeX(), src, true)
	return 5
}

// CMPW YA,d
// #0x5A:
func opcode0x5A(c *CPU) int {
	c.cmpw(c.readDPWord(c.imm()))
	return 4
}

// LSR d+X
// #0x5B:
func opcode0x5B(c *CPU) int {
	c.modify(c.modeDPX(), c.lsr)
	return 5
}

// LSR A
// #0x5C:
func opcode0x5C(c *CPU) int {
	c.A = c.lsr(c.A)
	return 2
}

// MOV X,A
// #0x5D:
func opcode0x5D(c *CPU) int {
	c.X = c.A
	c.setNZ(c.X)
	return 2
}

// CMP Y,!a
// #0x5E:
func opcode0x5E(c *CPU) int {
	opCMP(c, c.Y, c.read(c.modeAbs()))
	return 4
}

// JMP !a
// #0x5F:
func opcode0x5F(c *CPU) int {
	c.PC = c.modeAbs()
	return 3
}

// CLRC
// #0x60:
func opcode0x60(c *CPU) int {
	c.setFlag(flagC, false)
	return 2
}

// TCALL 6
// #0x61:
func opcode0x61(c *CPU) int {
	return c.tcall(6)
}

// SET1 d.3
// #0x62:
func opcode0x62(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x08 })
	return 4
}

// BBS d.3,r
// #0x63:
func opcode0x63(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x08 != 0, 7)
}

// CMP A,d
// #0x64:
func opcode0x64(c *CPU) int {
	c.aluA(opCMP, c.modeDP())
	return 3
}

// CMP A,!a
// #0x65:
func opcode0x65(c *CPU) int {
	c.aluA(opCMP, c.modeAbs())
	return 4
}

// CMP A,(X)
// #0x66:
func opcode0x66(c *CPU) int {
	c.aluA(opCMP, c.modeX())
	return 3
}

// CMP A,[d+X]
// #0x67:
func opcode0x67(c *CPU) int {
	c.aluA(opCMP, c.modeIndX())
	return 6
}

// CMP A,#i
// #0x68:
func opcode0x68(c *CPU) int {
	c.A = opCMP(c, c.A, c.imm())
	return 2
}

// CMP dd,ds
// #0x69:
func opcode0x69(c *CPU) int {
	src := c.read(c.modeDP())
	c.aluMem(opCMP, c.modeDP(), src, false)
	return 6
}

// AND1 C,/m.b
// #0x6A:
func opcode0x6A(c *CPU) int {
	a, b := c.modeBit()
	if (c.read(a)>>b)&1 != 0 {
		c.setFlag(flagC, false)
	}
	return 4
}

// ROR d
// #0x6B:
func opcode0x6B(c *CPU) int {
	c.modify(c.modeDP(), c.ror)
	return 4
}

// ROR !a
// #0x6C:
func opcode0x6C(c *CPU) int {
	c.modify(c.modeAbs(), c.ror)
	return 5
}

// PUSH Y
// #0x6D:
func opcode0x6D(c *CPU) int {
	c.push(c.Y)
	return 4
}

// DBNZ d,r
// #0x6E:
func opcode0x6E(c *CPU) int {
	a := c.modeDP()
	v := c.read(a) - 1
	c.write(a, v)
	return c.branch(v != 0, 7)
}

// RET
// #0x6F:
func opcode0x6F(c *CPU) int {
	c.PC = c.popWord()
	return 5
}

// BVS r
// #0x70:
func opcode0x70(c *CPU) int {
	return c.branch(c.flag(flagV), 4)
}

// TCALL 7
// #0x71:
func opcode0x71(c *CPU) int {
	return c.tcall(7)
}

// CLR1 d.3
// #0x72:
func opcode0x72(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x08 })
	return 4
}

// BBC d.3,r
// #0x73:
func opcode0x73(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x08 == 0, 7)
}

// CMP A,d+X
// #0x74:
func opcode0x74(c *CPU) int {
	c.aluA(opCMP, c.modeDPX())
	return 4
}

// CMP A,!a+X
// #0x75:
func opcode0x75(c *CPU) int {
	c.aluA(opCMP, c.modeAbsX())
	return 5
}

// CMP A,!a+Y
// #0x76:
func opcode0x76(c *CPU) int {
	c.aluA(opCMP, c.modeAbsY())
	return 5
}

// CMP A,[d]+Y
// #0x77:
func opcode0x77(c *CPU) int {
	c.aluA(opCMP, c.modeIndY())
	return 6
}

// CMP d,#i
// #0x78:
func opcode0x78(c *CPU) int {
	src := c.imm()
	c.aluMem(opCMP, c.modeDP(), src, false)
	return 5
}

// CMP (X),(Y)
// #0x79:
func opcode0x79(c *CPU) int {
	src := c.read(c.modeY())
	c.aluMem(opCMP, c.modeX(), src, false)
	return 5
}

// ADDW YA,d
// #0x7A:
func opcode0x7A(c *CPU) int {
	c.addw(c.readDPWord(c.imm()))
	return 5
}

// ROR d+X
// #0x7B:
func opcode0x7B(c *CPU) int {
	c.modify(c.modeDPX(), c.ror)
	return 5
}

// ROR A
// #0x7C:
func opcode0x7C(c *CPU) int {
	c.A = c.ror(c.A)
	return 2
}

// MOV A,X
// #0x7D:
func opcode0x7D(c *CPU) int {
	c.A = c.X
	c.setNZ(c.A)
	return 2
}

// CMP Y,d
// #0x7E:
func opcode0x7E(c *CPU) int {
	opCMP(c, c.Y, c.read(c.modeDP()))
	return 3
}

// RETI
// #0x7F:
func opcode0x7F(c *CPU) int {
	c.PSW = c.pop()
	c.PC = c.popWord()
	return 6
}

// SETC
// #0x80:
func opcode0x80(c *CPU) int {
	c.setFlag(flagC, true)
	return 2
}

// TCALL 8
// #0x81:
func opcode0x81(c *CPU) int {
	return c.tcall(8)
}

// SET1 d.4
// #0x82:
func opcode0x82(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x10 })
	return 4
}

// BBS d.4,r
// #0x83:
func opcode0x83(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x10 != 0, 7)
}

// ADC A,d
// #0x84:
func opcode0x84(c *CPU) int {
	c.aluA(opADC, c.modeDP())
	return 3
}

// ADC A,!a
// #0x85:
func opcode0x85(c *CPU) int {
	c.aluA(opADC, c.modeAbs())
	return 4
}

// ADC A,(X)
// #0x86:
func opcode0x86(c *CPU) int {
	c.aluA(opADC, c.modeX())
	return 3
}

// ADC A,[d+X]
// #0x87:
func opcode0x87(c *CPU) int {
	c.aluA(opADC, c.modeIndX())
	return 6
}

// ADC A,#i
// #0x88:
func opcode0x88(c *CPU) int {
	c.A = opADC(c, c.A, c.imm())
	return 2
}

// ADC dd,ds
// #0x89:
func opcode0x89(c *CPU) int {
	src := c.read(c.modeDP())
	c.aluMem(opADC, c.modeDP(), src, true)
	return 6
}

// EOR1 C,m.b
// #0x8A:
func opcode0x8A(c *CPU) int {
	a, b := c.modeBit()
	if (c.read(a)>>b)&1 != 0 {
		c.PSW ^= flagC
	}
	return 5
}

// DEC d
// #0x8B:
func opcode0x8B(c *CPU) int {
	c.modify(c.modeDP(), c.dec)
	return 4
}

// DEC !a
// #0x8C:
func opcode0x8C(c *CPU) int {
	c.modify(c.modeAbs(), c.dec)
	return 5
}

// MOV Y,#i
// #0x8D:
func opcode0x8D(c *CPU) int {
	c.Y = c.imm()
	c.setNZ(c.Y)
	return 2
}

// POP PSW
// #0x8E:
func opcode0x8E(c *CPU) int {
	c.PSW = c.pop()
	return 4
}

// MOV d,#i
// #0x8F:
func opcode0x8F(c *CPU) int {
	v := c.imm()
	c.write(c.modeDP(), v)
	return 5
}

// BCC r
// #0x90:
func opcode0x90(c *CPU) int {
	return c.branch(!c.flag(flagC), 4)
}

// TCALL 9
// #0x91:
func opcode0x91(c *CPU) int {
	return c.tcall(9)
}

// CLR1 d.4
// #0x92:
func opcode0x92(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x10 })
	return 4
}

// BBC d.4,r
// #0x93:
func opcode0x93(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x10 == 0, 7)
}

// ADC A,d+X
// #0x94:
func opcode0x94(c *CPU) int {
	c.aluA(opADC, c.modeDPX())
	return 4
}

// ADC A,!a+X
// #0x95:
func opcode0x95(c *CPU) int {
	c.aluA(opADC, c.modeAbsX())
	return 5
}

// ADC A,!a+Y
// #0x96:
func opcode0x96(c *CPU) int {
	c.aluA(opADC, c.modeAbsY())
	return 5
}

// ADC A,[d]+Y
// #0x97:
func opcode0x97(c *CPU) int {
	c.aluA(opADC, c.modeIndY())
	return 6
}

// ADC d,#i
// #0x98:
func opcode0x98(c *CPU) int {
	src := c.imm()
	c.aluMem(opADC, c.modeDP(), src, true)
	return 5
}

// ADC (X),(Y)
// #0x99:
func opcode0x99(c *CPU) int {
	src := c.read(c.modeY())
	c.aluMem(opADC, c.modeX(), src, true)
	return 5
}

// SUBW YA,d
// #0x9A:
func opcode0x9A(c *CPU) int {
	c.subw(c.readDPWord(c.imm()))
	return 5
}

// DEC d+X
// #0x9B:
func opcode0x9B(c *CPU) int {
	c.modify(c.modeDPX(), c.dec)
	return 5
}

// DEC A
// #0x9C:
func opcode0x9C(c *CPU) int {
	c.A = c.dec(c.A)
	return 2
}

// MOV X,SP
// #0x9D:
func opcode0x9D(c *CPU) int {
	c.X = c.SP
	c.setNZ(c.X)
	return 2
}

// DIV YA,X
// #0x9E:
func opcode0x9E(c *CPU) int {
	c.div()
	return 12
}

// XCN A
// #0x9F:
func opcode0x9F(c *CPU) int {
	c.A = c.A>>4 | c.A<<4
	c.setNZ(c.A)
	return 5
}

// EI
// #0xA0:
func opcode0xA0(c *CPU) int {
	c.setFlag(flagI, true)
	return 3
}

// TCALL 10
// #0xA1:
func opcode0xA1(c *CPU) int {
	return c.tcall(10)
}

// SET1 d.5
// #0xA2:
func opcode0xA2(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x20 })
	return 4
}

// BBS d.5,r
// #0xA3:
func opcode0xA3(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x20 != 0, 7)
}

// SBC A,d
// #0xA4:
func opcode0xA4(c *CPU) int {
	c.aluA(opSBC, c.modeDP())
	return 3
}

// SBC A,!a
// #0xA5:
func opcode0xA5(c *CPU) int {
	c.aluA(opSBC, c.modeAbs())
	return 4
}

// SBC A,(X)
// #0xA6:
func opcode0xA6(c *CPU) int {
	c.aluA(opSBC, c.modeX())
	return 3
}

// SBC A,[d+X]
// #0xA7:
func opcode0xA7(c *CPU) int {
	c.aluA(opSBC, c.modeIndX())
	return 6
}

// SBC A,#i
// #0xA8:
func opcode0xA8(c *CPU) int {
	c.A = opSBC(c, c.A, c.imm())
	return 2
}

// SBC dd,ds
// #0xA9:
func opcode0xA9(c *CPU) int {
	src := c.read(c.modeDP())
	c.aluMem(opSBC, c.modeDP(), src, true)
	return 6
}

// MOV1 C,m.b
// #0xAA:
func opcode0xAA(c *CPU) int {
	a, b := c.modeBit()
	c.setFlag(flagC, (c.read(a)>>b)&1 != 0)
	return 4
}

// INC d
// #0xAB:
func opcode0xAB(c *CPU) int {
	c.modify(c.modeDP(), c.inc)
	return 4
}

// INC !a
// #0xAC:
func opcode0xAC(c *CPU) int {
	c.modify(c.modeAbs(), c.inc)
	return 5
}

// CMP Y,#i
// #0xAD:
func opcode0xAD(c *CPU) int {
	opCMP(c, c.Y, c.imm())
	return 2
}

// POP A
// #0xAE:
func opcode0xAE(c *CPU) int {
	c.A = c.pop()
	return 4
}

// MOV (X)+,A
// #0xAF:
func opcode0xAF(c *CPU) int {
	c.write(c.modeX(), c.A)
	c.X++
	return 4
}

// BCS r
// #0xB0:
func opcode0xB0(c *CPU) int {
	return c.branch(c.flag(flagC), 4)
}

// TCALL 11
// #0xB1:
func opcode0xB1(c *CPU) int {
	return c.tcall(11)
}

// CLR1 d.5
// #0xB2:
func opcode0xB2(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x20 })
	return 4
}

// BBC d.5,r
// #0xB3:
func opcode0xB3(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x20 == 0, 7)
}

// SBC A,d+X
// #0xB4:
func opcode0xB4(c *CPU) int {
	c.aluA(opSBC, c.modeDPX())
	return 4
}

// SBC A,!a+X
// #0xB5:
func opcode0xB5(c *CPU) int {
	c.aluA(opSBC, c.modeAbsX())
	return 5
}

// SBC A,!a+Y
// #0xB6:
func opcode0xB6(c *CPU) int {
	c.aluA(opSBC, c.modeAbsY())
	return 5
}

// SBC A,[d]+Y
// #0xB7:
func opcode0xB7(c *CPU) int {
	c.aluA(opSBC, c.modeIndY())
	return 6
}

// SBC d,#i
// #0xB8:
func opcode0xB8(c *CPU) int {
	src := c.imm()
	c.aluMem(opSBC, c.modeDP(), src, true)
	return 5
}

// SBC (X),(Y)
// #0xB9:
func opcode0xB9(c *CPU) int {
	src := c.read(c.modeY())
	c.aluMem(opSBC, c.modeX(), src, true)
	return 5
}

// MOVW YA,d
// #0xBA:
func opcode0xBA(c *CPU) int {
	c.setYA(c.readDPWord(c.imm()))
	c.setNZ16(c.YA())
	return 5
}

// INC d+X
// #0xBB:
func opcode0xBB(c *CPU) int {
	c.modify(c.modeDPX(), c.inc)
	return 5
}

// INC A
// #0xBC:
func opcode0xBC(c *CPU) int {
	c.A = c.inc(c.A)
	return 2
}

// MOV SP,X
// #0xBD:
func opcode0xBD(c *CPU) int {
	c.SP = c.X
	return 2
}

// DAS
// #0xBE:
func opcode0xBE(c *CPU) int {
	c.das()
	return 3
}

// MOV A,(X)+
// #0xBF:
func opcode0xBF(c *CPU) int {
	c.A = c.read(c.modeX())
	c.X++
	c.setNZ(c.A)
	return 4
}

// DI
// #0xC0:
func opcode0xC0(c *CPU) int {
	c.setFlag(flagI, false)
	return 3
}

// TCALL 12
// #0xC1:
func opcode0xC1(c *CPU) int {
	return c.tcall(12)
}

// SET1 d.6
// #0xC2:
func opcode0xC2(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x40 })
	return 4
}

// BBS d.6,r
// #0xC3:
func opcode0xC3(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x40 != 0, 7)
}

// MOV d,A
// #0xC4:
func opcode0xC4(c *CPU) int {
	c.write(c.modeDP(), c.A)
	return 4
}

// MOV !a,A
// #0xC5:
func opcode0xC5(c *CPU) int {
	c.write(c.modeAbs(), c.A)
	return 5
}

// MOV (X),A
// #0xC6:
func opcode0xC6(c *CPU) int {
	c.write(c.modeX(), c.A)
	return 4
}

// MOV [d+X],A
// #0xC7:
func opcode0xC7(c *CPU) int {
	c.write(c.modeIndX(), c.A)
	return 7
}

// CMP X,#i
// #0xC8:
func opcode0xC8(c *CPU) int {
	opCMP(c, c.X, c.imm())
	return 2
}

// MOV !a,X
// #0xC9:
func opcode0xC9(c *CPU) int {
	c.write(c.modeAbs(), c.X)
	return 5
}

// MOV1 m.b,C
// #0xCA:
func opcode0xCA(c *CPU) int {
	a, b := c.modeBit()
	v := c.read(a) &^ (1 << b)
	c.write(a, v|c.carry()<<b)
	return 6
}

// MOV d,Y
// #0xCB:
func opcode0xCB(c *CPU) int {
	c.write(c.modeDP(), c.Y)
	return 4
}

// MOV !a,Y
// #0xCC:
func opcode0xCC(c *CPU) int {
	c.write(c.modeAbs(), c.Y)
	return 5
}

// MOV X,#i
// #0xCD:
func opcode0xCD(c *CPU) int {
	c.X = c.imm()
	c.setNZ(c.X)
	return 2
}

// POP X
// #0xCE:
func opcode0xCE(c *CPU) int {
	c.X = c.pop()
	return 4
}

// MUL YA
// #0xCF:
func opcode0xCF(c *CPU) int {
	c.setYA(uint16(c.Y) * uint16(c.A))
	c.setNZ(c.Y)
	return 9
}

// BNE r
// #0xD0:
func opcode0xD0(c *CPU) int {
	return c.branch(!c.flag(flagZ), 4)
}

// TCALL 13
// #0xD1:
func opcode0xD1(c *CPU) int {
	return c.tcall(13)
}

// CLR1 d.6
// #0xD2:
func opcode0xD2(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x40 })
	return 4
}

// BBC d.6,r
// #0xD3:
func opcode0xD3(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x40 == 0, 7)
}

// MOV d+X,A
// #0xD4:
func opcode0xD4(c *CPU) int {
	c.write(c.modeDPX(), c.A)
	return 5
}

// MOV !a+X,A
// #0xD5:
func opcode0xD5(c *CPU) int {
	c.write(c.modeAbsX(), c.A)
	return 6
}

// MOV !a+Y,A
// #0xD6:
func opcode0xD6(c *CPU) int {
	c.write(c.modeAbsY(), c.A)
	return 6
}

// MOV [d]+Y,A
// #0xD7:
func opcode0xD7(c *CPU) int {
	c.write(c.modeIndY(), c.A)
	return 7
}

// MOV d,X
// #0xD8:
func opcode0xD8(c *CPU) int {
	c.write(c.modeDP(), c.X)
	return 4
}

// MOV d+Y,X
// #0xD9:
func opcode0xD9(c *CPU) int {
	c.write(c.modeDPY(), c.X)
	return 5
}

// MOVW d,YA
// #0xDA:
func opcode0xDA(c *CPU) int {
	c.writeDPWord(c.imm(), c.YA())
	return 5
}

// MOV d+X,Y
// #0xDB:
func opcode0xDB(c *CPU) int {
	c.write(c.modeDPX(), c.Y)
	return 5
}

// DEC Y
// #0xDC:
func opcode0xDC(c *CPU) int {
	c.Y = c.dec(c.Y)
	return 2
}

// MOV A,Y
// #0xDD:
func opcode0xDD(c *CPU) int {
	c.A = c.Y
	c.setNZ(c.A)
	return 2
}

// CBNE d+X,r
// #0xDE:
func opcode0xDE(c *CPU) int {
	v := c.read(c.modeDPX())
	return c.branch(v != c.A, 8)
}

// DAA
// #0xDF:
func opcode0xDF(c *CPU) int {
	c.daa()
	return 3
}

// CLRV
// #0xE0:
func opcode0xE0(c *CPU) int {
	c.setFlag(flagV, false)
	c.setFlag(flagH, false)
	return 2
}

// TCALL 14
// #0xE1:
func opcode0xE1(c *CPU) int {
	return c.tcall(14)
}

// SET1 d.7
// #0xE2:
func opcode0xE2(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v | 0x80 })
	return 4
}

// BBS d.7,r
// #0xE3:
func opcode0xE3(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x80 != 0, 7)
}

// MOV A,d
// #0xE4:
func opcode0xE4(c *CPU) int {
	c.A = c.read(c.modeDP())
	c.setNZ(c.A)
	return 3
}

// MOV A,!a
// #0xE5:
func opcode0xE5(c *CPU) int {
	c.A = c.read(c.modeAbs())
	c.setNZ(c.A)
	return 4
}

// MOV A,(X)
// #0xE6:
func opcode0xE6(c *CPU) int {
	c.A = c.read(c.modeX())
	c.setNZ(c.A)
	return 3
}

// MOV A,[d+X]
// #0xE7:
func opcode0xE7(c *CPU) int {
	c.A = c.read(c.modeIndX())
	c.setNZ(c.A)
	return 6
}

// MOV A,#i
// #0xE8:
func opcode0xE8(c *CPU) int {
	c.A = c.imm()
	c.setNZ(c.A)
	return 2
}

// MOV X,!a
// #0xE9:
func opcode0xE9(c *CPU) int {
	c.X = c.read(c.modeAbs())
	c.setNZ(c.X)
	return 4
}

// NOT1 m.b
// #0xEA:
func opcode0xEA(c *CPU) int {
	a, b := c.modeBit()
	c.write(a, c.read(a)^(1<<b))
	return 5
}

// MOV Y,d
// #0xEB:
func opcode0xEB(c *CPU) int {
	c.Y = c.read(c.modeDP())
	c.setNZ(c.Y)
	return 3
}

// MOV Y,!a
// #0xEC:
func opcode0xEC(c *CPU) int {
	c.Y = c.read(c.modeAbs())
	c.setNZ(c.Y)
	return 4
}

// NOTC
// #0xED:
func opcode0xED(c *CPU) int {
	c.PSW ^= flagC
	return 3
}

// POP Y
// #0xEE:
func opcode0xEE(c *CPU) int {
	c.Y = c.pop()
	return 4
}

// SLEEP
// #0xEF:
func opcode0xEF(c *CPU) int {
	return c.stop()
}

// BEQ r
// #0xF0:
func opcode0xF0(c *CPU) int {
	return c.branch(c.flag(flagZ), 4)
}

// TCALL 15
// #0xF1:
func opcode0xF1(c *CPU) int {
	return c.tcall(15)
}

// CLR1 d.7
// #0xF2:
func opcode0xF2(c *CPU) int {
	c.modify(c.modeDP(), func(v uint8) uint8 { return v &^ 0x80 })
	return 4
}

// BBC d.7,r
// #0xF3:
func opcode0xF3(c *CPU) int {
	v := c.read(c.modeDP())
	return c.branch(v&0x80 == 0, 7)
}

// MOV A,d+X
// #0xF4:
func opcode0xF4(c *CPU) int {
	c.A = c.read(c.modeDPX())
	c.setNZ(c.A)
	return 4
}

// MOV A,!a+X
// #0xF5:
func opcode0xF5(c *CPU) int {
	c.A = c.read(c.modeAbsX())
	c.setNZ(c.A)
	return 5
}

// MOV A,!a+Y
// #0xF6:
func opcode0xF6(c *CPU) int {
	c.A = c.read(c.modeAbsY())
	c.setNZ(c.A)
	return 5
}

// MOV A,[d]+Y
// #0xF7:
func opcode0xF7(c *CPU) int {
	c.A = c.read(c.modeIndY())
	c.setNZ(c.A)
	return 6
}

// MOV X,d
// #0xF8:
func opcode0xF8(c *CPU) int {
	c.X = c.read(c.modeDP())
	c.setNZ(c.X)
	return 3
}

// MOV X,d+Y
// #0xF9:
func opcode0xF9(c *CPU) int {
	c.X = c.read(c.modeDPY())
	c.setNZ(c.X)
	return 4
}

// MOV dd,ds
// #0xFA:
func opcode0xFA(c *CPU) int {
	v := c.read(c.modeDP())
	c.write(c.modeDP(), v)
	return 5
}

// MOV Y,d+X
// #0xFB:
func opcode0xFB(c *CPU) int {
	c.Y = c.read(c.modeDPX())
	c.setNZ(c.Y)
	return 4
}

// INC Y
// #0xFC:
func opcode0xFC(c *CPU) int {
	c.Y = c.inc(c.Y)
	return 2
}

// MOV Y,A
// #0xFD:
func opcode0xFD(c *CPU) int {
	c.Y = c.A
	c.setNZ(c.Y)
	return 2
}

// DBNZ Y,r
// #0xFE:
func opcode0xFE(c *CPU) int {
	c.Y--
	return c.branch(c.Y != 0, 6)
}

// STOP
// #0xFF:
func opcode0xFF(c *CPU) int {
	return c.stop()
}
