package cpu

import (
	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/bit"
)

// imm reads the byte at PC and advances it.
func (c *CPU) imm() uint8 {
	v := c.bus.Fetch(c.PC)
	c.advancePC()
	return v
}

func (c *CPU) immWord() uint16 {
	low := c.imm()
	high := c.imm()
	return bit.Combine(high, low)
}

func (c *CPU) read(address uint16) uint8 {
	return c.bus.Read(address, c.time)
}

func (c *CPU) write(address uint16, value uint8) {
	c.bus.Write(address, value, c.time)
}

func (c *CPU) readWord(address uint16) uint16 {
	low := c.read(address)
	high := c.read(address + 1)
	return bit.Combine(high, low)
}

// dp maps a direct page offset to an address, the page is selected by P.
func (c *CPU) dp(offset uint8) uint16 {
	if c.PSW&flagP != 0 {
		return 0x100 | uint16(offset)
	}
	return uint16(offset)
}

// readDPWord reads a word from the direct page, wrapping inside the page.
func (c *CPU) readDPWord(offset uint8) uint16 {
	low := c.read(c.dp(offset))
	high := c.read(c.dp(offset + 1))
	return bit.Combine(high, low)
}

func (c *CPU) writeDPWord(offset uint8, value uint16) {
	c.write(c.dp(offset), bit.Low(value))
	c.write(c.dp(offset+1), bit.High(value))
}

// addressing modes, each consumes its operand bytes

func (c *CPU) modeDP() uint16   { return c.dp(c.imm()) }
func (c *CPU) modeDPX() uint16  { return c.dp(c.imm() + c.X) }
func (c *CPU) modeDPY() uint16  { return c.dp(c.imm() + c.Y) }
func (c *CPU) modeAbs() uint16  { return c.immWord() }
func (c *CPU) modeAbsX() uint16 { return c.immWord() + uint16(c.X) }
func (c *CPU) modeAbsY() uint16 { return c.immWord() + uint16(c.Y) }
func (c *CPU) modeX() uint16    { return c.dp(c.X) }
func (c *CPU) modeY() uint16    { return c.dp(c.Y) }

// [d+X]
func (c *CPU) modeIndX() uint16 {
	return c.readDPWord(c.imm() + c.X)
}

// [d]+Y
func (c *CPU) modeIndY() uint16 {
	return c.readDPWord(c.imm()) + uint16(c.Y)
}

// modeBit decodes the m.b operand of the single bit instructions.
func (c *CPU) modeBit() (uint16, uint8) {
	w := c.immWord()
	return w & 0x1FFF, uint8(w >> 13)
}

func (c *CPU) push(value uint8) {
	c.write(addr.StackPage|uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(addr.StackPage | uint16(c.SP))
}

func (c *CPU) pushWord(value uint16) {
	c.push(bit.High(value))
	c.push(bit.Low(value))
}

func (c *CPU) popWord() uint16 {
	low := c.pop()
	high := c.pop()
	return bit.Combine(high, low)
}

func (c *CPU) flag(f uint8) bool {
	return c.PSW&f != 0
}

func (c *CPU) setFlag(f uint8, on bool) {
	if on {
		c.PSW |= f
	} else {
		c.PSW &^= f
	}
}

func (c *CPU) carry() uint8 {
	return c.PSW & flagC
}

func (c *CPU) setNZ(v uint8) {
	c.setFlag(flagN, v&0x80 != 0)
	c.setFlag(flagZ, v == 0)
}

func (c *CPU) setNZ16(v uint16) {
	c.setFlag(flagN, v&0x8000 != 0)
	c.setFlag(flagZ, v == 0)
}

// aluOp combines an accumulator-like operand with a memory operand.
type aluOp func(c *CPU, a, b uint8) uint8

func opOR(c *CPU, a, b uint8) uint8 {
	r := a | b
	c.setNZ(r)
	return r
}

func opAND(c *CPU, a, b uint8) uint8 {
	r := a & b
	c.setNZ(r)
	return r
}

func opEOR(c *CPU, a, b uint8) uint8 {
	r := a ^ b
	c.setNZ(r)
	return r
}

// opCMP sets flags for a - b and returns a unchanged.
func opCMP(c *CPU, a, b uint8) uint8 {
	r := int(a) - int(b)
	c.setFlag(flagC, r >= 0)
	c.setNZ(uint8(r))
	return a
}

func opADC(c *CPU, a, b uint8) uint8 {
	r := int(a) + int(b) + int(c.carry())
	res := uint8(r)
	c.setFlag(flagC, r > 0xFF)
	c.setFlag(flagV, ^(a^b)&(a^res)&0x80 != 0)
	c.setFlag(flagH, (a^b^res)&0x10 != 0)
	c.setNZ(res)
	return res
}

func opSBC(c *CPU, a, b uint8) uint8 {
	return opADC(c, a, ^b)
}

// aluA applies op to A and the byte at address.
func (c *CPU) aluA(op aluOp, address uint16) {
	c.A = op(c, c.A, c.read(address))
}

// aluMem applies op to the byte at dst and src, storing the result back
// unless op is a compare.
func (c *CPU) aluMem(op aluOp, dst uint16, src uint8, store bool) {
	r := op(c, c.read(dst), src)
	if store {
		c.write(dst, r)
	}
}

// shift and rotate helpers

func (c *CPU) asl(v uint8) uint8 {
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.setNZ(v)
	return v
}

func (c *CPU) rol(v uint8) uint8 {
	carry := c.carry()
	c.setFlag(flagC, v&0x80 != 0)
	v = v<<1 | carry
	c.setNZ(v)
	return v
}

func (c *CPU) lsr(v uint8) uint8 {
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.setNZ(v)
	return v
}

func (c *CPU) ror(v uint8) uint8 {
	carry := c.carry() << 7
	c.setFlag(flagC, v&0x01 != 0)
	v = v>>1 | carry
	c.setNZ(v)
	return v
}

func (c *CPU) inc(v uint8) uint8 {
	v++
	c.setNZ(v)
	return v
}

func (c *CPU) dec(v uint8) uint8 {
	v--
	c.setNZ(v)
	return v
}

// modify runs a read-modify-write operation on memory.
func (c *CPU) modify(address uint16, op func(uint8) uint8) {
	c.write(address, op(c.read(address)))
}

// branch reads the relative offset and jumps when cond holds. cycles is the
// cost of the taken branch; a branch not taken is 2 cycles cheaper.
func (c *CPU) branch(cond bool, cycles int) int {
	offset := int8(c.imm())
	if !cond {
		return cycles - 2
	}
	c.PC = uint16(int(c.PC) + int(offset))
	return cycles
}

func (c *CPU) call(target uint16) {
	c.pushWord(c.PC)
	c.PC = target
}

// tcall jumps through the n-th entry of the vector table below $FFDE.
func (c *CPU) tcall(n int) int {
	c.call(c.readWord(addr.TCallVector - uint16(2*n)))
	return 8
}

// word arithmetic on YA

func (c *CPU) addw(w uint16) {
	ya := c.YA()
	r := uint32(ya) + uint32(w)
	res := uint16(r)
	c.setFlag(flagC, r > 0xFFFF)
	c.setFlag(flagV, ^(ya^w)&(ya^res)&0x8000 != 0)
	c.setFlag(flagH, (ya^w^res)&0x1000 != 0)
	c.setNZ16(res)
	c.setYA(res)
}

func (c *CPU) subw(w uint16) {
	ya := c.YA()
	r := int(ya) - int(w)
	res := uint16(r)
	c.setFlag(flagC, r >= 0)
	c.setFlag(flagV, (ya^w)&(ya^res)&0x8000 != 0)
	c.setFlag(flagH, (ya^w^res)&0x1000 == 0)
	c.setNZ16(res)
	c.setYA(res)
}

func (c *CPU) cmpw(w uint16) {
	ya := c.YA()
	r := int(ya) - int(w)
	c.setFlag(flagC, r >= 0)
	c.setNZ16(uint16(r))
}

// div implements DIV YA,X including the behavior for quotients that do not
// fit in 9 bits.
func (c *CPU) div() {
	ya := int(c.YA())
	x := int(c.X)
	y := int(c.Y)

	c.setFlag(flagV, y >= x)
	c.setFlag(flagH, y&0x0F >= x&0x0F)

	if y < x<<1 {
		c.A = uint8(ya / x)
		c.Y = uint8(ya % x)
	} else {
		c.A = uint8(255 - (ya-(x<<9))/(256-x))
		c.Y = uint8(x + (ya-(x<<9))%(256-x))
	}
	c.setNZ(c.A)
}

func (c *CPU) daa() {
	if c.flag(flagC) || c.A > 0x99 {
		c.A += 0x60
		c.setFlag(flagC, true)
	}
	if c.flag(flagH) || c.A&0x0F > 0x09 {
		c.A += 0x06
	}
	c.setNZ(c.A)
}

func (c *CPU) das() {
	if !c.flag(flagC) || c.A > 0x99 {
		c.A -= 0x60
		c.setFlag(flagC, false)
	}
	if !c.flag(flagH) || c.A&0x0F > 0x09 {
		c.A -= 0x06
	}
	c.setNZ(c.A)
}

// stop parks the CPU on the current instruction.
func (c *CPU) stop() int {
	c.PC--
	c.stopped = true
	return 0
}
