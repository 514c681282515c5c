// Package bus implements the 64KiB NES CPU address space: RAM mirroring,
// the PPU register window, and the flat cartridge space the mapper
// populates.
package bus

import "github.com/nescore/emu/pkg/logger"

const (
	ramMirrorEnd    = 0x1FFF
	ramMirrorMask   = 0x07FF
	ppuWindowStart  = 0x2000
	ppuWindowEnd    = 0x3FFF
	addressSpaceLen = 0x10000
)

// PPUPort is the narrow PPU-facing surface the bus dispatches
// $2000-$3FFF accesses to.
type PPUPort interface {
	CPURead(addr uint16) byte
	CPUWrite(addr uint16, v byte)
	Peek(addr uint16) byte
}

// Bus is the CPU's view of memory: a flat 64KiB array with RAM
// mirroring below $2000 and a PPU register window from $2000-$3FFF.
// $4020-$FFFF (expansion ROM, SRAM, PRG-ROM) is populated by the
// mapper directly into the flat array via WriteBank.
type Bus struct {
	mem [addressSpaceLen]byte
	ppu PPUPort
}

// New returns a Bus with the given PPU collaborator wired into its
// register window.
func New(ppu PPUPort) *Bus {
	return &Bus{ppu: ppu}
}

// Read returns the byte at addr, applying RAM mirroring and PPU
// register delegation as described in the NES memory map.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.mem[addr&ramMirrorMask]
	case addr >= ppuWindowStart && addr <= ppuWindowEnd:
		logger.LogBus("read $%04X routed to PPU window", addr)
		return b.ppu.CPURead(addr)
	default:
		return b.mem[addr]
	}
}

// Write stores v at addr, applying the same routing as Read.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.mem[addr&ramMirrorMask] = v
	case addr >= ppuWindowStart && addr <= ppuWindowEnd:
		logger.LogBus("write $%04X=$%02X routed to PPU window", addr, v)
		b.ppu.CPUWrite(addr, v)
	default:
		b.mem[addr] = v
	}
}

// Peek reads addr the same way Read does, except accesses in the PPU
// window are non-destructive (no latch/address side effects), for use
// by the trace/debug observer when disassembling operand bytes.
func (b *Bus) Peek(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.mem[addr&ramMirrorMask]
	case addr >= ppuWindowStart && addr <= ppuWindowEnd:
		return b.ppu.Peek(addr)
	default:
		return b.mem[addr]
	}
}

// WriteBank copies data into the flat CPU memory array starting at
// addr, bypassing RAM mirroring and PPU delegation. It satisfies
// mapper.CPUMemoryWriter and is meant to be called only during mapper
// Reset.
func (b *Bus) WriteBank(addr uint16, data []byte) {
	copy(b.mem[int(addr):], data)
}
