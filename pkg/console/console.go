// Package console composes the bus, CPU, PPU collaborator, and loaded
// cartridge into the top-level object that drives the fetch-decode-execute
// loop.
package console

import (
	"context"
	"os"

	"github.com/nescore/emu/pkg/bus"
	"github.com/nescore/emu/pkg/cpu"
	"github.com/nescore/emu/pkg/logger"
	"github.com/nescore/emu/pkg/mapper"
	"github.com/nescore/emu/pkg/rom"
	"github.com/nescore/emu/pkg/trace"
)

// PPUCollaborator is the narrow PPU contract the bus and mapper both
// need: CPU-facing register access plus the pattern memory the mapper
// populates with CHR banks.
type PPUCollaborator interface {
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, v uint8)
	Peek(addr uint16) uint8
	PatternMemory() []byte
	WriteBank(addr uint16, data []byte)
}

// Console owns the bus, CPU, and PPU for the lifetime of the process;
// ROM and Mapper live only as long as a cartridge is loaded.
type Console struct {
	Bus *bus.Bus
	CPU *cpu.CPU
	ppu PPUCollaborator

	rom    *rom.Image
	mapper mapper.Mapper
}

// New wires a fresh Bus and CPU around ppu. Call LoadROM before Run.
func New(ppu PPUCollaborator) *Console {
	b := bus.New(ppu)
	c := cpu.New(b)
	return &Console{Bus: b, CPU: c, ppu: ppu}
}

// SetObserver attaches a trace observer to the CPU; a nil observer
// disables tracing.
func (c *Console) SetObserver(o trace.Observer) {
	c.CPU.Observer = o
}

// LoadROM reads path, parses it as an iNES image, constructs the
// mapper it names, and resets the mapper into CPU/PPU memory, then
// latches the CPU's reset vector.
func (c *Console) LoadROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	img, err := rom.Parse(data)
	if err != nil {
		return err
	}

	m, err := mapper.New(int(img.Mapper), img)
	if err != nil {
		return err
	}
	if err := m.Reset(c.Bus, c.ppu); err != nil {
		return err
	}

	c.rom = img
	c.mapper = m
	c.CPU.Reset()

	logger.LogConsole("loaded %s (mapper %d, %d PRG bank(s), %d CHR bank(s))",
		path, img.Mapper, img.PRG16kCount, img.CHR8kCount)

	return nil
}

// UnloadROM clears the ROM/mapper reference. The CPU and PPU are left
// in place, matching their longer lifecycle.
func (c *Console) UnloadROM() {
	c.rom = nil
	c.mapper = nil
}

// Loaded reports whether a cartridge is currently loaded.
func (c *Console) Loaded() bool {
	return c.rom != nil
}

// Stop transitions the CPU to Halted from outside the run loop, the
// cooperative cancellation path ctx cancellation also drives.
func (c *Console) Stop() {
	c.CPU.Stop()
}

// Run steps the CPU until it halts or ctx is cancelled, polling
// ctx.Done() at the top of each fetch cycle per the cooperative
// cancellation model.
func (c *Console) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.CPU.Stop()
			return ctx.Err()
		default:
		}

		if c.CPU.State == cpu.Halted {
			return nil
		}

		if _, err := c.CPU.Step(); err != nil {
			return err
		}
	}
}
