package mapper

import (
	"fmt"

	"github.com/nescore/emu/pkg/logger"
	"github.com/nescore/emu/pkg/rom"
)

// mapper0 is NROM: no bank switching. One or two 16KiB PRG banks are
// mapped statically into $8000-$FFFF, and CHR bank 0 (if present) is
// copied into the PPU's pattern-table space at $0000.
type mapper0 struct {
	img *rom.Image
}

func newMapper0(img *rom.Image) Mapper {
	return &mapper0{img: img}
}

const prgBankSize = 16384
const chrBankSize = 8192

func (m *mapper0) Reset(cpu CPUMemoryWriter, ppu PPUMemoryWriter) error {
	switch m.img.PRG16kCount {
	case 1:
		bank0 := m.img.PRGData[0:prgBankSize]
		cpu.WriteBank(0x8000, bank0)
		cpu.WriteBank(0xC000, bank0)
		logger.LogMapper("mapper0: mirrored single 16KiB PRG bank into $8000 and $C000")
	case 2:
		bank0 := m.img.PRGData[0:prgBankSize]
		bank1 := m.img.PRGData[prgBankSize : 2*prgBankSize]
		cpu.WriteBank(0x8000, bank0)
		cpu.WriteBank(0xC000, bank1)
		logger.LogMapper("mapper0: mapped two distinct 16KiB PRG banks into $8000 and $C000")
	default:
		return fmt.Errorf("%w: mapper 0 requires 1 or 2 16KiB PRG banks, got %d", ErrBadBankCount, m.img.PRG16kCount)
	}

	if len(m.img.CHRData) >= chrBankSize {
		ppu.WriteBank(0x0000, m.img.CHRData[0:chrBankSize])
		logger.LogMapper("mapper0: copied 8KiB CHR bank 0 into PPU pattern memory")
	}

	return nil
}
