// Package mapper implements the cartridge-side bank-switching contract:
// a registry mapping an iNES mapper number to a constructor, and the
// concrete mappers themselves.
package mapper

import (
	"errors"
	"fmt"

	"github.com/nescore/emu/pkg/rom"
)

// Sentinel errors surfaced by this package.
var (
	ErrUnknownMapper = errors.New("unknown mapper")
	ErrBadBankCount  = errors.New("bad bank count")
)

// CPUMemoryWriter lets a mapper copy a PRG bank into CPU address space
// without retaining a reference to the bus itself.
type CPUMemoryWriter interface {
	WriteBank(addr uint16, data []byte)
}

// PPUMemoryWriter lets a mapper copy a CHR bank into PPU address space
// without retaining a reference to the PPU itself.
type PPUMemoryWriter interface {
	WriteBank(addr uint16, data []byte)
}

// Mapper seeds CPU and PPU memory from the cartridge's ROM banks
// according to mapper-specific rules. Reset is the only operation that
// mutates memory; once it returns, the mapper retains no reference to
// either memory.
type Mapper interface {
	Reset(cpu CPUMemoryWriter, ppu PPUMemoryWriter) error
}

// Constructor builds a Mapper instance bound to a parsed ROM image.
type Constructor func(img *rom.Image) Mapper

var registry = map[int]Constructor{}

// RegisterMapper adds a constructor to the registry under id. It is
// meant to be called from package init() (built-in mappers) or by a
// third-party mapper package before any ROM is loaded; registering two
// constructors under the same id is a programmer error.
func RegisterMapper(id int, ctor Constructor) {
	if _, exists := registry[id]; exists {
		panic(fmt.Sprintf("mapper: id %d already registered", id))
	}
	registry[id] = ctor
}

// New looks up the constructor registered for id and builds a Mapper
// bound to img, or fails with ErrUnknownMapper.
func New(id int, img *rom.Image) (Mapper, error) {
	ctor, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMapper, id)
	}
	return ctor(img), nil
}

func init() {
	RegisterMapper(0, newMapper0)
}
