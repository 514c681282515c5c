package console

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// buildROM constructs a minimal one-bank iNES image whose reset vector
// points at a BRK instruction, so Run halts immediately.
func buildROM(t *testing.T) string {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16384)
	prg[0] = 0x00 // BRK at $8000
	// Reset vector $FFFC/$FFFD -> $8000. $FFFC sits at offset
	// 0x3FFC within the 16KiB bank mirrored into $C000-$FFFF.
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80

	data := append(header, prg...)
	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

type noopPPU struct {
	mem [0x4000]byte
}

func (p *noopPPU) CPURead(addr uint16) uint8     { return 0 }
func (p *noopPPU) CPUWrite(addr uint16, v uint8) {}
func (p *noopPPU) Peek(addr uint16) uint8        { return 0 }
func (p *noopPPU) PatternMemory() []byte         { return p.mem[:] }
func (p *noopPPU) WriteBank(addr uint16, data []byte) {
	copy(p.mem[addr:], data)
}

func TestLoadROMAndRunHaltsOnBRK(t *testing.T) {
	path := buildROM(t)
	c := New(&noopPPU{})

	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}
	if !c.Loaded() {
		t.Fatal("Loaded() = false after LoadROM")
	}
	if c.CPU.PC != 0x8000 {
		t.Fatalf("PC = %#x, want 0x8000", c.CPU.PC)
	}

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestUnloadROMClearsLoadedState(t *testing.T) {
	path := buildROM(t)
	c := New(&noopPPU{})
	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}
	c.UnloadROM()
	if c.Loaded() {
		t.Fatal("Loaded() = true after UnloadROM")
	}
}

func TestRunRespectsContextCancellation(t *testing.T) {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16384)
	// An infinite loop: JMP $8000 at $8000.
	prg[0] = 0x4C
	prg[1] = 0x00
	prg[2] = 0x80
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	data := append(header, prg...)
	path := filepath.Join(t.TempDir(), "loop.nes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	c := New(&noopPPU{})
	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Run(ctx); err == nil {
		t.Fatal("Run() error = nil, want context.Canceled")
	}
}
