package bus

import "testing"

type fakePPU struct {
	reads, writes, peeks []uint16
	regs                 [8]byte
}

func (f *fakePPU) CPURead(addr uint16) byte {
	f.reads = append(f.reads, addr)
	return f.regs[(addr-0x2000)%8]
}

func (f *fakePPU) CPUWrite(addr uint16, v byte) {
	f.writes = append(f.writes, addr)
	f.regs[(addr-0x2000)%8] = v
}

func (f *fakePPU) Peek(addr uint16) byte {
	f.peeks = append(f.peeks, addr)
	return f.regs[(addr-0x2000)%8]
}

func TestRAMMirroring(t *testing.T) {
	b := New(&fakePPU{})
	b.Write(0x0000, 0x42)

	for _, mirror := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := b.Read(mirror); got != 0x42 {
			t.Fatalf("Read(%#x) = %#x, want 0x42", mirror, got)
		}
	}
}

func TestPPUWindowDelegatesToCollaborator(t *testing.T) {
	ppu := &fakePPU{}
	b := New(ppu)

	b.Write(0x2000, 0x80)
	if len(ppu.writes) != 1 || ppu.writes[0] != 0x2000 {
		t.Fatalf("Write(0x2000) did not reach PPU: %v", ppu.writes)
	}

	if got := b.Read(0x2000); got != 0x80 {
		t.Fatalf("Read(0x2000) = %#x, want 0x80", got)
	}
	if len(ppu.reads) != 1 {
		t.Fatalf("Read(0x2000) did not reach PPU")
	}
}

func TestPeekDoesNotTriggerPPUSideEffects(t *testing.T) {
	ppu := &fakePPU{}
	b := New(ppu)
	b.Write(0x2000, 0x55)

	if got := b.Peek(0x2000); got != 0x55 {
		t.Fatalf("Peek(0x2000) = %#x, want 0x55", got)
	}
	if len(ppu.reads) != 0 {
		t.Fatalf("Peek should not call CPURead, got reads=%v", ppu.reads)
	}
	if len(ppu.peeks) != 1 {
		t.Fatalf("Peek should call ppu.Peek exactly once, got %v", ppu.peeks)
	}
}

func TestCartridgeSpacePassesThrough(t *testing.T) {
	b := New(&fakePPU{})
	b.Write(0x4020, 0x99)
	if got := b.Read(0x4020); got != 0x99 {
		t.Fatalf("Read(0x4020) = %#x, want 0x99", got)
	}
}

func TestWriteBankPopulatesCartridgeSpace(t *testing.T) {
	b := New(&fakePPU{})
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b.WriteBank(0x8000, data)

	for i, want := range data {
		if got := b.Read(uint16(0x8000 + i)); got != want {
			t.Fatalf("Read(%#x) = %#x, want %#x", 0x8000+i, got, want)
		}
	}
}
