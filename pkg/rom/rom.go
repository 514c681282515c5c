// Package rom parses iNES ROM images into the PRG/CHR byte blocks and
// cartridge flags the mapper layer needs.
package rom

import (
	"errors"
	"fmt"
)

const (
	headerSize    = 16
	trainerSize   = 512
	prgBankSize   = 16384
	chrBankSize   = 8192
	magicVMirror  = 0x01
	magicSaveRAM  = 0x02
	magicTrainer  = 0x04
	magicFourScr  = 0x08
	magicVS       = 0x01
	magicPC10     = 0x02
	nes2FormatBit = 0x0C
	nes2FormatVal = 0x08
)

var iNESMagic = [4]byte{'N', 'E', 'S', 0x1A}

// Sentinel errors for ROM parsing failures. Use errors.Is to test for
// a specific cause; all of them wrap InvalidROM.
var (
	InvalidROM        = errors.New("invalid rom image")
	ErrBadMagic       = fmt.Errorf("%w: bad magic number", InvalidROM)
	ErrTrainer        = fmt.Errorf("%w: unsupported feature: trainer", InvalidROM)
	ErrVSUnisystem    = fmt.Errorf("%w: unsupported feature: vs unisystem", InvalidROM)
	ErrPlaychoice10   = fmt.Errorf("%w: unsupported feature: playchoice10", InvalidROM)
	ErrTruncatedImage = fmt.Errorf("%w: truncated image", InvalidROM)
)

// Image is a parsed iNES ROM: program code and pattern data plus the
// cartridge flags derived from the header.
type Image struct {
	PRG16kCount uint8
	CHR8kCount  uint8
	Control1    uint8
	Control2    uint8

	PRGData []byte
	CHRData []byte

	Mapper     uint8
	VMirror    bool
	SaveRAM    bool
	Trainer    bool
	FourScreen bool
}

// Parse validates the 16-byte iNES header, rejects images carrying a
// trainer (or the VS Unisystem / Playchoice-10 flags) as unsupported,
// and slices out PRGData and CHRData.
func Parse(data []byte) (*Image, error) {
	if len(data) < headerSize {
		return nil, ErrTruncatedImage
	}
	header := data[:headerSize]
	if header[0] != iNESMagic[0] || header[1] != iNESMagic[1] ||
		header[2] != iNESMagic[2] || header[3] != iNESMagic[3] {
		return nil, ErrBadMagic
	}

	img := &Image{
		PRG16kCount: header[4],
		CHR8kCount:  header[5],
		Control1:    header[6],
		Control2:    header[7],
	}
	img.Mapper = (img.Control1 >> 4) | (img.Control2 & 0xF0)
	img.VMirror = img.Control1&magicVMirror != 0
	img.SaveRAM = img.Control1&magicSaveRAM != 0
	img.Trainer = img.Control1&magicTrainer != 0
	img.FourScreen = img.Control1&magicFourScr != 0

	if img.Trainer {
		return nil, ErrTrainer
	}
	if img.Control2&magicVS != 0 {
		return nil, ErrVSUnisystem
	}
	if img.Control2&magicPC10 != 0 {
		return nil, ErrPlaychoice10
	}

	offset := headerSize
	prgSize := int(img.PRG16kCount) * prgBankSize
	prgEnd := offset + prgSize
	if prgEnd > len(data) {
		return nil, ErrTruncatedImage
	}
	img.PRGData = data[offset:prgEnd]
	offset = prgEnd

	chrSize := int(img.CHR8kCount) * chrBankSize
	chrEnd := offset + chrSize
	if chrEnd > len(data) {
		return nil, ErrTruncatedImage
	}
	img.CHRData = data[offset:chrEnd]

	return img, nil
}

// IsNES20 reports whether the header's format bits indicate NES 2.0.
// This core still parses the image as iNES 1.0 regardless, and Parse
// always combines both mapper nibbles; the result is informational only
// (cmd/romdump prints it).
func (img *Image) IsNES20() bool {
	return img.Control2&nes2FormatBit == nes2FormatVal
}

func (img *Image) String() string {
	return fmt.Sprintf(
		"iNES: prg=%dx16KiB chr=%dx8KiB mapper=%d vmirror=%v saveram=%v fourscreen=%v",
		img.PRG16kCount, img.CHR8kCount, img.Mapper, img.VMirror, img.SaveRAM, img.FourScreen,
	)
}
