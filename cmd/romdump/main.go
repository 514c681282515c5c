// Command romdump inspects an iNES ROM header and prints the fields
// this core parses, without loading a mapper or running the CPU.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nescore/emu/pkg/rom"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: romdump <rom_file>")
		os.Exit(1)
	}
	romFile := os.Args[1]

	data, err := os.ReadFile(romFile)
	if err != nil {
		log.Fatalf("failed to read rom file: %v", err)
	}

	img, err := rom.Parse(data)
	if err != nil {
		log.Fatalf("failed to parse rom: %v", err)
	}

	fmt.Printf("=== ROM Analysis: %s ===\n\n", romFile)
	fmt.Println(img.String())
	fmt.Println()
	fmt.Printf("Mapper:        %d\n", img.Mapper)
	fmt.Printf("NES 2.0:       %v\n", img.IsNES20())
	fmt.Printf("Vertical mirror: %v\n", img.VMirror)
	fmt.Printf("Battery SRAM:  %v\n", img.SaveRAM)
	fmt.Printf("Four-screen:   %v\n", img.FourScreen)
	fmt.Printf("PRG ROM:       %d bytes (%d x 16KiB banks)\n", len(img.PRGData), img.PRG16kCount)
	fmt.Printf("CHR ROM:       %d bytes (%d x 8KiB banks)\n", len(img.CHRData), img.CHR8kCount)

	fmt.Println("\n=== Raw Header ===")
	header := data[:16]
	for i, b := range header {
		fmt.Printf("%02X ", b)
		if (i+1)%8 == 0 {
			fmt.Println()
		}
	}
}
