// Command nes loads an iNES ROM and runs the CPU fetch-decode-execute
// loop to completion (BRK or an illegal opcode), optionally emitting a
// nestest-style trace line per instruction.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nescore/emu/pkg/console"
	"github.com/nescore/emu/pkg/cpu"
	"github.com/nescore/emu/pkg/logger"
	"github.com/nescore/emu/pkg/ppu"
	"github.com/nescore/emu/pkg/trace"
)

func main() {
	var (
		logLevel  = flag.String("log-level", "info", "Log level (off, error, warn, info, debug, trace)")
		logFile   = flag.String("log-file", "", "Log file path (empty for stdout)")
		cpuLog    = flag.Bool("cpu-log", false, "Enable CPU instruction logging")
		mapperLog = flag.Bool("mapper-log", false, "Enable mapper logging")
		traceOut  = flag.Bool("trace", false, "Print a trace line for every retired instruction")
		maxSteps  = flag.Int("max-steps", 0, "Stop after this many instructions (0 = unbounded)")
		timeout   = flag.Duration("timeout", 0, "Stop after this wall-clock duration (0 = unbounded)")
	)

	flag.Usage = func() {
		fmt.Printf("Usage: %s [options] <rom_file>\n\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	romFile := flag.Arg(0)

	level := logger.GetLogLevelFromString(*logLevel)
	if err := logger.Initialize(level, *logFile); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.SetCPULogging(*cpuLog)
	logger.SetMapperLogging(*mapperLog)

	logger.LogConsole("starting, rom=%s", romFile)

	c := console.New(ppu.New())
	if *traceOut {
		c.SetObserver(stdoutTracer{})
	}

	if err := c.LoadROM(romFile); err != nil {
		log.Fatalf("failed to load rom: %v", err)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	var err error
	if *maxSteps > 0 {
		err = runSteps(ctx, c, *maxSteps)
	} else {
		err = c.Run(ctx)
	}
	if err != nil {
		logger.LogError("run stopped: %v", err)
		log.Fatalf("run stopped: %v", err)
	}

	logger.LogConsole("halted at cycle %d", c.CPU.Cycles)
}

// runSteps single-steps the CPU directly instead of calling
// console.Run, so a headless instruction-count bound can be enforced
// without introducing any concurrency into the otherwise
// single-threaded fetch-decode-execute loop.
func runSteps(ctx context.Context, c *console.Console, maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if c.CPU.State == cpu.Halted {
			return nil
		}
		if _, err := c.CPU.Step(); err != nil {
			return err
		}
	}
	return nil
}

type stdoutTracer struct{}

func (stdoutTracer) OnStep(s trace.Snapshot) {
	fmt.Printf("%04X  %-9s %-4s %-10s A:%02X X:%02X Y:%02X S:%02X P:%02X CYC:%d\n",
		s.PC, hexOpcode(s.Opcode), s.Mnemonic, s.OperandText, s.A, s.X, s.Y, s.S, s.P, s.Cycles)
}

func hexOpcode(v uint8) string {
	return fmt.Sprintf("%02X", v)
}
