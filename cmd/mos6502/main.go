package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"mos6502/cpu"
	"mos6502/mem"
)

// The canonical memory map: low RAM holds the zero page and the stack, the
// program ROM occupies 16 pages at its base, general RAM fills the rest up
// to and including the vector page. A printer, when enabled, takes one page
// out of the general RAM range.
func buildMachine(romPath string, origin uint16, printerPage int, illegal bool) (*cpu.Cpu, error) {
	rom, err := mem.NewRomFromFile(romPath)
	if err != nil {
		return nil, err
	}

	bus := mem.NewBus()
	romPage := int(origin >> 8)
	if romPage > 0 {
		if err := bus.Attach(mem.NewRam(), 0x00, romPage-1, false); err != nil {
			return nil, err
		}
	}
	if err := bus.Attach(rom, romPage, romPage+0x0F, false); err != nil {
		return nil, err
	}

	high := mem.NewRam()
	next := romPage + 0x10
	if printerPage >= 0 {
		if printerPage != next {
			return nil, fmt.Errorf("printer page $%02X must follow the ROM at $%02X", printerPage, next)
		}
		if err := bus.Attach(mem.NewPrinter(nil), printerPage, printerPage, false); err != nil {
			return nil, err
		}
		next++
	}
	if next <= 0xFF {
		if err := bus.Attach(high, next, 0xFF, false); err != nil {
			return nil, err
		}
	}

	return cpu.New(bus, origin, illegal), nil
}

func main() {
	app := &cli.App{
		Name:  "mos6502",
		Usage: "Run assembled 6502 programs",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "origin",
				Usage: "address the ROM is attached at and execution starts from",
				Value: 0x1000,
			},
			&cli.IntFlag{
				Name:  "halt",
				Usage: "opcode to halt on when about to be fetched, -1 to run forever",
				Value: 0x00,
			},
			&cli.BoolFlag{
				Name:  "illegal",
				Usage: "enable the documented illegal opcodes",
			},
			&cli.IntFlag{
				Name:  "printer-page",
				Usage: "attach a printer at this page, -1 for none",
				Value: -1,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a ROM image to the halt opcode",
				ArgsUsage: "<image>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "trace",
						Usage: "print each executed instruction",
					},
				},
				Action: runAction,
			},
			{
				Name:      "debug",
				Usage:     "single-step a ROM image in the interactive debugger",
				ArgsUsage: "<image>",
				Action:    debugAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func machineFromContext(ctx *cli.Context) (*cpu.Cpu, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("exactly one ROM image expected")
	}
	origin := ctx.Uint("origin")
	if origin > 0xFFFF || origin&0x00FF != 0 {
		return nil, fmt.Errorf("origin $%X must be a page-aligned 16-bit address", origin)
	}
	return buildMachine(
		ctx.Args().First(),
		uint16(origin),
		ctx.Int("printer-page"),
		ctx.Bool("illegal"),
	)
}

func runAction(ctx *cli.Context) error {
	c, err := machineFromContext(ctx)
	if err != nil {
		return err
	}

	halt := ctx.Int("halt")
	trace := ctx.Bool("trace")
	for {
		if err := c.Step(); err != nil {
			return err
		}
		if trace {
			fmt.Println(c.TraceLine())
		}
		if halt >= 0 && c.Read(c.PC) == byte(halt) {
			return nil
		}
	}
}

func debugAction(ctx *cli.Context) error {
	c, err := machineFromContext(ctx)
	if err != nil {
		return err
	}
	return c.Debug(ctx.Int("halt"))
}
