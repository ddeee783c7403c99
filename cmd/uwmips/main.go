package main

import (
	"errors"
	"log"
	"os"
	"strconv"

	"gopkg.in/urfave/cli.v2"

	"uwmips/pkg/frontend"
	"uwmips/pkg/loader"
	"uwmips/pkg/mips"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:  "uwmips",
		Usage: "a user-space MIPS32-subset simulator",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run under the interactive, reversible debugger",
			},
			&cli.UintFlag{
				Name:    "load-address",
				Aliases: []string{"l"},
				Usage:   "address the program image is loaded at; must be divisible by 4",
				Value:   0,
			},
		},
		Commands: []*cli.Command{
			noargsCommand(),
			twointsCommand(),
			arrayCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func noargsCommand() *cli.Command {
	return &cli.Command{
		Name:      "noargs",
		Usage:     "run a program that touches no bootstrap registers",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				return cli.Exit("usage: uwmips noargs <file>", 1)
			}
			return run(c, c.Args().Get(0), func(cpu *mips.CPU) error {
				return frontend.Noargs(cpu)
			})
		},
	}
}

func twointsCommand() *cli.Command {
	return &cli.Command{
		Name:      "twoints",
		Usage:     "run a program with R[1] and R[2] set from int1 and int2",
		ArgsUsage: "<file> <int1> <int2>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 3 {
				return cli.Exit("usage: uwmips twoints <file> <int1> <int2>", 1)
			}
			int1, err := strconv.ParseInt(c.Args().Get(1), 10, 32)
			if err != nil {
				return cli.Exit("failed to parse int1: "+err.Error(), 1)
			}
			int2, err := strconv.ParseInt(c.Args().Get(2), 10, 32)
			if err != nil {
				return cli.Exit("failed to parse int2: "+err.Error(), 1)
			}
			return run(c, c.Args().Get(0), func(cpu *mips.CPU) error {
				return frontend.TwoInts(cpu, int32(int1), int32(int2))
			})
		},
	}
}

func arrayCommand() *cli.Command {
	return &cli.Command{
		Name:      "array",
		Usage:     "run a program with an array laid out at 0x20+load_address",
		ArgsUsage: "<file> [elem...]",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				return cli.Exit("usage: uwmips array <file> [elem...]", 1)
			}
			elems := c.Args().Slice()[1:]
			array := make([]int32, len(elems))
			for i, s := range elems {
				v, err := strconv.ParseInt(s, 10, 32)
				if err != nil {
					return cli.Exit("failed to parse array element: "+err.Error(), 1)
				}
				array[i] = int32(v)
			}
			return run(c, c.Args().Get(0), func(cpu *mips.CPU) error {
				return frontend.Array(cpu, cpu.PC, array)
			})
		},
	}
}

// run loads filename at the global --load-address, constructs a CPU,
// applies bootstrap, and either executes straight through or hands the
// CPU to the interactive debugger, depending on --debug.
func run(c *cli.Context, filename string, bootstrap func(*mips.CPU) error) error {
	loadAddr := uint32(c.Uint("load-address"))
	if loadAddr%4 != 0 {
		return cli.Exit("load_address must be word aligned", 1)
	}

	fp, err := os.Open(filename)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer fp.Close()

	words, err := loader.Load(fp)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	bus := mips.NewBus()
	loader.Install(bus, words, loadAddr)

	cpu := mips.NewCPU(bus, loadAddr)
	if err := bootstrap(cpu); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("debug") {
		dbg := mips.NewDebugger(cpu)
		if err := dbg.Debug(); err != nil {
			var exit *mips.Exit
			if errors.As(err, &exit) {
				return cli.Exit("", exit.Code)
			}
			return cli.Exit(err.Error(), 1)
		}
		return nil
	}

	for {
		result, err := cpu.Step()
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if result == mips.Halted {
			return nil
		}
	}
}
