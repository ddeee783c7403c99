package mips

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// command is a debugger command.
type command int

const (
	cmdStep command = iota
	cmdStepBackwards
	cmdExit
	cmdRun
	cmdHelp
)

var commandNames = map[command]string{
	cmdStep: "Step", cmdStepBackwards: "StepBackwards",
	cmdExit: "Exit", cmdRun: "Run", cmdHelp: "Help",
}

func (c command) String() string { return commandNames[c] }

func parseCommand(s string) (command, bool) {
	switch s {
	case "run":
		return cmdRun, true
	case "step", "s", "sf":
		return cmdStep, true
	case "step-backwards", "sb":
		return cmdStepBackwards, true
	case "exit", "quit", "q":
		return cmdExit, true
	case "help":
		return cmdHelp, true
	default:
		return 0, false
	}
}

// state is one of the debugger's three states.
type state int

const (
	stateAcceptCmd state = iota
	stateRunning
	stateDone
)

// Debugger is an interactive, reversible stepper for a single CPU. It owns
// the CPU outright so that a reverse-step can atomically replace it with
// an earlier snapshot.
type Debugger struct {
	cpu         *CPU
	state       state
	prevCommand command
	snapshots   []*CPU

	In  *bufio.Scanner
	Out io.Writer
}

// NewDebugger wraps cpu for interactive debugging, reading commands from
// os.Stdin and writing prompts/dumps to os.Stderr.
func NewDebugger(cpu *CPU) *Debugger {
	return &Debugger{
		cpu:         cpu,
		state:       stateAcceptCmd,
		prevCommand: cmdStep,
		In:          bufio.NewScanner(os.Stdin),
		Out:         os.Stderr,
	}
}

// Exit is returned by Debug when the user issues exit/quit/q; callers
// should terminate the process with the wrapped code.
type Exit struct{ Code int }

func (e *Exit) Error() string { return fmt.Sprintf("debugger: exit %d", e.Code) }

func (d *Debugger) dumpCPUState() {
	fmt.Fprintln(d.Out, "  -------------==== Stack ====-------------")
	fmt.Fprintln(d.Out, "       ADDR    |     HEX     |     VAL     ")
	fmt.Fprintln(d.Out, "  -------------|-------------|-------------")

	stackAddr, _ := d.cpu.GetReg(GeneralPurpose(30))
	for offset := -6; offset <= 6; offset++ {
		addr := stackAddr + uint32(4*offset)
		indicator := byte(' ')
		if addr == stackAddr {
			indicator = '>'
		}
		val := d.cpu.Peek(addr)
		fmt.Fprintf(d.Out, "%c  0x%08x  | 0x%08x  | %d\n", indicator, addr, val, int32(val))
	}
	fmt.Fprintln(d.Out)

	fmt.Fprintln(d.Out, "  ---------====== Program RAM ======--------")
	fmt.Fprintln(d.Out, "     ADDR    |   HEXVAL   :     MIPS ASM    ")
	fmt.Fprintln(d.Out, "  -----------|------------------------------")

	pc, _ := d.cpu.GetReg(PCReg)
	for offset := -6; offset <= 6; offset++ {
		addr := pc + uint32(4*offset)
		indicator := byte(' ')
		if addr == pc {
			indicator = '>'
		}
		val := d.cpu.Peek(addr)
		fmt.Fprintf(d.Out, "%c 0x%08x | 0x%08x : %s\n", indicator, addr, val, Decode(val))
	}
	fmt.Fprintln(d.Out)

	fmt.Fprintln(d.Out, "------------------------------------------------====== CPU State ======------------------------------------------------")
	fmt.Fprintln(d.Out, d.cpu)
}

func (d *Debugger) stepCPU() error {
	d.snapshots = append(d.snapshots, d.cpu.Clone())

	result, err := d.cpu.Step()
	if err != nil {
		return fmt.Errorf("CPU error: %w", err)
	}
	if result == Halted {
		d.state = stateDone
	}
	return nil
}

func (d *Debugger) execCommand(cmd command) error {
	switch cmd {
	case cmdRun:
		d.state = stateRunning
	case cmdStep:
		if err := d.stepCPU(); err != nil {
			return err
		}
		d.dumpCPUState()
	case cmdStepBackwards:
		if n := len(d.snapshots); n > 0 {
			d.cpu = d.snapshots[n-1]
			d.snapshots = d.snapshots[:n-1]
		}
		d.dumpCPUState()
	case cmdExit:
		return &Exit{Code: 1}
	case cmdHelp:
		d.printHelp()
		return nil
	}
	d.prevCommand = cmd
	return nil
}

func (d *Debugger) printHelp() {
	fmt.Fprintln(d.Out, "  run ------------ run program")
	fmt.Fprintln(d.Out, "  step ----------- step forward a single instruction")
	fmt.Fprintln(d.Out, "  | s")
	fmt.Fprintln(d.Out, "  | sf")
	fmt.Fprintln(d.Out, "  step-backwards - step backwards a single instruction")
	fmt.Fprintln(d.Out, "  | sb")
	fmt.Fprintln(d.Out, "  exit ----------- quit the debugger")
	fmt.Fprintln(d.Out, "  | quit")
	fmt.Fprintln(d.Out, "  | q")
	fmt.Fprintln(d.Out, "  help ----------- open help")
}

// Debug runs the interactive debug loop until the CPU halts or the user
// exits. It returns an *Exit error when the user issued exit/quit/q.
func (d *Debugger) Debug() error {
	d.dumpCPUState()

	for {
		switch d.state {
		case stateRunning:
			if err := d.stepCPU(); err != nil {
				return err
			}
		case stateDone:
			fmt.Fprintln(d.Out, "Execution completed successfully!")
			fmt.Fprintln(d.Out, d.cpu)
			return nil
		case stateAcceptCmd:
			fmt.Fprintf(d.Out, "%s> ", d.prevCommand)

			if !d.In.Scan() {
				return fmt.Errorf("failed to read next command")
			}
			line := d.In.Text()

			cmd, ok := parseCommand(line)
			if !ok {
				if line == "" {
					cmd = d.prevCommand
				} else {
					fmt.Fprintln(d.Out, "Invalid command.")
					continue
				}
			}

			if err := d.execCommand(cmd); err != nil {
				return err
			}
		}
	}
}
