package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foxvm/fvm/config"
	"github.com/foxvm/fvm/loader"
	"github.com/foxvm/fvm/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

// Exit codes
const (
	exitMissing = 2
	exitAlloc   = 3
	exitExec    = 4
)

var (
	diskPath    string
	maxCycles   uint64
	stackCap    uint64
	enableTrace bool
	mirrorReads bool
)

var command = &cobra.Command{
	Use:     "fvm [rom]",
	Short:   "Run a Fox Virtual Machine ROM image",
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run(cmd, args))
	},
}

func run(cmd *cobra.Command, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.DefaultConfig()
	}

	romPath := cfg.Paths.ROM
	if len(args) == 1 {
		romPath = args[0]
	}
	if !cmd.Flags().Changed("disk") {
		diskPath = cfg.Paths.Disk
	}
	if !cmd.Flags().Changed("max-cycles") {
		maxCycles = cfg.Execution.MaxCycles
	}
	if !cmd.Flags().Changed("stack-capacity") {
		stackCap = cfg.Execution.StackCapacity
	}
	if !cmd.Flags().Changed("trace") {
		enableTrace = cfg.Execution.EnableTrace
	}
	if !cmd.Flags().Changed("mirror-output-reads") {
		mirrorReads = cfg.Execution.MirrorOutputReads
	}

	machine := vm.NewVM()
	machine.Stack = vm.NewBuffer(stackCap)
	machine.CycleLimit = maxCycles
	machine.MirrorOutputReads = mirrorReads
	if enableTrace {
		machine.TraceWriter = os.Stderr
	}

	if err := loader.LoadROMFile(machine, romPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read ROM %s: %v\n", romPath, err)
		return exitMissing
	}

	disk, err := loader.OpenDisk(diskPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open disk %s: %v\n", diskPath, err)
		return exitMissing
	}
	defer func() {
		if closeErr := disk.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: closing disk: %v\n", closeErr)
		}
	}()
	machine.Disk = disk

	if err := machine.Run(); err != nil {
		if errors.Is(err, vm.ErrBufferLimit) {
			return exitAlloc
		}
		return exitExec
	}
	return 0
}

func init() {
	command.Flags().StringVar(&diskPath, "disk", "hardware/disk", "Disk backing file")
	command.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "Maximum instruction count before halt (0 = unlimited)")
	command.Flags().Uint64Var(&stackCap, "stack-capacity", vm.DefaultStackCapacity, "Initial callstack capacity in words")
	command.Flags().BoolVar(&enableTrace, "trace", false, "Write an execution trace to stderr")
	command.Flags().BoolVar(&mirrorReads, "mirror-output-reads", false, "Mirror ld on the output channel onto the input stream")
	command.SetVersionTemplate(fmt.Sprintf("fvm %s (%s)\n", Version, Commit))
}

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
