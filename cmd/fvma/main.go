package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foxvm/fvm/config"
	"github.com/foxvm/fvm/parser"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

// Exit codes
const (
	exitUsage   = 1
	exitMissing = 2
	exitAlloc   = 3
)

var dumpWords bool

var command = &cobra.Command{
	Use:     "fvma <input.fa> [output.fb]",
	Short:   "Assemble Fox assembly source into a ROM image",
	Version: Version,
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(assemble(args))
	},
}

func assemble(args []string) int {
	input := args[0]
	output := "a.fb"
	if len(args) == 2 {
		output = args[1]
	}
	if !strings.HasSuffix(output, ".fb") {
		fmt.Fprintf(os.Stderr, "Error: output filename %q must end with .fb\n", output)
		return exitUsage
	}

	words, errs, err := parser.AssembleFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", input, err)
		return exitMissing
	}

	if warnings := errs.PrintWarnings(); warnings != "" {
		fmt.Fprint(os.Stderr, warnings)
	}
	if errs.HasErrors() {
		// Diagnostic-only mode: surface every error, write nothing
		fmt.Fprint(os.Stderr, errs.Error())
		return 0
	}

	if dumpWords {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		printWords(words, cfg.Display.WordsPerLine)
		return 0
	}

	if err := parser.WriteROM(output, words); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitAlloc
	}
	return 0
}

func printWords(words []uint64, perLine int) {
	if perLine < 1 {
		perLine = 1
	}
	for i, w := range words {
		if i%perLine == 0 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%04d:", i)
		}
		fmt.Printf(" %016x", w)
	}
	if len(words) > 0 {
		fmt.Println()
	}
}

func init() {
	command.Flags().BoolVar(&dumpWords, "dump", false, "Print assembled words to stdout instead of writing a ROM")
	command.SetVersionTemplate(fmt.Sprintf("fvma %s (%s)\n", Version, Commit))
}

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}
