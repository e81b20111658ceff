package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modpacker/modcheck/internal/models"
	"github.com/modpacker/modcheck/internal/reporter"
	"github.com/modpacker/modcheck/internal/resolver"
	"github.com/modpacker/modcheck/internal/scanner"
)

var (
	flagOutput  string
	flagFormat  string
	flagNoFail  bool
	flagVerbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "modcheck [dir]",
	Short: "Validate the dependencies of a Minecraft mod pack",
	Long: `modcheck inspects every mod jar in a directory and validates that the
set is internally consistent: every mandatory dependency is present and
version-compatible, no circular requirement chain exists, and every
declared version range is well-formed. No mod is ever loaded or executed.

It supports multiple platforms:
  - Fabric:   fabric.mod.json
  - Forge:    META-INF/mods.toml
  - NeoForge: META-INF/neoforge.mods.toml

Quilt mods are recognized but their partitions are reported as unsupported.
Dependency resolution never crosses platform boundaries.

Examples:
  # Check the mods folder of an instance
  modcheck ./mods

  # Output as JSON
  modcheck --format json ./mods

  # Output SARIF for GitHub Code Scanning
  modcheck --format sarif --output results.sarif ./mods

  # Don't fail on dependency faults (exit 0 regardless)
  modcheck --no-fail ./mods`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// Execute runs the root command and sets the exit code appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "terminal", "Output format: terminal, json, sarif")
	rootCmd.Flags().BoolVar(&flagNoFail, "no-fail", false, "Don't exit with error code if faults found")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "List every discovered mod and enable debug logging")
}

func runCheck(cmd *cobra.Command, args []string) error {
	config := models.DefaultConfig()
	if len(args) > 0 {
		config.Dir = args[0]
	}
	config.OutputFormat = flagFormat
	config.OutputFile = flagOutput
	config.FailOnFault = !flagNoFail
	config.Verbose = flagVerbose

	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Translate every jar into normalized records
	s := scanner.New(config)
	mods, err := s.Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	// Analyze the whole batch in one pass
	ordered, faults := resolver.Analyze(mods)

	// Generate report
	rep := reporter.Get(config.OutputFormat)
	output, err := rep.Report(reporter.Result{Mods: mods, Ordered: ordered, Faults: faults})
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	// Write output
	if config.OutputFile != "" {
		if err := os.WriteFile(config.OutputFile, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", config.OutputFile)
	} else {
		fmt.Print(string(output))
	}

	// Exit with error code if faults found and not disabled
	if len(faults) > 0 && config.FailOnFault {
		os.Exit(1)
	}

	return nil
}
