// =============================================================================
// CSV to NDO Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'build', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (ndoconv)
//   ├── buildCmd (ndoconv build)
//   ├── validateCmd (ndoconv validate)
//   └── versionCmd (ndoconv version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to an optional run configuration file.
// When empty, built-in defaults relative to the binary are used.
var cfgFile string

// verbose enables debug output when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "ndoconv",

	Short: "CSV to NDO Converter - Build NDO schema YAML variables from CSV tables",

	Long: `CSV to NDO Converter is a CLI tool that reassembles flat CSV exports of
network-fabric objects (VRFs, bridge domains, subnets, ANPs, EPGs and domain
associations) into the nested ndo_schema_data YAML document consumed by the
schema-build playbook.

Key Features:
  - Joins the per-subnet and per-domain detail tables back onto their parents
  - Preserves input row order throughout the generated document
  - Accepts either six CSV files or a single XLSX workbook
  - Validates references and headers before a run with 'ndoconv validate'

Example Usage:
  ndoconv build                          # Convert using the sample tables
  ndoconv build --bds bds.csv -o out.yaml
  ndoconv build --workbook fabric.xlsx   # Convert from one workbook
  ndoconv validate                       # Check the inputs without writing`,

	// Without a subcommand there is nothing to do; print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: optional run configuration file carrying the same path
	// set as the build flags.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional run configuration file",
	)

	// --verbose flag: enables debug output.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
