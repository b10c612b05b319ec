// =============================================================================
// CSV to NDO Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command. The version string ends up in the
// run logs kept next to generated vars files, so it carries the commit hash
// as well as the release number.
//
// COMMAND USAGE:
//   ndoconv version
//
// OUTPUT:
//   ndoconv 1.0.0 (commit unknown, built unknown, go1.24.0)
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// Set at build time using ldflags, e.g.:
//   go build -ldflags "-X 'cmd.Version=1.0.0' -X 'cmd.Commit=$(git rev-parse --short HEAD)' -X 'cmd.BuildDate=$(date -u +%Y-%m-%d)'"

// Version is the release number.
var Version = "1.0.0"

// Commit is the short hash of the commit the binary was built from.
var Commit = "unknown"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

// =============================================================================
// VERSION COMMAND DEFINITION
// =============================================================================

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the release number, source commit, build date, and Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionString())
	},
}

// versionString formats the one-line version banner.
func versionString() string {
	return fmt.Sprintf("ndoconv %s (commit %s, built %s, %s)",
		Version, Commit, BuildDate, runtime.Version())
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}
