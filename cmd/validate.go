// =============================================================================
// CSV to NDO Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the entity tables
// and reports problems without writing the output document.
//
// COMMAND USAGE:
//   ndoconv validate [flags]
//
// The command reports two kinds of findings:
//   - Errors: conditions that would make 'build' fail, such as a missing
//     required column.
//   - Warnings: conditions 'build' accepts but silently drops or
//     overwrites, such as detail rows naming an unknown parent, duplicate
//     entity names, or an unrecognized domain_type.
//
// The exit status is non-zero when any error-severity finding exists;
// warnings alone leave the exit status at zero.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/validation"
)

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the entity tables without writing output",
	Long: `The validate command loads the same tables as 'build' and checks them:
header completeness, references between tables (bridge domains to VRFs; EPGs
to ANPs, bridge domains and VRFs), duplicate names, and detail rows that the
conversion would silently drop.

Use it before 'build' when the tables come from a fresh export.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		set, err := loadTables(cfg)
		if err != nil {
			return err
		}

		result := validation.ValidateTableSet(set)
		fmt.Print(validation.FormatReport(result))

		if !result.IsValid() {
			return fmt.Errorf("validation failed with %d error(s)", result.ErrorCount)
		}
		return nil
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
	registerPathFlags(validateCmd)
}
