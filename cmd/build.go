// =============================================================================
// CSV to NDO Converter - Build Command
// =============================================================================
//
// This file defines the 'build' command, which is the main command for
// converting the entity tables into the NDO schema YAML document.
//
// COMMAND USAGE:
//   ndoconv build [flags]
//
// FLAGS:
//   --vrfs      : VRFs CSV file
//   --bds       : Bridge domains CSV file
//   --subnets   : BD subnets CSV file (optional input)
//   --anps      : ANPs CSV file
//   --epgs      : EPGs CSV file
//   --domains   : EPG domain associations CSV file (optional input)
//   --workbook  : XLSX workbook replacing the six CSV files
//   --output/-o : Output YAML file
//
// PROCESSING PIPELINE:
//   1. Resolve paths (flags > config file > built-in defaults)
//   2. Load the entity tables (CSV files or workbook sheets)
//   3. Build the four entity lists, joining the detail tables
//   4. Serialize the document and write it atomically
//   5. Print the per-entity count summary
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/builder"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/config"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/csvparser"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/xlsxreader"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/yamlwriter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// flagPaths receives the path flags; only flags the user actually set
// override the configuration layer.
var flagPaths config.Config

// =============================================================================
// BUILD COMMAND DEFINITION
// =============================================================================

// buildCmd represents the 'build' command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Convert the entity tables into the NDO schema YAML document",
	Long: `The build command loads the VRF, bridge domain, ANP and EPG tables
(plus the optional subnet and domain-association detail tables), joins the
detail rows back onto their parent objects, and writes the nested
ndo_schema_data document.

The optional detail tables may be missing on disk; the affected parents are
then emitted with empty sites lists. All other tables are mandatory and any
read or header failure aborts the run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return runBuild(cfg)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the build command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(buildCmd)

	registerPathFlags(buildCmd)

	buildCmd.Flags().StringVarP(
		&flagPaths.OutputFile,
		"output",
		"o",
		"",
		"Output YAML file",
	)
}

// registerPathFlags adds the input-path flags shared by build and validate.
func registerPathFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPaths.VRFsFile, "vrfs", "", "VRFs CSV file")
	cmd.Flags().StringVar(&flagPaths.BridgeDomainsFile, "bds", "", "Bridge domains CSV file")
	cmd.Flags().StringVar(&flagPaths.SubnetsFile, "subnets", "", "BD subnets CSV file (optional)")
	cmd.Flags().StringVar(&flagPaths.ANPsFile, "anps", "", "ANPs CSV file")
	cmd.Flags().StringVar(&flagPaths.EPGsFile, "epgs", "", "EPGs CSV file")
	cmd.Flags().StringVar(&flagPaths.DomainsFile, "domains", "", "EPG domain associations CSV file (optional)")
	cmd.Flags().StringVar(&flagPaths.WorkbookFile, "workbook", "", "XLSX workbook replacing the six CSV files")
}

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// resolveConfig merges the three configuration layers: built-in defaults,
// the optional --config file, and any explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	override := func(flag string, dst *string, value string) {
		if cmd.Flags().Changed(flag) {
			*dst = value
		}
	}

	override("vrfs", &cfg.VRFsFile, flagPaths.VRFsFile)
	override("bds", &cfg.BridgeDomainsFile, flagPaths.BridgeDomainsFile)
	override("subnets", &cfg.SubnetsFile, flagPaths.SubnetsFile)
	override("anps", &cfg.ANPsFile, flagPaths.ANPsFile)
	override("epgs", &cfg.EPGsFile, flagPaths.EPGsFile)
	override("domains", &cfg.DomainsFile, flagPaths.DomainsFile)
	override("workbook", &cfg.WorkbookFile, flagPaths.WorkbookFile)
	if cmd.Flags().Lookup("output") != nil {
		override("output", &cfg.OutputFile, flagPaths.OutputFile)
	}

	return cfg, nil
}

// =============================================================================
// TABLE LOADING
// =============================================================================

// loadTables reads the entity tables named by the configuration, from the
// workbook when one is configured, otherwise from the six CSV files. The
// optional detail tables come back nil when their files are absent.
func loadTables(cfg *config.Config) (builder.TableSet, error) {
	if cfg.WorkbookFile != "" {
		debugf("Loading workbook %s", cfg.WorkbookFile)
		return xlsxreader.LoadTableSet(cfg.WorkbookFile)
	}

	var set builder.TableSet
	var err error

	if set.VRFs, err = csvparser.Load(cfg.VRFsFile); err != nil {
		return set, fmt.Errorf("failed to load VRFs: %w", err)
	}
	if set.BridgeDomains, err = csvparser.Load(cfg.BridgeDomainsFile); err != nil {
		return set, fmt.Errorf("failed to load bridge domains: %w", err)
	}
	if set.Subnets, err = csvparser.LoadOptional(cfg.SubnetsFile); err != nil {
		return set, fmt.Errorf("failed to load BD subnets: %w", err)
	}
	if set.ANPs, err = csvparser.Load(cfg.ANPsFile); err != nil {
		return set, fmt.Errorf("failed to load ANPs: %w", err)
	}
	if set.EPGs, err = csvparser.Load(cfg.EPGsFile); err != nil {
		return set, fmt.Errorf("failed to load EPGs: %w", err)
	}
	if set.Domains, err = csvparser.LoadOptional(cfg.DomainsFile); err != nil {
		return set, fmt.Errorf("failed to load EPG domains: %w", err)
	}

	return set, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runBuild executes the conversion pipeline.
func runBuild(cfg *config.Config) error {
	set, err := loadTables(cfg)
	if err != nil {
		return err
	}

	debugf("Loaded %d VRF, %d bridge domain, %d ANP, %d EPG row(s)",
		len(set.VRFs.Rows), len(set.BridgeDomains.Rows), len(set.ANPs.Rows), len(set.EPGs.Rows))

	doc, stats, err := builder.BuildDocument(set)
	if err != nil {
		return err
	}

	if err := yamlwriter.Write(doc, cfg.OutputFile); err != nil {
		return err
	}

	fmt.Printf("✓ Generated %s\n", cfg.OutputFile)
	fmt.Printf("  - VRFs: %d\n", stats.VRFs)
	fmt.Printf("  - Bridge Domains: %d\n", stats.BridgeDomains)
	fmt.Printf("  - ANPs: %d\n", stats.ANPs)
	fmt.Printf("  - EPGs: %d\n", stats.EPGs)

	return nil
}

// debugf prints a debug line when --verbose is set.
func debugf(format string, args ...interface{}) {
	if verbose {
		fmt.Printf("[debug] "+format+"\n", args...)
	}
}
