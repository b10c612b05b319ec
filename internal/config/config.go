// =============================================================================
// CSV to NDO Converter - Configuration Module
// =============================================================================
//
// This module resolves the input and output paths for a run. Paths come
// from three layers, highest precedence first:
//   1. Command-line flags
//   2. An optional YAML run configuration file (--config)
//   3. Built-in defaults, resolved relative to the executable's directory
//      (csv_examples/*.csv next to the binary, like the sample data layout)
//
// The flag overlay happens in the cmd package, which knows which flags were
// explicitly set; this module handles layers 2 and 3.
//
// No environment variables are consumed.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the resolved file paths for one run.
type Config struct {
	// VRFsFile is the VRFs table. Mandatory input.
	VRFsFile string `yaml:"vrfs_file"`

	// BridgeDomainsFile is the bridge domains table. Mandatory input.
	BridgeDomainsFile string `yaml:"bridge_domains_file"`

	// SubnetsFile is the BD subnets detail table. Optional; when the file
	// does not exist, bridge domains are emitted with empty sites lists.
	SubnetsFile string `yaml:"subnets_file"`

	// ANPsFile is the ANPs table. Mandatory input.
	ANPsFile string `yaml:"anps_file"`

	// EPGsFile is the EPGs table. Mandatory input.
	EPGsFile string `yaml:"epgs_file"`

	// DomainsFile is the EPG domain associations detail table. Optional.
	DomainsFile string `yaml:"domains_file"`

	// WorkbookFile, when set, switches the run to XLSX workbook input and
	// the six table paths above are ignored.
	WorkbookFile string `yaml:"workbook_file"`

	// OutputFile is the destination of the generated YAML document.
	OutputFile string `yaml:"output_file"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration, with every path resolved
// relative to the executable's directory.
func Default() *Config {
	base := executableDir()
	return &Config{
		VRFsFile:          filepath.Join(base, "csv_examples", "vrfs.csv"),
		BridgeDomainsFile: filepath.Join(base, "csv_examples", "bridge_domains.csv"),
		SubnetsFile:       filepath.Join(base, "csv_examples", "bd_subnets.csv"),
		ANPsFile:          filepath.Join(base, "csv_examples", "anps.csv"),
		EPGsFile:          filepath.Join(base, "csv_examples", "epgs.csv"),
		DomainsFile:       filepath.Join(base, "csv_examples", "epg_domains.csv"),
		OutputFile:        filepath.Join(base, "ndo-schema-vars_fromcsv.yaml"),
	}
}

// executableDir returns the directory holding the running binary, falling
// back to the working directory when it cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a run configuration file and fills unset fields from the
// built-in defaults.
//
// PARAMETERS:
//   - configPath: The path to the YAML configuration file. When empty, the
//     built-in defaults are returned unchanged.
//
// RETURNS:
//   - The merged configuration.
//   - An error if the file cannot be read or parsed.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyOverlay(cfg, &overlay)
	return cfg, nil
}

// applyOverlay copies every non-empty field of the overlay onto the base.
func applyOverlay(base, overlay *Config) {
	if overlay.VRFsFile != "" {
		base.VRFsFile = overlay.VRFsFile
	}
	if overlay.BridgeDomainsFile != "" {
		base.BridgeDomainsFile = overlay.BridgeDomainsFile
	}
	if overlay.SubnetsFile != "" {
		base.SubnetsFile = overlay.SubnetsFile
	}
	if overlay.ANPsFile != "" {
		base.ANPsFile = overlay.ANPsFile
	}
	if overlay.EPGsFile != "" {
		base.EPGsFile = overlay.EPGsFile
	}
	if overlay.DomainsFile != "" {
		base.DomainsFile = overlay.DomainsFile
	}
	if overlay.WorkbookFile != "" {
		base.WorkbookFile = overlay.WorkbookFile
	}
	if overlay.OutputFile != "" {
		base.OutputFile = overlay.OutputFile
	}
}
