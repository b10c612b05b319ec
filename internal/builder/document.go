// =============================================================================
// CSV to NDO Converter - Document Assembler
// =============================================================================
//
// Composes the four builders' outputs into the single ndo_schema_data
// document and reports per-entity counts for the run summary.
//
// =============================================================================

package builder

import (
	"fmt"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/csvparser"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/types"
)

// TableSet holds the loaded input tables for one run.
// Subnets and Domains are optional and may be nil.
type TableSet struct {
	VRFs          *csvparser.Table
	BridgeDomains *csvparser.Table
	Subnets       *csvparser.Table
	ANPs          *csvparser.Table
	EPGs          *csvparser.Table
	Domains       *csvparser.Table
}

// Stats contains per-entity counts for the run summary.
type Stats struct {
	VRFs          int
	BridgeDomains int
	ANPs          int
	EPGs          int
}

// BuildDocument runs the four entity builders over the table set and
// assembles the top-level document.
//
// RETURNS:
//   - The assembled document, ready for serialization.
//   - Per-entity counts.
//   - An error if any builder fails (missing required column).
func BuildDocument(set TableSet) (*types.Document, Stats, error) {
	var stats Stats

	vrfs, err := BuildVRFs(set.VRFs)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to build VRFs: %w", err)
	}

	bds, err := BuildBridgeDomains(set.BridgeDomains, set.Subnets)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to build bridge domains: %w", err)
	}

	anps, err := BuildANPs(set.ANPs)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to build ANPs: %w", err)
	}

	epgs, err := BuildEPGs(set.EPGs, set.Domains)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to build EPGs: %w", err)
	}

	stats = Stats{
		VRFs:          len(vrfs),
		BridgeDomains: len(bds),
		ANPs:          len(anps),
		EPGs:          len(epgs),
	}

	doc := &types.Document{
		NDOSchemaData: types.SchemaData{
			VRFs:          vrfs,
			BridgeDomains: bds,
			ANPs:          anps,
			EPGs:          epgs,
		},
	}

	return doc, stats, nil
}
