// =============================================================================
// CSV to NDO Converter - XLSX Workbook Reader
// =============================================================================
//
// This module loads the entity tables from a single XLSX workbook instead of
// individual CSV files. Fabric teams that maintain their address plan in a
// spreadsheet can feed the workbook directly, one sheet per table:
//
//   | Sheet name      | Table                          |
//   |-----------------|--------------------------------|
//   | vrfs            | VRFs (mandatory)               |
//   | bridge_domains  | Bridge domains (mandatory)     |
//   | bd_subnets      | BD subnet placements (optional)|
//   | anps            | ANPs (mandatory)               |
//   | epgs            | EPGs (mandatory)               |
//   | epg_domains     | EPG domain bindings (optional) |
//
// Each sheet has the same header row as its CSV counterpart and is loaded
// into the same row shape the CSV parser produces, so the builders cannot
// tell the two input modes apart.
//
// =============================================================================

package xlsxreader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/builder"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/csvparser"
)

// Sheet names expected in the workbook.
const (
	SheetVRFs          = "vrfs"
	SheetBridgeDomains = "bridge_domains"
	SheetSubnets       = "bd_subnets"
	SheetANPs          = "anps"
	SheetEPGs          = "epgs"
	SheetDomains       = "epg_domains"
)

// LoadTableSet reads all entity tables from one workbook.
//
// PARAMETERS:
//   - path: The path to the .xlsx workbook.
//
// RETURNS:
//   - A TableSet ready for the document builder. The optional sheets
//     (bd_subnets, epg_domains) are nil when absent; the mandatory sheets
//     produce an error when absent.
func LoadTableSet(path string) (builder.TableSet, error) {
	var set builder.TableSet

	f, err := excelize.OpenFile(path)
	if err != nil {
		return set, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		sheets[name] = true
	}

	load := func(sheet string, optional bool) (*csvparser.Table, error) {
		if !sheets[sheet] {
			if optional {
				return nil, nil
			}
			return nil, fmt.Errorf("%s: missing required sheet %q", path, sheet)
		}
		return sheetToTable(f, path, sheet)
	}

	if set.VRFs, err = load(SheetVRFs, false); err != nil {
		return set, err
	}
	if set.BridgeDomains, err = load(SheetBridgeDomains, false); err != nil {
		return set, err
	}
	if set.Subnets, err = load(SheetSubnets, true); err != nil {
		return set, err
	}
	if set.ANPs, err = load(SheetANPs, false); err != nil {
		return set, err
	}
	if set.EPGs, err = load(SheetEPGs, false); err != nil {
		return set, err
	}
	if set.Domains, err = load(SheetDomains, true); err != nil {
		return set, err
	}

	return set, nil
}

// sheetToTable converts one sheet into the row shape the builders consume.
// The first row is the header row; values are whitespace-trimmed and rows
// whose cells are all empty are skipped, matching the CSV parser.
func sheetToTable(f *excelize.File, path, sheet string) (*csvparser.Table, error) {
	allRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	headers := make([]string, len(allRows[0]))
	for i, h := range allRows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]csvparser.Row, 0, len(allRows)-1)
	for _, raw := range allRows[1:] {
		row := make(csvparser.Row, len(headers))
		empty := true
		for i, header := range headers {
			value := ""
			if i < len(raw) {
				value = strings.TrimSpace(raw[i])
			}
			if value != "" {
				empty = false
			}
			row[header] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return &csvparser.Table{
		Headers:    headers,
		Rows:       rows,
		SourceFile: fmt.Sprintf("%s#%s", path, sheet),
	}, nil
}
