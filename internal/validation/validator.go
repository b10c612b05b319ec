// =============================================================================
// CSV to NDO Converter - Input Validation Engine
// =============================================================================
//
// This module validates the loaded input tables before (or instead of)
// conversion. It checks the things the builders themselves stay silent
// about:
//   - Header completeness per table
//   - Dangling references (bd.vrf -> vrfs, epg.ap -> anps, epg.bd -> bds)
//   - Duplicate primary names (legal, last row wins, but usually a mistake
//     in the export)
//   - Unrecognized domain_type values (silently dropped by the builder)
//   - Detail rows naming a parent absent from its primary table
//
// ERROR HANDLING:
//   - Findings are collected, not thrown immediately
//   - Each finding includes the source file, row number and field
//   - Findings are errors (conversion would fail) or warnings (conversion
//     would succeed but drop or overwrite data)
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/builder"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/csvparser"
)

// Finding severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// FINDING TYPES
// =============================================================================

// Finding represents a single validation finding.
type Finding struct {
	// Severity is "error" (conversion would fail) or "warning" (conversion
	// would silently drop or overwrite data).
	Severity string

	// File is the source file (or workbook sheet) of the finding.
	File string

	// RowNumber is the 1-indexed data row number, or 0 for table-level
	// findings such as a missing header column.
	RowNumber int

	// Field is the column involved, when applicable.
	Field string

	// Message is a human-readable description.
	Message string
}

// String formats the finding for the report.
func (f *Finding) String() string {
	location := f.File
	if f.RowNumber > 0 {
		location = fmt.Sprintf("%s row %d", f.File, f.RowNumber)
	}
	if f.Field != "" {
		location = fmt.Sprintf("%s field %q", location, f.Field)
	}
	return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(f.Severity), location, f.Message)
}

// Result contains the findings of one validation run.
type Result struct {
	Findings []*Finding

	// ErrorCount is the number of error-severity findings.
	ErrorCount int

	// WarningCount is the number of warning-severity findings.
	WarningCount int
}

// IsValid is true when no error-severity findings were collected.
// Warnings alone do not fail validation.
func (r *Result) IsValid() bool {
	return r.ErrorCount == 0
}

func (r *Result) add(severity, file string, rowNumber int, field, format string, args ...interface{}) {
	r.Findings = append(r.Findings, &Finding{
		Severity:  severity,
		File:      file,
		RowNumber: rowNumber,
		Field:     field,
		Message:   fmt.Sprintf(format, args...),
	})
	if severity == SeverityError {
		r.ErrorCount++
	} else {
		r.WarningCount++
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidateTableSet runs all checks over the loaded tables and returns the
// collected findings. Optional tables (Subnets, Domains) may be nil.
func ValidateTableSet(set builder.TableSet) *Result {
	result := &Result{}

	checkColumns(result, set.VRFs, builder.VRFColumns)
	checkColumns(result, set.BridgeDomains, builder.BridgeDomainColumns)
	checkColumns(result, set.Subnets, builder.SubnetColumns)
	checkColumns(result, set.ANPs, builder.ANPColumns)
	checkColumns(result, set.EPGs, builder.EPGColumns)
	checkColumns(result, set.Domains, builder.DomainColumns)

	vrfNames := primaryNames(result, set.VRFs)
	bdNames := primaryNames(result, set.BridgeDomains)
	anpNames := primaryNames(result, set.ANPs)
	epgNames := primaryNames(result, set.EPGs)

	checkReferences(result, set.BridgeDomains, "vrf", vrfNames, "vrfs table")
	checkReferences(result, set.EPGs, "ap", anpNames, "anps table")
	checkReferences(result, set.EPGs, "bd", bdNames, "bridge_domains table")
	checkReferences(result, set.EPGs, "vrf", vrfNames, "vrfs table")

	checkDetailParents(result, set.Subnets, "bd_name", bdNames, "bridge_domains table")
	checkDetailParents(result, set.Domains, "epg_name", epgNames, "epgs table")
	checkDomainTypes(result, set.Domains)

	return result
}

// checkColumns records an error for every required column missing from the
// table's header row. A nil table (absent optional file) is skipped.
func checkColumns(result *Result, table *csvparser.Table, required []string) {
	if table == nil {
		return
	}
	for _, col := range required {
		if !table.HasColumn(col) {
			result.add(SeverityError, table.SourceFile, 0, col, "missing required column")
		}
	}
}

// primaryNames collects the name column of a primary table and records a
// warning for every duplicate. The converter accepts duplicates (the last
// row wins) but they almost always mean a stale row in the export.
func primaryNames(result *Result, table *csvparser.Table) map[string]bool {
	names := make(map[string]bool)
	if table == nil || !table.HasColumn("name") {
		return names
	}

	for i, row := range table.Rows {
		name := row["name"]
		if names[name] {
			result.add(SeverityWarning, table.SourceFile, i+1, "name",
				"duplicate name %q; the last row's values win", name)
		}
		names[name] = true
	}
	return names
}

// checkReferences records an error for every row whose reference column
// names an entity absent from the referenced table.
func checkReferences(result *Result, table *csvparser.Table, column string, known map[string]bool, target string) {
	if table == nil || !table.HasColumn(column) {
		return
	}

	for i, row := range table.Rows {
		ref := row[column]
		if ref != "" && !known[ref] {
			result.add(SeverityError, table.SourceFile, i+1, column,
				"reference %q not found in %s", ref, target)
		}
	}
}

// checkDetailParents records a warning for every detail row whose parent
// column names an entity absent from its primary table. The converter drops
// such rows silently.
func checkDetailParents(result *Result, table *csvparser.Table, column string, known map[string]bool, target string) {
	if table == nil || !table.HasColumn(column) {
		return
	}

	for i, row := range table.Rows {
		parent := row[column]
		if !known[parent] {
			result.add(SeverityWarning, table.SourceFile, i+1, column,
				"parent %q not found in %s; row would be dropped", parent, target)
		}
	}
}

// checkDomainTypes records a warning for every domain row whose domain_type
// is neither "physical" nor "vmm". The converter ignores such rows.
func checkDomainTypes(result *Result, table *csvparser.Table) {
	if table == nil || !table.HasColumn("domain_type") {
		return
	}

	for i, row := range table.Rows {
		domainType := row["domain_type"]
		if domainType != builder.DomainTypePhysical && domainType != builder.DomainTypeVMM {
			result.add(SeverityWarning, table.SourceFile, i+1, "domain_type",
				"unrecognized value %q; row would be dropped", domainType)
		}
	}
}

// =============================================================================
// REPORTING
// =============================================================================

// FormatReport renders the findings as a human-readable report, errors
// first, then warnings.
func FormatReport(result *Result) string {
	var sb strings.Builder

	for _, severity := range []string{SeverityError, SeverityWarning} {
		for _, finding := range result.Findings {
			if finding.Severity == severity {
				sb.WriteString(finding.String())
				sb.WriteByte('\n')
			}
		}
	}

	sb.WriteString(fmt.Sprintf("%d error(s), %d warning(s)\n", result.ErrorCount, result.WarningCount))
	return sb.String()
}
