package validation

import (
	"strings"
	"testing"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/builder"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/csvparser"
)

func table(headers []string, rows ...[]string) *csvparser.Table {
	tbl := &csvparser.Table{
		Headers:    headers,
		SourceFile: "test.csv",
	}
	for _, raw := range rows {
		row := make(csvparser.Row, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

func validSet() builder.TableSet {
	return builder.TableSet{
		VRFs: table([]string{"name", "schema", "template"},
			[]string{"vrf-1", "s", "t"}),
		BridgeDomains: table([]string{"name", "schema", "template", "vrf", "layer2_stretch", "unicast_routing"},
			[]string{"bd-1", "s", "t", "vrf-1", "true", "true"}),
		ANPs: table([]string{"name", "schema", "template"},
			[]string{"anp-1", "s", "t"}),
		EPGs: table([]string{"name", "schema", "template", "ap", "bd", "description", "vrf"},
			[]string{"web", "s", "t", "anp-1", "bd-1", "", "vrf-1"}),
	}
}

func TestValidateTableSet_CleanInput(t *testing.T) {
	result := ValidateTableSet(validSet())

	if !result.IsValid() {
		t.Errorf("IsValid() = false for clean input: %s", FormatReport(result))
	}
	if len(result.Findings) != 0 {
		t.Errorf("Findings = %v, want none", result.Findings)
	}
}

func TestValidateTableSet_MissingColumnIsError(t *testing.T) {
	set := validSet()
	set.VRFs = table([]string{"name", "schema"}, []string{"vrf-1", "s"})

	result := ValidateTableSet(set)
	if result.IsValid() {
		t.Fatal("IsValid() = true with missing template column")
	}
	if result.ErrorCount == 0 {
		t.Errorf("ErrorCount = 0, want at least one")
	}
}

func TestValidateTableSet_DanglingReferenceIsError(t *testing.T) {
	set := validSet()
	set.EPGs = table([]string{"name", "schema", "template", "ap", "bd", "description", "vrf"},
		[]string{"web", "s", "t", "ghost-anp", "bd-1", "", "vrf-1"})

	result := ValidateTableSet(set)
	if result.IsValid() {
		t.Fatal("IsValid() = true with dangling ap reference")
	}
	report := FormatReport(result)
	if !strings.Contains(report, "ghost-anp") {
		t.Errorf("report does not name the dangling reference:\n%s", report)
	}
}

func TestValidateTableSet_DuplicateNameIsWarning(t *testing.T) {
	set := validSet()
	set.VRFs = table([]string{"name", "schema", "template"},
		[]string{"vrf-1", "s", "t"},
		[]string{"vrf-1", "s2", "t2"})

	result := ValidateTableSet(set)
	if !result.IsValid() {
		t.Errorf("IsValid() = false; duplicates are warnings, not errors: %s", FormatReport(result))
	}
	if result.WarningCount != 1 {
		t.Errorf("WarningCount = %d, want 1", result.WarningCount)
	}
}

func TestValidateTableSet_UnknownDetailParentIsWarning(t *testing.T) {
	set := validSet()
	set.Subnets = table([]string{"bd_name", "site_name", "subnet_ip", "scope"},
		[]string{"ghost-bd", "site1", "10.0.0.0/24", "public"})

	result := ValidateTableSet(set)
	if !result.IsValid() {
		t.Errorf("IsValid() = false; dropped detail rows are warnings: %s", FormatReport(result))
	}
	if result.WarningCount == 0 {
		t.Error("WarningCount = 0, want a dropped-row warning")
	}
}

func TestValidateTableSet_UnrecognizedDomainTypeIsWarning(t *testing.T) {
	set := validSet()
	set.Domains = table([]string{"epg_name", "site_name", "domain_type", "domain_name"},
		[]string{"web", "site1", "l4l7", "dom-1"})

	result := ValidateTableSet(set)
	if !result.IsValid() {
		t.Errorf("IsValid() = false; unknown domain_type is a warning: %s", FormatReport(result))
	}
	report := FormatReport(result)
	if !strings.Contains(report, "l4l7") {
		t.Errorf("report does not name the unrecognized domain_type:\n%s", report)
	}
}

func TestFormatReport_ErrorsBeforeWarnings(t *testing.T) {
	set := validSet()
	// One warning (duplicate) and one error (dangling vrf ref).
	set.VRFs = table([]string{"name", "schema", "template"},
		[]string{"vrf-1", "s", "t"},
		[]string{"vrf-1", "s", "t"})
	set.BridgeDomains = table([]string{"name", "schema", "template", "vrf", "layer2_stretch", "unicast_routing"},
		[]string{"bd-1", "s", "t", "ghost-vrf", "true", "true"})

	result := ValidateTableSet(set)
	report := FormatReport(result)

	errIdx := strings.Index(report, "[ERROR]")
	warnIdx := strings.Index(report, "[WARNING]")
	if errIdx < 0 || warnIdx < 0 || errIdx > warnIdx {
		t.Errorf("report should list errors before warnings:\n%s", report)
	}
	if !strings.Contains(report, "1 error(s), 1 warning(s)") {
		t.Errorf("report missing summary line:\n%s", report)
	}
}
