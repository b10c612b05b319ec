// =============================================================================
// CSV to NDO Converter - CSV Parser Module
// =============================================================================
//
// This module is responsible for reading the flat NDO entity tables (VRFs,
// bridge domains, subnets, ANPs, EPGs, domain associations) from disk.
//
// All tables share the same shape: one header row naming the columns,
// followed by one data row per object. The parser converts each data row
// into a header -> value map so the builders can access fields by name, and
// preserves file order, which later becomes the output list order.
//
// The parser does not validate column presence; builders call RequireColumns
// with the columns they are about to read so the error can name the file and
// the missing header.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Row is a single data row, keyed by column header.
type Row map[string]string

// Table represents one parsed entity table.
type Table struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Rows contains the data rows as header -> value maps, in file order.
	Rows []Row

	// SourceFile is the path the table was loaded from.
	// Used in error messages and validation reports.
	SourceFile string
}

// HasColumn reports whether the table's header row contains the column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Load reads an entity table from a CSV file.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - A pointer to the Table containing headers and ordered data rows.
//   - An error if the file cannot be opened or parsed.
//
// The first row is the header row. Cell values are whitespace-trimmed and
// rows whose cells are all empty are skipped. Rows shorter than the header
// row report "" for the missing trailing columns.
func Load(filePath string) (*Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(bufio.NewReader(file))

	// Tables exported from spreadsheets are frequently ragged; tolerate
	// short rows instead of failing the whole load.
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", filePath, err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file %s is empty", filePath)
	}

	headers := cleanHeaders(allRows[0])

	rows := make([]Row, 0, len(allRows)-1)
	for _, raw := range allRows[1:] {
		if isRowEmpty(raw) {
			continue
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = strings.TrimSpace(raw[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
	}, nil
}

// LoadOptional reads an entity table if the path is set and the file exists.
//
// RETURNS:
//   - nil, nil when the path is empty or the file does not exist. Callers
//     treat a nil table as "no child rows".
//   - The loaded table or a parse error otherwise.
//
// This is how the optional detail tables (bd_subnets, epg_domains) degrade
// gracefully when they were never exported.
func LoadOptional(filePath string) (*Table, error) {
	if filePath == "" {
		return nil, nil
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	}
	return Load(filePath)
}

// RequireColumns verifies that the table's header row contains every named
// column, returning an error naming the file and the first missing column.
func RequireColumns(t *Table, columns ...string) error {
	for _, col := range columns {
		if !t.HasColumn(col) {
			return fmt.Errorf("%s: missing required column %q", t.SourceFile, col)
		}
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// cleanHeaders trims whitespace from header cells.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		cleaned[i] = strings.TrimSpace(header)
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
