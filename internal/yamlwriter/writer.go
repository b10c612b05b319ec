// =============================================================================
// CSV to NDO Converter - YAML Writer Module
// =============================================================================
//
// This module serializes the assembled document to the YAML variables file
// consumed by the playbook.
//
// OUTPUT STRUCTURE:
//
//   # Auto-generated from CSV files
//   ndo_schema_data:
//     vrfs:
//       - name: prod-vrf
//         schema: fabric-schema
//         template: common
//     bridge_domains:
//       - name: web-bd
//         ...
//         sites:
//           - name: site1
//             subnets:
//               - ip: 10.0.0.1/24
//                 scope: public
//             l3outs: null
//     anps: [...]
//     epgs: [...]
//
// Keys appear in struct-field order (never alphabetized) and all mappings
// and sequences use block style, since the file is meant to be diffed and
// reviewed by humans before the playbook run.
//
// =============================================================================

package yamlwriter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ndotools/CSV-to-NDO-conversion/internal/types"
	"github.com/ndotools/CSV-to-NDO-conversion/pkg/utils"
)

// HeaderComment is the comment line prepended to every generated file.
const HeaderComment = "# Auto-generated from CSV files"

// indent is the block indentation of the generated YAML.
const indent = 2

// Generate serializes the document to its on-disk representation,
// including the leading header comment.
func Generate(doc *types.Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(HeaderComment)
	buf.WriteByte('\n')

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// Write serializes the document and writes it atomically to outputPath.
func Write(doc *types.Document, outputPath string) error {
	data, err := Generate(doc)
	if err != nil {
		return err
	}

	if err := utils.AtomicWriteFile(outputPath, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return nil
}
