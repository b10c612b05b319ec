// =============================================================================
// CSV to NDO Converter - Shared Types
// =============================================================================
//
// This package contains the NDO schema data model shared across multiple
// modules. Types defined here are used by:
//   - builder
//   - validation
//   - yamlwriter
//
// The yaml struct tags double as the output key names, and the struct field
// order is the key order in the generated document. Do not reorder fields
// without checking the consumers of the generated file.
//
// =============================================================================

package types

// =============================================================================
// TOP-LEVEL DOCUMENT
// =============================================================================

// Document is the root of the generated YAML file.
// Everything lives under the single ndo_schema_data key, which is the
// variable name the downstream playbook imports.
type Document struct {
	NDOSchemaData SchemaData `yaml:"ndo_schema_data"`
}

// SchemaData groups the four entity lists in their fixed output order.
type SchemaData struct {
	VRFs          []VRF          `yaml:"vrfs"`
	BridgeDomains []BridgeDomain `yaml:"bridge_domains"`
	ANPs          []ANP          `yaml:"anps"`
	EPGs          []EPG          `yaml:"epgs"`
}

// =============================================================================
// ENTITY TYPES
// =============================================================================

// VRF is a Layer-3 routing-table scope. Flat record, no children.
type VRF struct {
	Name     string `yaml:"name"`
	Schema   string `yaml:"schema"`
	Template string `yaml:"template"`
}

// BridgeDomain is a Layer-2 forwarding domain, optionally stretched across
// sites. The VRF field is a reference by name into the vrfs list.
type BridgeDomain struct {
	Name           string `yaml:"name"`
	Schema         string `yaml:"schema"`
	Template       string `yaml:"template"`
	VRF            string `yaml:"vrf"`
	Layer2Stretch  bool   `yaml:"layer2_stretch"`
	UnicastRouting bool   `yaml:"unicast_routing"`
	Sites          []Site `yaml:"sites"`
}

// Site is the per-site subnet placement of a bridge domain.
type Site struct {
	Name    string   `yaml:"name"`
	Subnets []Subnet `yaml:"subnets"`

	// L3Outs is reserved for a later revision of the playbook and is always
	// emitted as null by this pipeline.
	L3Outs interface{} `yaml:"l3outs"`
}

// Subnet is one gateway subnet placed under a (bridge domain, site) pair.
type Subnet struct {
	IP    string `yaml:"ip"`
	Scope string `yaml:"scope"`
}

// ANP is an Application Network Profile, the grouping container for EPGs.
// Flat record, no children.
type ANP struct {
	Name     string `yaml:"name"`
	Schema   string `yaml:"schema"`
	Template string `yaml:"template"`
}

// EPG is an Endpoint Group. AP, BD and VRF are references by name.
type EPG struct {
	Name        string    `yaml:"name"`
	Schema      string    `yaml:"schema"`
	Template    string    `yaml:"template"`
	AP          string    `yaml:"ap"`
	BD          string    `yaml:"bd"`
	Description string    `yaml:"description"`
	VRF         string    `yaml:"vrf"`
	Sites       []EPGSite `yaml:"sites"`
}

// EPGSite carries the per-site domain bindings of an EPG.
type EPGSite struct {
	Name                  string   `yaml:"name"`
	PhysDomainAssociation []string `yaml:"phys_domain_association"`
	VMMDomainAssociation  []string `yaml:"vmm_domain_association"`
}
