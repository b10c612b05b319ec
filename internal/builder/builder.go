// =============================================================================
// CSV to NDO Converter - Entity Builders
// =============================================================================
//
// This module contains the core transformation logic. Each builder consumes
// one primary entity table (and, for bridge domains and EPGs, an optional
// detail table) and produces the nested records of the NDO data model.
//
// BUILD PIPELINE (per joining builder):
//   1. Walk the primary table and construct one entity per distinct name in
//      an insertion-ordered map. Duplicate names overwrite the values but
//      keep the first occurrence's position.
//   2. If a detail table was supplied, group its rows by (entity, site) and
//      append one site record per distinct site name to each known entity.
//      Detail rows naming an unknown entity are dropped without error.
//
// Failures are limited to missing required columns; there is no recovery,
// the error propagates and aborts the run.
//
// =============================================================================

package builder

import (
	"github.com/ndotools/CSV-to-NDO-conversion/internal/csvparser"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/fields"
	"github.com/ndotools/CSV-to-NDO-conversion/internal/types"
)

// =============================================================================
// COLUMN SETS
// =============================================================================
// Required header columns per table. Kept in one place so the validate
// command and the builders cannot drift apart.

var (
	// VRFColumns are the required columns of the vrfs table.
	VRFColumns = []string{"name", "schema", "template"}

	// BridgeDomainColumns are the required columns of the bridge_domains table.
	BridgeDomainColumns = []string{"name", "schema", "template", "vrf", "layer2_stretch", "unicast_routing"}

	// SubnetColumns are the required columns of the bd_subnets detail table.
	SubnetColumns = []string{"bd_name", "site_name", "subnet_ip", "scope"}

	// ANPColumns are the required columns of the anps table.
	ANPColumns = []string{"name", "schema", "template"}

	// EPGColumns are the required columns of the epgs table.
	// The description column is optional and defaults to "".
	EPGColumns = []string{"name", "schema", "template", "ap", "bd", "vrf"}

	// DomainColumns are the required columns of the epg_domains detail table.
	DomainColumns = []string{"epg_name", "site_name", "domain_type", "domain_name"}
)

// Domain type discriminator values recognized in the epg_domains table.
// Rows carrying any other value are silently ignored.
const (
	DomainTypePhysical = "physical"
	DomainTypeVMM      = "vmm"
)

// =============================================================================
// FLAT BUILDERS
// =============================================================================

// BuildVRFs maps each row of the vrfs table to a flat VRF record,
// preserving row order.
func BuildVRFs(table *csvparser.Table) ([]types.VRF, error) {
	if err := csvparser.RequireColumns(table, VRFColumns...); err != nil {
		return nil, err
	}

	vrfs := make([]types.VRF, 0, len(table.Rows))
	for _, row := range table.Rows {
		vrfs = append(vrfs, types.VRF{
			Name:     row["name"],
			Schema:   row["schema"],
			Template: row["template"],
		})
	}
	return vrfs, nil
}

// BuildANPs maps each row of the anps table to a flat ANP record,
// preserving row order.
func BuildANPs(table *csvparser.Table) ([]types.ANP, error) {
	if err := csvparser.RequireColumns(table, ANPColumns...); err != nil {
		return nil, err
	}

	anps := make([]types.ANP, 0, len(table.Rows))
	for _, row := range table.Rows {
		anps = append(anps, types.ANP{
			Name:     row["name"],
			Schema:   row["schema"],
			Template: row["template"],
		})
	}
	return anps, nil
}

// =============================================================================
// BRIDGE DOMAIN BUILDER
// =============================================================================

// BuildBridgeDomains builds the bridge_domains list from the primary table
// and the optional bd_subnets detail table.
//
// PARAMETERS:
//   - primary: The bridge_domains table.
//   - subnets: The bd_subnets table, or nil when no subnet export exists.
//
// RETURNS:
//   - Bridge domains in first-occurrence order, each carrying its per-site
//     subnet placements (empty sites list when the detail table is nil or
//     has no rows for the domain).
func BuildBridgeDomains(primary *csvparser.Table, subnets *csvparser.Table) ([]types.BridgeDomain, error) {
	if err := csvparser.RequireColumns(primary, BridgeDomainColumns...); err != nil {
		return nil, err
	}

	bds := newOrderedMap[*types.BridgeDomain]()
	for _, row := range primary.Rows {
		bds.Set(row["name"], &types.BridgeDomain{
			Name:           row["name"],
			Schema:         row["schema"],
			Template:       row["template"],
			VRF:            row["vrf"],
			Layer2Stretch:  fields.ParseBool(row["layer2_stretch"]),
			UnicastRouting: fields.ParseBool(row["unicast_routing"]),
			Sites:          []types.Site{},
		})
	}

	if subnets != nil {
		groups, err := groupBySite(subnets, "bd_name", "site_name")
		if err != nil {
			return nil, err
		}

		attachSites(bds, groups,
			func(siteName string, rows []csvparser.Row) types.Site {
				site := types.Site{
					Name:    siteName,
					Subnets: make([]types.Subnet, 0, len(rows)),
					L3Outs:  nil,
				}
				for _, row := range rows {
					site.Subnets = append(site.Subnets, types.Subnet{
						IP:    row["subnet_ip"],
						Scope: row["scope"],
					})
				}
				return site
			},
			func(bd *types.BridgeDomain, site types.Site) {
				bd.Sites = append(bd.Sites, site)
			},
		)
	}

	result := make([]types.BridgeDomain, 0, bds.Len())
	for _, name := range bds.Keys() {
		bd, _ := bds.Get(name)
		result = append(result, *bd)
	}
	return result, nil
}

// =============================================================================
// EPG BUILDER
// =============================================================================

// BuildEPGs builds the epgs list from the primary table and the optional
// epg_domains detail table.
//
// Same two-phase shape as BuildBridgeDomains, but the per-site record is a
// pair of domain-name lists bucketed by the domain_type discriminator:
// "physical" rows land in phys_domain_association, "vmm" rows in
// vmm_domain_association, and rows with any other type are ignored.
func BuildEPGs(primary *csvparser.Table, domains *csvparser.Table) ([]types.EPG, error) {
	if err := csvparser.RequireColumns(primary, EPGColumns...); err != nil {
		return nil, err
	}

	epgs := newOrderedMap[*types.EPG]()
	for _, row := range primary.Rows {
		epgs.Set(row["name"], &types.EPG{
			Name:        row["name"],
			Schema:      row["schema"],
			Template:    row["template"],
			AP:          row["ap"],
			BD:          row["bd"],
			Description: row["description"],
			VRF:         row["vrf"],
			Sites:       []types.EPGSite{},
		})
	}

	if domains != nil {
		if err := csvparser.RequireColumns(domains, DomainColumns...); err != nil {
			return nil, err
		}

		// Only rows with a recognized domain_type may materialize a site
		// entry. An unrecognized row vanishes entirely; it must not leave
		// behind an empty site for a (epg, site) pair no recognized row
		// ever named.
		recognized := &csvparser.Table{
			Headers:    domains.Headers,
			SourceFile: domains.SourceFile,
		}
		for _, row := range domains.Rows {
			switch row["domain_type"] {
			case DomainTypePhysical, DomainTypeVMM:
				recognized.Rows = append(recognized.Rows, row)
			}
		}

		groups, err := groupBySite(recognized, "epg_name", "site_name")
		if err != nil {
			return nil, err
		}

		attachSites(epgs, groups,
			func(siteName string, rows []csvparser.Row) types.EPGSite {
				site := types.EPGSite{
					Name:                  siteName,
					PhysDomainAssociation: []string{},
					VMMDomainAssociation:  []string{},
				}
				for _, row := range rows {
					switch row["domain_type"] {
					case DomainTypePhysical:
						site.PhysDomainAssociation = append(site.PhysDomainAssociation, row["domain_name"])
					case DomainTypeVMM:
						site.VMMDomainAssociation = append(site.VMMDomainAssociation, row["domain_name"])
					}
				}
				return site
			},
			func(epg *types.EPG, site types.EPGSite) {
				epg.Sites = append(epg.Sites, site)
			},
		)
	}

	result := make([]types.EPG, 0, epgs.Len())
	for _, name := range epgs.Keys() {
		epg, _ := epgs.Get(name)
		result = append(result, *epg)
	}
	return result, nil
}
