// =============================================================================
// CSV to NDO Converter - Detail Table Join
// =============================================================================
//
// The bridge-domain and EPG builders share the same join shape: a primary
// table keyed by entity name plus an optional detail table whose rows are
// grouped two levels deep, first by parent entity name, then by site name.
// This file implements that grouping once; the builders only differ in the
// per-site record they construct from the grouped rows.
//
// =============================================================================

package builder

import (
	"github.com/ndotools/CSV-to-NDO-conversion/internal/csvparser"
)

// siteGroups is the result of grouping a detail table: parent name -> site
// name -> detail rows, with both levels in first-occurrence order.
type siteGroups = orderedMap[*orderedMap[[]csvparser.Row]]

// groupBySite groups the detail table's rows by (parentCol, siteCol).
//
// PARAMETERS:
//   - table: The detail table. Must not be nil.
//   - parentCol: The column naming the parent entity (e.g. "bd_name").
//   - siteCol: The column naming the site (e.g. "site_name").
//
// RETURNS:
//   - The two-level grouping, or an error if a grouping column is absent
//     from the table's header row.
//
// Ordering: parents appear in first-occurrence order, sites within a parent
// in first-occurrence order, and rows within a site in file order.
func groupBySite(table *csvparser.Table, parentCol, siteCol string) (*siteGroups, error) {
	if err := csvparser.RequireColumns(table, parentCol, siteCol); err != nil {
		return nil, err
	}

	groups := newOrderedMap[*orderedMap[[]csvparser.Row]]()
	for _, row := range table.Rows {
		parent := row[parentCol]
		site := row[siteCol]

		sites, ok := groups.Get(parent)
		if !ok {
			sites = newOrderedMap[[]csvparser.Row]()
			groups.Set(parent, sites)
		}

		rows, _ := sites.Get(site)
		sites.Set(site, append(rows, row))
	}

	return groups, nil
}

// attachSites walks the grouping and, for each parent present in the primary
// map, appends one site record per distinct site name via makeSite. Parents
// named in the detail table but absent from the primary table are dropped
// without error; the detail export routinely covers decommissioned objects.
func attachSites[P any, S any](
	parents *orderedMap[*P],
	groups *siteGroups,
	makeSite func(siteName string, rows []csvparser.Row) S,
	appendSite func(parent *P, site S),
) {
	for _, parentName := range groups.Keys() {
		parent, ok := parents.Get(parentName)
		if !ok {
			continue
		}

		sites, _ := groups.Get(parentName)
		for _, siteName := range sites.Keys() {
			rows, _ := sites.Get(siteName)
			appendSite(parent, makeSite(siteName, rows))
		}
	}
}
