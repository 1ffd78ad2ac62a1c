package graph

import (
	"sort"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/names"
)

// EntityRow is one row-level (entity, name variant, linking item) tuple as
// returned by the two-tier resolver. Rows are deliberately not deduplicated
// by the store: one entity may carry several name-variant rows per item, and
// the assembler needs the entity-item multiplicity to compute weights.
type EntityRow struct {
	EntityID     string
	Name         string
	LangPriority int
	ItemID       int64
	Tier         int
}

// Tier values of EntityRow, matching the node category constants.
const (
	TierRelated = common.CategoryRelated
	TierPrimary = common.CategoryPrimary
)

// AuthorCategories returns the category descriptors of the author
// collaboration graph, indexed by node category.
func AuthorCategories() []common.Category {
	return []common.Category{
		{Name: "Связанные авторы"},
		{Name: "Отфильтрованные авторы"},
	}
}

// OrganizationCategories returns the category descriptors of the
// organization collaboration graph.
func OrganizationCategories() []common.Category {
	return []common.Category{
		{Name: "Связанные организации"},
		{Name: "Отфильтрованные организации"},
	}
}

// Assemble aggregates resolver rows into a collaboration graph.
//
// Nodes: rows are grouped by entity id; the node weight is the count of
// distinct linking items (not rows), the display label is the canonical name
// variant, and the category is primary when the entity appears in the
// primary tier. An empty row set yields a well-formed empty graph.
//
// Edges: one undirected edge per unordered pair of entities sharing at least
// one linking item, with weight = count of distinct shared items. Pairs are
// normalized to source < target in numeric id order and zero-weight edges
// cannot occur.
func Assemble(rows []EntityRow, categories []common.Category) common.Graph {
	type nodeAgg struct {
		variants []names.Variant
		items    map[int64]struct{}
		tier     int
	}

	aggs := make(map[string]*nodeAgg)
	itemEntities := make(map[int64]map[string]struct{})

	for _, row := range rows {
		agg, ok := aggs[row.EntityID]
		if !ok {
			agg = &nodeAgg{items: make(map[int64]struct{})}
			aggs[row.EntityID] = agg
		}
		agg.variants = append(agg.variants, names.Variant{
			Name:         row.Name,
			LangPriority: row.LangPriority,
		})
		agg.items[row.ItemID] = struct{}{}
		if row.Tier == TierPrimary {
			agg.tier = TierPrimary
		}

		ents, ok := itemEntities[row.ItemID]
		if !ok {
			ents = make(map[string]struct{})
			itemEntities[row.ItemID] = ents
		}
		ents[row.EntityID] = struct{}{}
	}

	nodes := make([]common.Node, 0, len(aggs))
	for id, agg := range aggs {
		nodes = append(nodes, common.Node{
			ID:       id,
			Name:     names.SelectCanonical(agg.variants),
			Value:    len(agg.items),
			Category: agg.tier,
		})
	}
	sort.Slice(nodes, func(i, j int) bool { return idLess(nodes[i].ID, nodes[j].ID) })

	links := assembleEdges(itemEntities)

	return common.Graph{
		Nodes:      nodes,
		Links:      links,
		Categories: categories,
	}
}

type pairKey struct {
	a, b string
}

// idLess orders entity ids numerically. Ids are decimal strings without
// leading zeros, so a shorter id is always the smaller number and equal
// lengths compare lexicographically. Plain string comparison would put
// "10" before "9".
func idLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func assembleEdges(itemEntities map[int64]map[string]struct{}) []common.Edge {
	weights := make(map[pairKey]int)
	for _, ents := range itemEntities {
		if len(ents) < 2 {
			continue
		}
		ids := make([]string, 0, len(ents))
		for id := range ents {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return idLess(ids[i], ids[j]) })
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				weights[pairKey{a: ids[i], b: ids[j]}]++
			}
		}
	}

	links := make([]common.Edge, 0, len(weights))
	for pair, weight := range weights {
		links = append(links, common.Edge{
			Source: pair.a,
			Target: pair.b,
			Weight: weight,
		})
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Source != links[j].Source {
			return idLess(links[i].Source, links[j].Source)
		}
		return idLess(links[i].Target, links[j].Target)
	})
	return links
}
