package graph

import (
	"sort"

	"github.com/sci-vis/elibrary/backend/pkg/common"
)

// CitationMode selects how citation edges are emitted.
type CitationMode string

const (
	// CitationModeArticles emits one edge per distinct citing/cited
	// work-title pair, with the title pair carried on the edge.
	CitationModeArticles CitationMode = "articles"
	// CitationModeWeighted emits one edge per (citing, cited) author pair,
	// weighted by the number of distinct citation events.
	CitationModeWeighted CitationMode = "weighted"
)

// CitationRow is one citation event read from the citation view: the citing
// author's work references the cited author's work.
type CitationRow struct {
	CitedID     string
	CitedName   string
	CitingID    string
	CitingName  string
	CitedTitle  string
	CitingTitle string
}

// AssembleCitations builds a directed citation graph. Edges run from the
// citing author to the cited author without unordered-pair normalization;
// self-citations keep their single node.
func AssembleCitations(rows []CitationRow, mode CitationMode) common.Graph {
	nodeNames := make(map[string]string)
	order := make([]string, 0)
	for _, row := range rows {
		if _, ok := nodeNames[row.CitedID]; !ok {
			nodeNames[row.CitedID] = row.CitedName
			order = append(order, row.CitedID)
		}
		if _, ok := nodeNames[row.CitingID]; !ok {
			nodeNames[row.CitingID] = row.CitingName
			order = append(order, row.CitingID)
		}
	}
	sort.Slice(order, func(i, j int) bool { return idLess(order[i], order[j]) })

	nodes := make([]common.Node, 0, len(order))
	for _, id := range order {
		nodes = append(nodes, common.Node{ID: id, Name: nodeNames[id]})
	}

	var links []common.Edge
	switch mode {
	case CitationModeWeighted:
		links = weightedCitationEdges(rows)
	default:
		links = articleCitationEdges(rows)
	}

	return common.Graph{
		Nodes:      nodes,
		Links:      links,
		Categories: []common.Category{{Name: "Автор"}},
	}
}

type citationEvent struct {
	citing, cited           string
	citingTitle, citedTitle string
}

func distinctCitationEvents(rows []CitationRow) []citationEvent {
	seen := make(map[citationEvent]struct{}, len(rows))
	events := make([]citationEvent, 0, len(rows))
	for _, row := range rows {
		ev := citationEvent{
			citing:      row.CitingID,
			cited:       row.CitedID,
			citingTitle: row.CitingTitle,
			citedTitle:  row.CitedTitle,
		}
		if _, ok := seen[ev]; ok {
			continue
		}
		seen[ev] = struct{}{}
		events = append(events, ev)
	}
	return events
}

func articleCitationEdges(rows []CitationRow) []common.Edge {
	events := distinctCitationEvents(rows)
	links := make([]common.Edge, 0, len(events))
	for _, ev := range events {
		links = append(links, common.Edge{
			Source: ev.citing,
			Target: ev.cited,
			Title:  ev.citingTitle + " → " + ev.citedTitle,
		})
	}
	sortCitationEdges(links)
	return links
}

func weightedCitationEdges(rows []CitationRow) []common.Edge {
	type directedPair struct {
		citing, cited string
	}
	weights := make(map[directedPair]int)
	for _, ev := range distinctCitationEvents(rows) {
		weights[directedPair{citing: ev.citing, cited: ev.cited}]++
	}

	links := make([]common.Edge, 0, len(weights))
	for pair, weight := range weights {
		links = append(links, common.Edge{
			Source: pair.citing,
			Target: pair.cited,
			Weight: weight,
		})
	}
	sortCitationEdges(links)
	return links
}

func sortCitationEdges(links []common.Edge) {
	sort.Slice(links, func(i, j int) bool {
		if links[i].Source != links[j].Source {
			return idLess(links[i].Source, links[j].Source)
		}
		if links[i].Target != links[j].Target {
			return idLess(links[i].Target, links[j].Target)
		}
		return links[i].Title < links[j].Title
	})
}
