package graph

import (
	"reflect"
	"testing"

	"github.com/sci-vis/elibrary/backend/pkg/common"
)

func TestAssembleEmpty(t *testing.T) {
	g := Assemble(nil, AuthorCategories())
	if len(g.Nodes) != 0 || len(g.Links) != 0 {
		t.Errorf("empty rows should yield empty graph, got %d nodes %d links", len(g.Nodes), len(g.Links))
	}
	if len(g.Categories) != 2 {
		t.Errorf("categories = %d, want 2", len(g.Categories))
	}
}

func TestAssembleAuthorGraph(t *testing.T) {
	// Author 42 is the filtered author, 7 and 9 are related through shared
	// publications. 42 carries two name variants, the native one wins.
	rows := []EntityRow{
		{EntityID: "42", Name: "Петров А.В.", LangPriority: 0, ItemID: 100, Tier: TierPrimary},
		{EntityID: "42", Name: "Petrov A.V.", LangPriority: 1, ItemID: 100, Tier: TierPrimary},
		{EntityID: "42", Name: "Петров А.В.", LangPriority: 0, ItemID: 101, Tier: TierPrimary},
		{EntityID: "42", Name: "Петров А.В.", LangPriority: 0, ItemID: 102, Tier: TierPrimary},
		{EntityID: "7", Name: "Иванов И.И.", LangPriority: 0, ItemID: 100, Tier: TierRelated},
		{EntityID: "7", Name: "Иванов И.И.", LangPriority: 0, ItemID: 101, Tier: TierRelated},
		{EntityID: "9", Name: "Сидоров С.С.", LangPriority: 0, ItemID: 102, Tier: TierRelated},
	}

	g := Assemble(rows, AuthorCategories())

	wantNodes := []common.Node{
		{ID: "7", Name: "Иванов И.И.", Value: 2, Category: common.CategoryRelated},
		{ID: "9", Name: "Сидоров С.С.", Value: 1, Category: common.CategoryRelated},
		{ID: "42", Name: "Петров А.В.", Value: 3, Category: common.CategoryPrimary},
	}
	if !reflect.DeepEqual(g.Nodes, wantNodes) {
		t.Errorf("Nodes = %+v, want %+v", g.Nodes, wantNodes)
	}

	wantLinks := []common.Edge{
		{Source: "7", Target: "42", Weight: 2},
		{Source: "9", Target: "42", Weight: 1},
	}
	if !reflect.DeepEqual(g.Links, wantLinks) {
		t.Errorf("Links = %+v, want %+v", g.Links, wantLinks)
	}
}

func TestAssembleWeightCountsDistinctItems(t *testing.T) {
	// Duplicate rows for the same (entity, item) pair must not inflate
	// either node values or edge weights.
	rows := []EntityRow{
		{EntityID: "1", Name: "A", ItemID: 10, Tier: TierPrimary},
		{EntityID: "1", Name: "A", ItemID: 10, Tier: TierPrimary},
		{EntityID: "2", Name: "B", ItemID: 10, Tier: TierRelated},
		{EntityID: "2", Name: "B", ItemID: 10, Tier: TierRelated},
	}

	g := Assemble(rows, AuthorCategories())

	for _, n := range g.Nodes {
		if n.Value != 1 {
			t.Errorf("node %s value = %d, want 1", n.ID, n.Value)
		}
	}
	if len(g.Links) != 1 || g.Links[0].Weight != 1 {
		t.Errorf("Links = %+v, want single edge with weight 1", g.Links)
	}
}

func TestAssembleEdgeOrderIsNumeric(t *testing.T) {
	// Ids of unequal digit length must be ordered by value, not by bytes:
	// the pair (10, 9) is emitted as source 9, target 10.
	rows := []EntityRow{
		{EntityID: "10", Name: "A", ItemID: 1, Tier: TierPrimary},
		{EntityID: "9", Name: "B", ItemID: 1, Tier: TierRelated},
	}

	g := Assemble(rows, AuthorCategories())

	wantLinks := []common.Edge{
		{Source: "9", Target: "10", Weight: 1},
	}
	if !reflect.DeepEqual(g.Links, wantLinks) {
		t.Errorf("Links = %+v, want %+v", g.Links, wantLinks)
	}
	if len(g.Nodes) != 2 || g.Nodes[0].ID != "9" || g.Nodes[1].ID != "10" {
		t.Errorf("Nodes = %+v, want ids in order 9, 10", g.Nodes)
	}
}

func TestAssemblePrimaryTierWins(t *testing.T) {
	// An entity that appears in both tiers is a primary node.
	rows := []EntityRow{
		{EntityID: "5", Name: "X", ItemID: 1, Tier: TierRelated},
		{EntityID: "5", Name: "X", ItemID: 2, Tier: TierPrimary},
	}

	g := Assemble(rows, AuthorCategories())
	if len(g.Nodes) != 1 {
		t.Fatalf("Nodes = %d, want 1", len(g.Nodes))
	}
	if g.Nodes[0].Category != common.CategoryPrimary {
		t.Errorf("Category = %d, want primary", g.Nodes[0].Category)
	}
}

func TestAssembleReferentialIntegrity(t *testing.T) {
	rows := []EntityRow{
		{EntityID: "1", Name: "A", ItemID: 1, Tier: TierPrimary},
		{EntityID: "2", Name: "B", ItemID: 1, Tier: TierRelated},
		{EntityID: "3", Name: "C", ItemID: 2, Tier: TierRelated},
		{EntityID: "1", Name: "A", ItemID: 2, Tier: TierPrimary},
	}

	g := Assemble(rows, AuthorCategories())

	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = struct{}{}
		if n.Category < 0 || n.Category >= len(g.Categories) {
			t.Errorf("node %s category %d out of range", n.ID, n.Category)
		}
	}
	for _, l := range g.Links {
		if _, ok := ids[l.Source]; !ok {
			t.Errorf("edge source %s has no node", l.Source)
		}
		if _, ok := ids[l.Target]; !ok {
			t.Errorf("edge target %s has no node", l.Target)
		}
		if !idLess(l.Source, l.Target) {
			t.Errorf("edge (%s, %s) not normalized", l.Source, l.Target)
		}
		if l.Weight == 0 {
			t.Errorf("edge (%s, %s) has zero weight", l.Source, l.Target)
		}
	}
}
