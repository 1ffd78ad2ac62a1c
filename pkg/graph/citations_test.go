package graph

import (
	"reflect"
	"testing"

	"github.com/sci-vis/elibrary/backend/pkg/common"
)

func citationFixture() []CitationRow {
	return []CitationRow{
		{CitingID: "1", CitingName: "Иванов И.И.", CitedID: "2", CitedName: "Петров А.В.", CitingTitle: "Обзор", CitedTitle: "Метод"},
		{CitingID: "1", CitingName: "Иванов И.И.", CitedID: "2", CitedName: "Петров А.В.", CitingTitle: "Обзор", CitedTitle: "Метод"},
		{CitingID: "1", CitingName: "Иванов И.И.", CitedID: "2", CitedName: "Петров А.В.", CitingTitle: "Анализ", CitedTitle: "Метод"},
		{CitingID: "2", CitingName: "Петров А.В.", CitedID: "3", CitedName: "Сидоров С.С.", CitingTitle: "Метод", CitedTitle: "Теория"},
	}
}

func TestAssembleCitationsNodes(t *testing.T) {
	g := AssembleCitations(citationFixture(), CitationModeArticles)

	wantNodes := []common.Node{
		{ID: "1", Name: "Иванов И.И."},
		{ID: "2", Name: "Петров А.В."},
		{ID: "3", Name: "Сидоров С.С."},
	}
	if !reflect.DeepEqual(g.Nodes, wantNodes) {
		t.Errorf("Nodes = %+v, want %+v", g.Nodes, wantNodes)
	}
	if len(g.Categories) != 1 || g.Categories[0].Name != "Автор" {
		t.Errorf("Categories = %+v", g.Categories)
	}
}

func TestAssembleCitationsArticlesMode(t *testing.T) {
	// One edge per distinct citing/cited title pair; the duplicated event
	// collapses.
	g := AssembleCitations(citationFixture(), CitationModeArticles)

	wantLinks := []common.Edge{
		{Source: "1", Target: "2", Title: "Анализ → Метод"},
		{Source: "1", Target: "2", Title: "Обзор → Метод"},
		{Source: "2", Target: "3", Title: "Метод → Теория"},
	}
	if !reflect.DeepEqual(g.Links, wantLinks) {
		t.Errorf("Links = %+v, want %+v", g.Links, wantLinks)
	}
}

func TestAssembleCitationsWeightedMode(t *testing.T) {
	g := AssembleCitations(citationFixture(), CitationModeWeighted)

	wantLinks := []common.Edge{
		{Source: "1", Target: "2", Weight: 2},
		{Source: "2", Target: "3", Weight: 1},
	}
	if !reflect.DeepEqual(g.Links, wantLinks) {
		t.Errorf("Links = %+v, want %+v", g.Links, wantLinks)
	}
}

func TestAssembleCitationsSelfCitation(t *testing.T) {
	rows := []CitationRow{
		{CitingID: "1", CitingName: "Иванов И.И.", CitedID: "1", CitedName: "Иванов И.И.", CitingTitle: "B", CitedTitle: "A"},
	}

	g := AssembleCitations(rows, CitationModeWeighted)
	if len(g.Nodes) != 1 {
		t.Fatalf("Nodes = %d, want 1", len(g.Nodes))
	}
	want := []common.Edge{{Source: "1", Target: "1", Weight: 1}}
	if !reflect.DeepEqual(g.Links, want) {
		t.Errorf("Links = %+v, want %+v", g.Links, want)
	}
}
