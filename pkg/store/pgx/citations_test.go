package pgx

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/filter"
	"github.com/sci-vis/elibrary/backend/pkg/graph"
)

func TestCitationRows(t *testing.T) {
	mock, storage := newMockStorage(t)

	rows := pgxmock.NewRows([]string{
		"author_id", "author_name", "citing_author", "citing_author_name",
		"author_item_title", "citing_item_title",
	}).
		AddRow(int64(2), strPtr("Петров А.В."), int64(1), strPtr("Иванов И.И."), strPtr("Метод"), strPtr("Обзор")).
		AddRow(int64(3), nil, int64(1), strPtr("Иванов И.И."), nil, strPtr("Обзор"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM author_citations_view")).
		WillReturnRows(rows)

	got, err := storage.CitationRows(context.Background())
	require.NoError(t, err)

	want := []graph.CitationRow{
		{CitedID: "2", CitedName: "Петров А.В.", CitingID: "1", CitingName: "Иванов И.И.", CitedTitle: "Метод", CitingTitle: "Обзор"},
		{CitedID: "3", CitedName: "", CitingID: "1", CitingName: "Иванов И.И.", CitedTitle: "", CitingTitle: "Обзор"},
	}
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceGraphRowsValidatesFirst(t *testing.T) {
	mock, storage := newMockStorage(t)

	_, err := storage.ReferenceGraphRows(context.Background(), filter.ReferenceGraphFilter{})

	var verr *common.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceGraphRowsNotImplemented(t *testing.T) {
	_, storage := newMockStorage(t)

	_, err := storage.ReferenceGraphRows(context.Background(), filter.ReferenceGraphFilter{
		Authors: []string{"Петров"},
	})

	assert.ErrorIs(t, err, common.ErrNotImplemented)
}
