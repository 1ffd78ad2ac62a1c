package pgx

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sci-vis/elibrary/backend/pkg/common"
	"github.com/sci-vis/elibrary/backend/pkg/store"
)

func TestFilterOptionsUnknownDimension(t *testing.T) {
	mock, storage := newMockStorage(t)

	page := storage.FilterOptions(context.Background(), "bogus", store.LookupParams{})

	assert.Empty(t, page.Items)
	assert.NotEmpty(t, page.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterOptionsPagination(t *testing.T) {
	mock, storage := newMockStorage(t)

	// perPage+1 rows are requested; the extra row only signals hasMore and
	// is trimmed from the page.
	rows := pgxmock.NewRows([]string{"value", "name"}).
		AddRow(int64(1), "Иванов И.И.").
		AddRow(int64(2), "Петров А.В.").
		AddRow(int64(3), "Сидоров С.С.")

	mock.ExpectQuery(regexp.QuoteMeta("WITH matched_authors")).
		WithArgs(3, 2).
		WillReturnRows(rows)

	page := storage.FilterOptions(context.Background(), store.LookupAuthors, store.LookupParams{
		Page:    2,
		PerPage: 2,
	})

	require.Empty(t, page.Error)
	assert.True(t, page.HasMore)
	assert.Equal(t, []common.LookupOption{
		{Value: int64(1), Label: "Иванов И.И."},
		{Value: int64(2), Label: "Петров А.В."},
	}, page.Items)
	assert.Equal(t, 2, page.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterOptionsLastPage(t *testing.T) {
	mock, storage := newMockStorage(t)

	rows := pgxmock.NewRows([]string{"value", "name"}).
		AddRow(int64(5), "Фёдоров Ф.Ф.")

	mock.ExpectQuery(regexp.QuoteMeta("WITH matched_authors")).
		WithArgs(3, 0).
		WillReturnRows(rows)

	page := storage.FilterOptions(context.Background(), store.LookupAuthors, store.LookupParams{
		Page:    1,
		PerPage: 2,
	})

	require.Empty(t, page.Error)
	assert.False(t, page.HasMore)
	assert.Len(t, page.Items, 1)
}

func TestFilterOptionsSearchPredicate(t *testing.T) {
	mock, storage := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM keywords")).
		WithArgs("%граф%", 21, 0).
		WillReturnRows(pgxmock.NewRows([]string{"value", "label"}).AddRow("графы", "графы"))

	page := storage.FilterOptions(context.Background(), store.LookupKeywords, store.LookupParams{
		Search: "граф",
	})

	require.Empty(t, page.Error)
	assert.Equal(t, []common.LookupOption{{Value: "графы", Label: "графы"}}, page.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterOptionsDegradesOnFailure(t *testing.T) {
	mock, storage := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("WITH matched_authors")).
		WillReturnError(errors.New("relation does not exist"))

	page := storage.FilterOptions(context.Background(), store.LookupAuthors, store.LookupParams{})

	// Lookup failures never propagate as errors, the page degrades instead.
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.NotEmpty(t, page.Error)
}
