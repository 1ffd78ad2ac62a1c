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
)

func TestReferenceValuesUnknownType(t *testing.T) {
	mock, storage := newMockStorage(t)

	_, err := storage.ReferenceValues(context.Background(), "passwords; DROP TABLE items")

	var verr *common.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceValuesSortsAndSkipsNulls(t *testing.T) {
	mock, storage := newMockStorage(t)

	rows := pgxmock.NewRows([]string{"language"}).
		AddRow("RU").
		AddRow(nil).
		AddRow("EN")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT language")).
		WillReturnRows(rows)

	got, err := storage.ReferenceValues(context.Background(), "language")
	require.NoError(t, err)
	assert.Equal(t, []any{"EN", "RU"}, got)
}

func TestReferenceTypes(t *testing.T) {
	types := ReferenceTypes()
	assert.Contains(t, types, "language")
	assert.Contains(t, types, "towns")
	assert.IsIncreasing(t, types)
}

func TestAuthorsByCityDeduplicates(t *testing.T) {
	mock, storage := newMockStorage(t)

	// Two spellings of the same person collapse, output is sorted.
	rows := pgxmock.NewRows([]string{"lastname", "initials"}).
		AddRow(strPtr("петров"), strPtr("А.В.")).
		AddRow(strPtr("Петров"), strPtr("ав")).
		AddRow(strPtr("иванов"), strPtr("И.И.")).
		AddRow(nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("ILIKE ANY")).
		WithArgs([]string{"%Москва%", "%moscow%"}).
		WillReturnRows(rows)

	got, err := storage.AuthorsByCity(context.Background(), []string{"Москва", "moscow"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Иванов Ии", "Петров Ав"}, got)
}

func TestAuthorsByCityRequiresCities(t *testing.T) {
	_, storage := newMockStorage(t)

	_, err := storage.AuthorsByCity(context.Background(), nil)

	var verr *common.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAuthorsPagination(t *testing.T) {
	mock, storage := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM authors")).
		WithArgs("%петров%", 10, 20).
		WillReturnRows(pgxmock.NewRows([]string{
			"authorid", "itemid", "num", "language", "status",
			"lastname", "initials", "email",
		}))

	got, err := storage.Authors(context.Background(), filter.AuthorListFilter{
		Lastname:   "петров",
		Pagination: filter.Pagination{Limit: 10, Offset: 20},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
