package pgx

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sci-vis/elibrary/backend/pkg/common"
)

func TestPublicationsByYearRejectsInvertedRange(t *testing.T) {
	mock, storage := newMockStorage(t)

	_, err := storage.PublicationsByYear(context.Background(), 2020, 2000)

	var verr *common.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicationsByYear(t *testing.T) {
	mock, storage := newMockStorage(t)

	rows := pgxmock.NewRows([]string{"year", "publications_count"}).
		AddRow(2019, 12).
		AddRow(2020, 30)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY year")).
		WithArgs(2019, 2021).
		WillReturnRows(rows)

	got, err := storage.PublicationsByYear(context.Background(), 2019, 2021)
	require.NoError(t, err)

	want := []common.YearCount{
		{Year: 2019, Count: 12},
		{Year: 2020, Count: 30},
	}
	assert.Equal(t, want, got)
}

func TestKeywordStats(t *testing.T) {
	mock, storage := newMockStorage(t)

	rows := pgxmock.NewRows([]string{"keyword", "language", "count"}).
		AddRow("графы", "RU", 8)

	mock.ExpectQuery(regexp.QuoteMeta("FROM keyword_year_view")).
		WithArgs(2020, "%граф%", "RU").
		WillReturnRows(rows)

	got, err := storage.KeywordStats(context.Background(), 2020, "граф", "ru")
	require.NoError(t, err)

	want := []common.KeywordStat{
		{Keyword: "графы", Language: "RU", Count: 8, Year: 2020},
	}
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeywordFrequencies(t *testing.T) {
	mock, storage := newMockStorage(t)

	rows := pgxmock.NewRows([]string{"keyword", "articles_count"}).
		AddRow(strPtr("анализ данных"), 12).
		AddRow(strPtr("графы"), 3)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(DISTINCT itemid) AS articles_count")).
		WillReturnRows(rows)

	got, err := storage.KeywordFrequencies(context.Background())
	require.NoError(t, err)

	want := []common.RatingEntry{
		{Name: "анализ данных", Count: 12},
		{Name: "графы", Count: 3},
	}
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopOrganizationsByKeyword(t *testing.T) {
	mock, storage := newMockStorage(t)

	rows := pgxmock.NewRows([]string{"organization", "count"}).
		AddRow(strPtr("ТГУ"), 15).
		AddRow(strPtr("МГУ"), 11)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY e.organizationname")).
		WithArgs("%графы%", 10, 5).
		WillReturnRows(rows)

	got, err := storage.TopOrganizationsByKeyword(context.Background(), "графы", 10, 5)
	require.NoError(t, err)

	want := []common.RatingEntry{
		{Name: "ТГУ", Count: 15},
		{Name: "МГУ", Count: 11},
	}
	assert.Equal(t, want, got)
}

func TestTopOrganizationsByKeywordRequiresKeyword(t *testing.T) {
	_, storage := newMockStorage(t)

	_, err := storage.TopOrganizationsByKeyword(context.Background(), "", 10, 5)

	var verr *common.ValidationError
	assert.ErrorAs(t, err, &verr)
}
