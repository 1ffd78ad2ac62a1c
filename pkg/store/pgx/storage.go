package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/sci-vis/elibrary/backend/pkg/common"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
}

const defaultQueryTimeout = 15 * time.Second

// BiblioDBStorage implements the BiblioStorage interface on PostgreSQL.
// It holds no per-request state: every call acquires a connection from the
// pool, runs under its own deadline and releases the connection on every
// exit path.
type BiblioDBStorage struct {
	conn    pgxIConn
	timeout time.Duration
}

type BiblioDBStorageOption func(*BiblioDBStorage)

// WithQueryTimeout bounds every store call. Calls exceeding the deadline
// fail with common.ErrStoreTimeout instead of hanging.
func WithQueryTimeout(d time.Duration) BiblioDBStorageOption {
	return func(s *BiblioDBStorage) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewBiblioDBStorage creates a storage backed by an existing connection or
// pool.
func NewBiblioDBStorage(conn pgxIConn, opts ...BiblioDBStorageOption) *BiblioDBStorage {
	s := &BiblioDBStorage{
		conn:    conn,
		timeout: defaultQueryTimeout,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

func (s *BiblioDBStorage) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// storeErr classifies a query failure: deadline overruns surface as
// ErrStoreTimeout so callers can choose to retry, everything else wraps into
// a StoreError carrying the query name.
func storeErr(queryName string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &common.StoreError{Query: queryName, Err: common.ErrStoreTimeout}
	}
	return &common.StoreError{Query: queryName, Err: err}
}
