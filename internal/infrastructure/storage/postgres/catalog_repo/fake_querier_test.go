package catalog_repo

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow answers a COUNT(*) query.
type fakeRow struct {
	count int64
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.count
	return nil
}

// fakeRows serves string rows to pgxscan. Unused pgx.Rows methods panic.
type fakeRows struct {
	pgx.Rows
	cols []string
	data [][]string
	pos  int
}

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.pos < len(r.data) {
		r.pos++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	for i, d := range dest {
		*d.(*string) = row[i]
	}
	return nil
}

func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Close() {}

type call struct {
	sql  string
	args []any
}

// fakeQuerier records statements and returns canned results.
type fakeQuerier struct {
	count    int64
	countErr error
	rows     [][]string
	queryErr error
	affected int64
	execErr  error

	calls []call
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.calls = append(q.calls, call{sql, args})
	if q.execErr != nil {
		return pgconn.CommandTag{}, q.execErr
	}
	return pgconn.NewCommandTag("UPDATE " + strconv.FormatInt(q.affected, 10)), nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls = append(q.calls, call{sql, args})
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return &fakeRows{cols: []string{"code", "name"}, data: q.rows}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.calls = append(q.calls, call{sql, args})
	return fakeRow{count: q.count, err: q.countErr}
}
