package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records the calls a transaction receives. Unused pgx.Tx methods panic.
type fakeTx struct {
	pgx.Tx
	execs      []string
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.NewCommandTag("SET"), nil
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	opts []pgx.TxOptions
	tx   *fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.opts = append(b.opts, opts)
	b.tx = &fakeTx{}
	return b.tx, nil
}

func TestTxManager_CommitAndQuerier(t *testing.T) {
	begin := &fakeBeginner{}
	m := NewTxManagerWith(nil, begin)

	var inside Querier
	err := m.RunInTransaction(context.Background(), func(ctx context.Context) error {
		inside = m.GetQuerier(ctx)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, begin.opts, 1)
	assert.Equal(t, pgx.ReadCommitted, begin.opts[0].IsoLevel)
	assert.Equal(t, pgx.ReadWrite, begin.opts[0].AccessMode)
	assert.True(t, begin.tx.committed)
	assert.Same(t, begin.tx, inside)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	begin := &fakeBeginner{}
	m := NewTxManagerWith(nil, begin)
	boom := errors.New("boom")

	err := m.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, begin.tx.rolledBack)
	assert.False(t, begin.tx.committed)
}

func TestTxManager_ReadSnapshot(t *testing.T) {
	begin := &fakeBeginner{}
	m := NewTxManagerWith(nil, begin)
	m.timeout = 1500 * time.Millisecond

	err := m.ReadSnapshot(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, pgx.RepeatableRead, begin.opts[0].IsoLevel)
	assert.Equal(t, pgx.ReadOnly, begin.opts[0].AccessMode)
	assert.Equal(t, []string{"SET LOCAL statement_timeout = '1500ms'"}, begin.tx.execs)
}

func TestTxManager_NestedReusesOuter(t *testing.T) {
	begin := &fakeBeginner{}
	m := NewTxManagerWith(nil, begin)

	err := m.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return m.ReadSnapshot(ctx, func(ctx context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.Len(t, begin.opts, 1)
}

func TestTxManager_QuerierOutsideTransaction(t *testing.T) {
	m := NewTxManagerWith(nil, &fakeBeginner{})
	assert.Nil(t, m.GetTx(context.Background()))
	assert.Nil(t, m.GetQuerier(context.Background()))
}
