package catalog_repo

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogodeleite/internal/core/apperror"
	"catalogodeleite/internal/domain"
	"catalogodeleite/internal/domain/catalogs/produto"
	"catalogodeleite/internal/domain/search"
	"catalogodeleite/internal/infrastructure/storage/postgres"
)

func newTestRepo(q *fakeQuerier) *ProdutoRepo {
	return NewProdutoRepo(postgres.NewTxManagerWith(q, nil))
}

func TestProdutoRepo_Columns(t *testing.T) {
	repo := newTestRepo(&fakeQuerier{})
	assert.Equal(t, []string{"code", "name"}, repo.selectCols)
	assert.Equal(t, "produto", repo.tableName)
}

func TestProdutoRepo_InsertAndUpdateSQL(t *testing.T) {
	repo := newTestRepo(&fakeQuerier{})
	p := produto.New("123", "Leite Integral")

	ins, err := repo.insertQuery(p)
	require.NoError(t, err)
	sql, args, err := ins.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO produto (code,name) VALUES ($1,$2)", sql)
	assert.Equal(t, []any{"123", "Leite Integral"}, args)

	upd, err := repo.updateQuery(p)
	require.NoError(t, err)
	sql, args, err = upd.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE produto SET name = $1 WHERE code = $2", sql)
	assert.Equal(t, []any{"Leite Integral", "123"}, args)
}

func TestProdutoRepo_GetByCode(t *testing.T) {
	q := &fakeQuerier{rows: [][]string{{"123", "Leite Integral"}}}
	repo := newTestRepo(q)

	p, err := repo.GetByCode(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Leite Integral", p.Name)
	assert.Equal(t, "SELECT code, name FROM produto WHERE code = $1 LIMIT 1", q.calls[0].sql)

	_, err = newTestRepo(&fakeQuerier{}).GetByCode(context.Background(), "999")
	assert.True(t, apperror.IsNotFound(err))
}

func TestProdutoRepo_FindMatching(t *testing.T) {
	q := &fakeQuerier{}
	repo := newTestRepo(q)
	criteria := search.BuildCriteria(search.ByCode, "100", search.SortSpec{})

	_, err := repo.FindMatching(context.Background(), "101", criteria)
	assert.True(t, apperror.IsNotFound(err))

	require.Len(t, q.calls, 1)
	assert.Equal(t, "SELECT code, name FROM produto WHERE code = $1 AND code LIKE $2 LIMIT 1", q.calls[0].sql)
	assert.Equal(t, []any{"101", "100%"}, q.calls[0].args)
}

func TestProdutoRepo_CreateDuplicate(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: postgres.UniqueViolation, ConstraintName: "produto_pkey"}}
	repo := newTestRepo(q)

	err := repo.Create(context.Background(), produto.New("123", "Leite"))
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestProdutoRepo_UpdateMissingRow(t *testing.T) {
	repo := newTestRepo(&fakeQuerier{affected: 0})
	err := repo.Update(context.Background(), produto.New("999", "Nada"))
	assert.True(t, apperror.IsNotFound(err))

	repo = newTestRepo(&fakeQuerier{affected: 1})
	assert.NoError(t, repo.Update(context.Background(), produto.New("123", "Leite")))
}

func TestProdutoRepo_Delete(t *testing.T) {
	q := &fakeQuerier{affected: 1}
	existed, err := newTestRepo(q).Delete(context.Background(), "123")
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, "DELETE FROM produto WHERE code = $1", q.calls[0].sql)

	existed, err = newTestRepo(&fakeQuerier{affected: 0}).Delete(context.Background(), "123")
	require.NoError(t, err)
	assert.False(t, existed)
}
