package catalog_repo

import (
	"catalogodeleite/internal/domain/catalogs/produto"
	"catalogodeleite/internal/infrastructure/storage/postgres"
)

const produtoTable = "produto"

// ProdutoSchema creates the product table when it does not exist yet.
// code is the primary key; pattern ops keep the prefix LIKE on code indexable.
const ProdutoSchema = `
CREATE TABLE IF NOT EXISTS produto (
	code TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS produto_code_pattern_idx ON produto (code text_pattern_ops);
`

// ProdutoRepo implements produto.Repository.
type ProdutoRepo struct {
	*BaseCatalogRepo[*produto.Produto]
}

var _ produto.Repository = (*ProdutoRepo)(nil)

// NewProdutoRepo creates a new product repository.
func NewProdutoRepo(txm *postgres.TxManager) *ProdutoRepo {
	return &ProdutoRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			produtoTable,
			postgres.ExtractDBColumns[produto.Produto](),
			func() *produto.Produto { return &produto.Produto{} },
		),
	}
}
