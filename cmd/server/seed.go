package main

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/spf13/cobra"

	"catalogodeleite/internal/domain/catalogs/produto"
	"catalogodeleite/internal/infrastructure/storage/postgres"
	"catalogodeleite/internal/infrastructure/storage/postgres/catalog_repo"
	"catalogodeleite/pkg/logger"
)

// demoProdutos is a small dairy catalog for local development.
var demoProdutos = []*produto.Produto{
	produto.New("1001", "Leite Integral 1L"),
	produto.New("1002", "Leite Desnatado 1L"),
	produto.New("1003", "Leite Semidesnatado 1L"),
	produto.New("1010", "Leite em Pó Integral 400g"),
	produto.New("2001", "Queijo Minas Frescal"),
	produto.New("2002", "Queijo Prato Fatiado"),
	produto.New("2003", "Queijo Mussarela"),
	produto.New("3001", "Iogurte Natural"),
	produto.New("3002", "Iogurte de Morango"),
	produto.New("4001", "Manteiga com Sal"),
	produto.New("4002", "Requeijão Cremoso"),
	produto.New("5001", "Doce de Leite"),
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the product table and insert the demo catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfigAndLogger(opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, poolConfig(cfg.Database, cfg.App.Name+"-seed"))
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			inserted, err := seedProdutos(ctx, postgres.NewTxManager(pool, cfg.Database.StatementTimeout), demoProdutos)
			if err != nil {
				return err
			}

			log.Infow("seeding completed successfully",
				"inserted", inserted,
				"skipped", int64(len(demoProdutos))-inserted,
			)
			return nil
		},
	}
}

// seedInsertQuery inserts every product, leaving existing codes untouched.
func seedInsertQuery(items []*produto.Produto) sq.InsertBuilder {
	q := sq.Insert("produto").
		Columns("code", "name").
		Suffix("ON CONFLICT (code) DO NOTHING").
		PlaceholderFormat(sq.Dollar)
	for _, p := range items {
		q = q.Values(p.Code, p.Name)
	}
	return q
}

// seedProdutos ensures the schema and inserts items in one transaction.
// It returns how many rows were new.
func seedProdutos(ctx context.Context, txm *postgres.TxManager, items []*produto.Produto) (int64, error) {
	var inserted int64

	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := txm.GetQuerier(ctx)

		if _, err := q.Exec(ctx, catalog_repo.ProdutoSchema); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		if len(items) == 0 {
			return nil
		}

		sql, args, err := seedInsertQuery(items).ToSql()
		if err != nil {
			return fmt.Errorf("build seed insert: %w", err)
		}

		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
		inserted = tag.RowsAffected()

		logger.Debug(ctx, "seed insert executed", "rows", inserted)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
