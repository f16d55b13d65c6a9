package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row joined with its LGU.
// Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var lgu transaction.LGU

	if err := s.Scan(
		&tx.ID, &tx.LGUID, &tx.ReportID, &tx.Year, &tx.Amount, &tx.ContextPre, &tx.ContextPost,
		&tx.CreatedAt, &tx.UpdatedAt,
		&lgu.ID, &lgu.Name, &lgu.Province, &lgu.Region, &lgu.Type,
	); err != nil {
		return nil, err
	}

	tx.LGU = &lgu

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.lgu_id, t.report_id, t.year, t.amount, t.context_pre, t.context_post,
	t.created_at, t.updated_at,
	l.id, l.name, l.province, l.region, l.lgu_type
`

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM unliquidated_transactions t
		JOIN local_governments l ON t.lgu_id = l.id
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Year != nil {
		query += fmt.Sprintf(" AND t.year = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	if filter.Province != nil {
		query += fmt.Sprintf(" AND l.province = $%d", argIdx)

		args = append(args, *filter.Province)
		argIdx++
	}

	if filter.MinAmount != nil {
		query += fmt.Sprintf(" AND t.amount >= $%d", argIdx)

		args = append(args, *filter.MinAmount)
		argIdx++
	}

	if filter.MaxAmount != nil {
		query += fmt.Sprintf(" AND t.amount <= $%d", argIdx)

		args = append(args, *filter.MaxAmount)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY t.id ASC OFFSET $%d LIMIT $%d", argIdx, argIdx+1)

	args = append(args, filter.Page.Skip, filter.Page.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*transaction.Transaction, 0)

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) ListYears(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT year FROM unliquidated_transactions ORDER BY year ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing years: %w", err)
	}
	defer rows.Close()

	years := make([]int, 0)

	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scanning year: %w", err)
		}

		years = append(years, y)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating years: %w", err)
	}

	return years, nil
}

// ListByLGU returns every transaction owned by lguID in insertion order.
func (s *Store) ListByLGU(ctx context.Context, lguID int64) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM unliquidated_transactions t
		JOIN local_governments l ON t.lgu_id = l.id
		WHERE t.lgu_id = $1
		ORDER BY t.id ASC`

	rows, err := s.db.QueryContext(ctx, query, lguID)
	if err != nil {
		return nil, fmt.Errorf("listing lgu transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*transaction.Transaction, 0)

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lgu transactions: %w", err)
	}

	return txs, nil
}
