package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
)

// lockKey identifies the ingestion advisory lock.
const lockKey int64 = 0x0A0D17

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Lock takes a session advisory lock on a dedicated connection. The lock
// lives as long as that connection, so Release must run on the same one.
func (s *Store) Lock(ctx context.Context) (ingest.Lock, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}

	var ok bool
	if err := conn.QueryRowContext(ctx, `SELECT pg_try_advisory_lock($1)`, lockKey).Scan(&ok); err != nil {
		conn.Close()
		return nil, fmt.Errorf("taking advisory lock: %w", err)
	}

	if !ok {
		conn.Close()
		return nil, ingest.ErrRunInProgress
	}

	return &advisoryLock{conn: conn}, nil
}

type advisoryLock struct {
	conn *sql.Conn
}

func (l *advisoryLock) Release(ctx context.Context) error {
	defer l.conn.Close()

	if _, err := l.conn.ExecContext(ctx, `SELECT pg_advisory_unlock($1)`, lockKey); err != nil {
		return fmt.Errorf("releasing advisory lock: %w", err)
	}

	return nil
}

func (s *Store) Begin(ctx context.Context) (ingest.Batch, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &batch{tx: tx}, nil
}

type batch struct {
	tx *sql.Tx
}

func (b *batch) FindLGU(ctx context.Context, name string, province *string) (int64, bool, error) {
	query := `
		SELECT id FROM local_governments
		WHERE name = $1 AND province IS NOT DISTINCT FROM $2`

	var id int64
	if err := b.tx.QueryRowContext(ctx, query, name, province).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("finding lgu: %w", err)
	}

	return id, true, nil
}

func (b *batch) CreateLGU(ctx context.Context, name string, province *string) (int64, error) {
	query := `INSERT INTO local_governments (name, province) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := b.tx.QueryRowContext(ctx, query, name, province).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting lgu: %w", err)
	}

	return id, nil
}

func (b *batch) CreateTransaction(ctx context.Context, p ingest.TransactionParams) error {
	query := `
		INSERT INTO unliquidated_transactions (lgu_id, year, amount, context_pre, context_post)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := b.tx.ExecContext(ctx, query, p.LGUID, p.Year, p.Amount, p.ContextPre, p.ContextPost); err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	return nil
}

func (b *batch) Commit() error {
	return b.tx.Commit()
}

func (b *batch) Rollback() error {
	return b.tx.Rollback()
}
