package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultBatchSize = 100

// TransactionParams is one transaction to insert.
type TransactionParams struct {
	LGUID       int64
	Year        int
	Amount      decimal.Decimal
	ContextPre  *string
	ContextPost *string
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ingest
type Repository interface {
	// Lock takes the exclusive ingestion lock. It returns ErrRunInProgress
	// when another run holds it.
	Lock(ctx context.Context) (Lock, error)
	Begin(ctx context.Context) (Batch, error)
}

type Lock interface {
	Release(ctx context.Context) error
}

// Batch is one unit of committed work.
type Batch interface {
	FindLGU(ctx context.Context, name string, province *string) (int64, bool, error)
	CreateLGU(ctx context.Context, name string, province *string) (int64, error)
	CreateTransaction(ctx context.Context, p TransactionParams) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo      Repository
	batchSize int
}

func NewService(repo Repository, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Service{repo: repo, batchSize: batchSize}
}

// Run ingests every record of src. Invalid records are skipped and counted.
// Transactions are committed every batchSize rows; on a store failure the
// pending batch is rolled back and the run stops, leaving earlier batches in
// place.
func (s *Service) Run(ctx context.Context, src RowSource) (*Summary, error) {
	lock, err := s.repo.Lock(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			slog.Error("failed to release ingestion lock", "error", err)
		}
	}()

	r := &run{
		svc:      s,
		summary:  &Summary{RunID: uuid.New()},
		resolver: newResolver(),
	}
	r.log = slog.With("run", r.summary.RunID)

	err = r.consume(ctx, src)
	if err == nil {
		err = r.commit()
	}

	r.summary.LGUs = r.resolver.size()
	r.summary.LGUsCreated = r.resolver.created

	if err != nil {
		r.abort()
		return r.summary, err
	}

	r.log.Info("ingestion complete",
		"rows", r.summary.Rows,
		"skipped", r.summary.Skipped,
		"lgus", r.summary.LGUs,
		"lgus_created", r.summary.LGUsCreated,
		"transactions", r.summary.Transactions,
		"batches", r.summary.Batches,
	)

	return r.summary, nil
}

// run holds the state of one ingestion pass.
type run struct {
	svc      *Service
	summary  *Summary
	resolver *resolver
	log      *slog.Logger

	batch   Batch
	pending int
}

func (r *run) consume(ctx context.Context, src RowSource) error {
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read row %d: %w", r.summary.Rows+1, err)
		}

		r.summary.Rows++

		row, reason := parseRecord(rec)
		if reason != "" {
			r.summary.Skipped++
			r.log.Debug("skipping row", "row", rec.Line, "reason", reason)

			continue
		}

		if err := r.write(ctx, row); err != nil {
			return fmt.Errorf("batch %d: %w", r.summary.Batches+1, err)
		}

		if r.pending >= r.svc.batchSize {
			if err := r.commit(); err != nil {
				return err
			}
		}
	}
}

func (r *run) write(ctx context.Context, row Row) error {
	if r.batch == nil {
		b, err := r.svc.repo.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}

		r.batch = b
	}

	lguID, err := r.resolver.resolve(ctx, r.batch, row.LGUName, row.Province)
	if err != nil {
		return err
	}

	if err := r.batch.CreateTransaction(ctx, TransactionParams{
		LGUID:       lguID,
		Year:        row.Year,
		Amount:      row.Amount,
		ContextPre:  row.ContextPre,
		ContextPost: row.ContextPost,
	}); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	r.pending++

	return nil
}

// commit flushes the pending batch, if any.
func (r *run) commit() error {
	if r.batch == nil {
		return nil
	}

	if err := r.batch.Commit(); err != nil {
		// A failed commit ends the transaction; there is nothing left to roll back.
		r.batch = nil
		r.pending = 0

		return fmt.Errorf("batch %d: commit: %w", r.summary.Batches+1, err)
	}

	r.summary.Batches++
	r.summary.Transactions += r.pending

	r.log.Info("batch committed",
		"batch", r.summary.Batches,
		"rows", r.summary.Rows,
		"transactions", r.summary.Transactions,
	)

	r.batch = nil
	r.pending = 0

	return nil
}

func (r *run) abort() {
	if r.batch == nil {
		return
	}

	if err := r.batch.Rollback(); err != nil {
		r.log.Error("failed to roll back batch", "batch", r.summary.Batches+1, "error", err)
	}

	r.batch = nil
	r.pending = 0
}
