package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/openaudit/internal/analysis"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetReportText(ctx context.Context, reportID int64) (*analysis.ReportText, error) {
	query := `SELECT id, findings_text, raw_text FROM audit_reports WHERE id = $1`

	var r analysis.ReportText
	if err := s.db.QueryRowContext(ctx, query, reportID).Scan(&r.ID, &r.Findings, &r.Raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, analysis.ErrReportNotFound
		}

		return nil, fmt.Errorf("getting report text: %w", err)
	}

	return &r, nil
}

func (s *Store) GetLGUSummary(ctx context.Context, lguID int64) (*analysis.LGUSummary, error) {
	query := `
		SELECT l.id, l.name, l.province, COUNT(t.id), COALESCE(SUM(t.amount), 0)
		FROM local_governments l
		LEFT JOIN unliquidated_transactions t ON t.lgu_id = l.id
		WHERE l.id = $1
		GROUP BY l.id`

	var sum analysis.LGUSummary
	if err := s.db.QueryRowContext(ctx, query, lguID).Scan(
		&sum.ID, &sum.Name, &sum.Province, &sum.TransactionCount, &sum.Total,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, analysis.ErrLGUNotFound
		}

		return nil, fmt.Errorf("getting lgu summary: %w", err)
	}

	return &sum, nil
}

func (s *Store) CreateAnalysis(ctx context.Context, a *analysis.Analysis) error {
	query := `
		INSERT INTO llm_analysis (report_id, lgu_id, analysis_type, prompt, response, model_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	if err := s.db.QueryRowContext(ctx, query,
		a.ReportID, a.LGUID, a.Type, a.Prompt, a.Response, a.Model,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}

	return nil
}

const selectAnalysisColumns = `id, report_id, lgu_id, analysis_type, prompt, response, model_name, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(s scanner) (*analysis.Analysis, error) {
	var a analysis.Analysis
	if err := s.Scan(
		&a.ID, &a.ReportID, &a.LGUID, &a.Type, &a.Prompt, &a.Response, &a.Model, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Store) ListAnalyses(ctx context.Context, filter analysis.ListFilter) ([]*analysis.Analysis, error) {
	query := `SELECT ` + selectAnalysisColumns + ` FROM llm_analysis WHERE 1=1`

	var args []any

	if filter.LGUID != nil {
		args = append(args, *filter.LGUID)
		query += fmt.Sprintf(" AND lgu_id = $%d", len(args))
	}

	if filter.ReportID != nil {
		args = append(args, *filter.ReportID)
		query += fmt.Sprintf(" AND report_id = $%d", len(args))
	}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(" AND analysis_type = $%d", len(args))
	}

	args = append(args, filter.Page.Skip, filter.Page.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC OFFSET $%d LIMIT $%d", len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]*analysis.Analysis, 0)

	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}

		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}

	return analyses, nil
}

func (s *Store) GetAnalysis(ctx context.Context, id int64) (*analysis.Analysis, error) {
	query := `SELECT ` + selectAnalysisColumns + ` FROM llm_analysis WHERE id = $1`

	a, err := scanAnalysis(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, analysis.ErrNotFound
		}

		return nil, fmt.Errorf("getting analysis: %w", err)
	}

	return a, nil
}
