package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/openaudit/internal/lgu"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectLGUColumns = `id, name, province, region, lgu_type, created_at, updated_at`

func scanLGU(s scanner) (*lgu.LGU, error) {
	var l lgu.LGU
	if err := s.Scan(&l.ID, &l.Name, &l.Province, &l.Region, &l.Type, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}

	return &l, nil
}

func collectLGUs(rows *sql.Rows) ([]*lgu.LGU, error) {
	defer rows.Close()

	lgus := make([]*lgu.LGU, 0)

	for rows.Next() {
		l, err := scanLGU(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lgu: %w", err)
		}

		lgus = append(lgus, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lgus: %w", err)
	}

	return lgus, nil
}

func (s *Store) ListLGUs(ctx context.Context, filter lgu.ListFilter) ([]*lgu.LGU, error) {
	query := `SELECT ` + selectLGUColumns + ` FROM local_governments`

	var args []any

	if filter.Province != nil {
		args = append(args, *filter.Province)
		query += fmt.Sprintf(" WHERE province = $%d", len(args))
	}

	args = append(args, filter.Page.Skip, filter.Page.Limit)
	query += fmt.Sprintf(" ORDER BY id ASC OFFSET $%d LIMIT $%d", len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing lgus: %w", err)
	}

	return collectLGUs(rows)
}

func (s *Store) ListProvinces(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT province
		FROM local_governments
		WHERE province IS NOT NULL AND province <> ''
		ORDER BY province`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing provinces: %w", err)
	}
	defer rows.Close()

	provinces := make([]string, 0)

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning province: %w", err)
		}

		provinces = append(provinces, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating provinces: %w", err)
	}

	return provinces, nil
}

func (s *Store) GetLGU(ctx context.Context, id int64) (*lgu.LGU, error) {
	query := `SELECT ` + selectLGUColumns + ` FROM local_governments WHERE id = $1`

	l, err := scanLGU(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lgu.ErrNotFound
		}

		return nil, fmt.Errorf("getting lgu: %w", err)
	}

	return l, nil
}

func (s *Store) ListReports(ctx context.Context, lguID int64) ([]*lgu.Report, error) {
	query := `
		SELECT id, lgu_id, year, report_type, file_path, raw_text, findings_text, created_at, updated_at
		FROM audit_reports
		WHERE lgu_id = $1
		ORDER BY year ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, lguID)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*lgu.Report, 0)

	for rows.Next() {
		var r lgu.Report
		if err := rows.Scan(
			&r.ID, &r.LGUID, &r.Year, &r.Type, &r.FilePath, &r.RawText, &r.FindingsText,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}

		reports = append(reports, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}

// SearchByName matches name as a case-insensitive substring. LIKE
// metacharacters in the query are matched literally.
func (s *Store) SearchByName(ctx context.Context, query string, limit int) ([]*lgu.LGU, error) {
	sqlQuery := `SELECT ` + selectLGUColumns + `
		FROM local_governments
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY id ASC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, sqlQuery, escapeLike(query), limit)
	if err != nil {
		return nil, fmt.Errorf("searching lgus: %w", err)
	}

	return collectLGUs(rows)
}
