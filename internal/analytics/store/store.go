package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) countOne(ctx context.Context, query, what string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", what, err)
	}

	return n, nil
}

func (s *Store) CountLGUs(ctx context.Context) (int64, error) {
	return s.countOne(ctx, `SELECT COUNT(*) FROM local_governments`, "lgus")
}

func (s *Store) CountReports(ctx context.Context) (int64, error) {
	return s.countOne(ctx, `SELECT COUNT(*) FROM audit_reports`, "reports")
}

func (s *Store) CountProvinces(ctx context.Context) (int64, error) {
	return s.countOne(ctx, `SELECT COUNT(DISTINCT province) FROM local_governments`, "provinces")
}

func (s *Store) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM unliquidated_transactions`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing amounts: %w", err)
	}

	return total, nil
}

func (s *Store) ListYears(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT year FROM unliquidated_transactions ORDER BY year`)
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

func (s *Store) GroupByYear(ctx context.Context) ([]analytics.YearGroup, error) {
	query := `
		SELECT year, SUM(amount), COUNT(id), COUNT(DISTINCT lgu_id)
		FROM unliquidated_transactions
		GROUP BY year
		ORDER BY year`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("grouping by year: %w", err)
	}
	defer rows.Close()

	groups := make([]analytics.YearGroup, 0)

	for rows.Next() {
		var g analytics.YearGroup
		if err := rows.Scan(&g.Year, &g.Total, &g.TransactionCount, &g.LGUCount); err != nil {
			return nil, fmt.Errorf("scanning year group: %w", err)
		}

		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating year groups: %w", err)
	}

	return groups, nil
}

// CountByBucket counts every bucket in a single pass using aggregate FILTER
// clauses, one output column per bucket in input order.
func (s *Store) CountByBucket(ctx context.Context, buckets []analytics.Bucket) ([]int64, error) {
	if len(buckets) == 0 {
		return nil, nil
	}

	cols := make([]string, 0, len(buckets))

	var args []any

	for _, b := range buckets {
		var conds []string

		if b.Min != nil {
			args = append(args, *b.Min)
			conds = append(conds, fmt.Sprintf("amount >= $%d", len(args)))
		}

		if b.Max != nil {
			args = append(args, *b.Max)
			conds = append(conds, fmt.Sprintf("amount < $%d", len(args)))
		}

		if len(conds) == 0 {
			cols = append(cols, "COUNT(*)")
			continue
		}

		cols = append(cols, "COUNT(*) FILTER (WHERE "+strings.Join(conds, " AND ")+")")
	}

	query := `SELECT ` + strings.Join(cols, ", ") + ` FROM unliquidated_transactions`

	counts := make([]int64, len(buckets))

	dest := make([]any, len(buckets))
	for i := range counts {
		dest[i] = &counts[i]
	}

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		return nil, fmt.Errorf("counting by bucket: %w", err)
	}

	return counts, nil
}

func (s *Store) GroupByProvinceYear(ctx context.Context, includeUnassigned bool) ([]analytics.HeatmapCell, error) {
	query := `
		SELECT l.province, t.year, SUM(t.amount)
		FROM local_governments l
		JOIN unliquidated_transactions t ON t.lgu_id = l.id`

	if !includeUnassigned {
		query += ` WHERE l.province IS NOT NULL`
	}

	query += ` GROUP BY l.province, t.year`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("grouping by province and year: %w", err)
	}
	defer rows.Close()

	cells := make([]analytics.HeatmapCell, 0)

	for rows.Next() {
		var c analytics.HeatmapCell
		if err := rows.Scan(&c.Province, &c.Year, &c.Total); err != nil {
			return nil, fmt.Errorf("scanning heatmap cell: %w", err)
		}

		cells = append(cells, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating heatmap cells: %w", err)
	}

	return cells, nil
}

func (s *Store) GroupByLGU(ctx context.Context, year *int) ([]analytics.LGUTotal, error) {
	query := `
		SELECT l.id, l.name, l.province, SUM(t.amount), COUNT(t.id)
		FROM local_governments l
		JOIN unliquidated_transactions t ON t.lgu_id = l.id`

	var args []any

	if year != nil {
		query += ` WHERE t.year = $1`

		args = append(args, *year)
	}

	query += ` GROUP BY l.id, l.name, l.province`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("grouping by lgu: %w", err)
	}
	defer rows.Close()

	totals := make([]analytics.LGUTotal, 0)

	for rows.Next() {
		var lt analytics.LGUTotal
		if err := rows.Scan(&lt.LGUID, &lt.Name, &lt.Province, &lt.Total, &lt.TransactionCount); err != nil {
			return nil, fmt.Errorf("scanning lgu total: %w", err)
		}

		totals = append(totals, lt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lgu totals: %w", err)
	}

	return totals, nil
}

func (s *Store) GroupByProvince(ctx context.Context, filter analytics.ProvinceFilter) ([]analytics.ProvinceTotal, error) {
	query := `
		SELECT l.province, SUM(t.amount), COUNT(t.id)
		FROM local_governments l
		JOIN unliquidated_transactions t ON t.lgu_id = l.id
		WHERE TRUE`

	var args []any

	if filter.Year != nil {
		args = append(args, *filter.Year)
		query += fmt.Sprintf(" AND t.year = $%d", len(args))
	}

	if !filter.IncludeUnassigned {
		query += ` AND l.province IS NOT NULL`
	}

	query += ` GROUP BY l.province`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("grouping by province: %w", err)
	}
	defer rows.Close()

	totals := make([]analytics.ProvinceTotal, 0)

	for rows.Next() {
		var pt analytics.ProvinceTotal
		if err := rows.Scan(&pt.Province, &pt.Total, &pt.Count); err != nil {
			return nil, fmt.Errorf("scanning province total: %w", err)
		}

		totals = append(totals, pt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating province totals: %w", err)
	}

	return totals, nil
}
