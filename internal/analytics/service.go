package analytics

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTopLimit = 20
	MaxTopLimit     = 100
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=analytics
type Repository interface {
	CountLGUs(ctx context.Context) (int64, error)
	CountReports(ctx context.Context) (int64, error)
	SumAmounts(ctx context.Context) (decimal.Decimal, error)
	ListYears(ctx context.Context) ([]int, error)
	CountProvinces(ctx context.Context) (int64, error)

	GroupByYear(ctx context.Context) ([]YearGroup, error)
	CountByBucket(ctx context.Context, buckets []Bucket) ([]int64, error)
	GroupByProvinceYear(ctx context.Context, includeUnassigned bool) ([]HeatmapCell, error)
	GroupByLGU(ctx context.Context, year *int) ([]LGUTotal, error)
	GroupByProvince(ctx context.Context, filter ProvinceFilter) ([]ProvinceTotal, error)
}

// Service computes read-only aggregates over the store. Sums and means stay
// in decimal; conversion to float happens only when responses are encoded.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Stats runs the independent summary queries concurrently.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountLGUs(gctx)
		if err != nil {
			return fmt.Errorf("count lgus: %w", err)
		}

		stats.TotalLGUs = n

		return nil
	})

	g.Go(func() error {
		n, err := s.repo.CountReports(gctx)
		if err != nil {
			return fmt.Errorf("count reports: %w", err)
		}

		stats.TotalReports = n

		return nil
	})

	g.Go(func() error {
		total, err := s.repo.SumAmounts(gctx)
		if err != nil {
			return fmt.Errorf("sum amounts: %w", err)
		}

		stats.TotalUnliquidated = total

		return nil
	})

	g.Go(func() error {
		years, err := s.repo.ListYears(gctx)
		if err != nil {
			return fmt.Errorf("list years: %w", err)
		}

		slices.Sort(years)
		stats.YearsCovered = slices.Compact(years)

		return nil
	})

	g.Go(func() error {
		n, err := s.repo.CountProvinces(gctx)
		if err != nil {
			return fmt.Errorf("count provinces: %w", err)
		}

		stats.ProvincesCount = n

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats.YearsCovered == nil {
		stats.YearsCovered = []int{}
	}

	return &stats, nil
}

// YearlyTrends returns per-year totals, means and counts, ascending by year.
func (s *Service) YearlyTrends(ctx context.Context) ([]YearTrend, error) {
	groups, err := s.repo.GroupByYear(ctx)
	if err != nil {
		return nil, fmt.Errorf("group by year: %w", err)
	}

	slices.SortFunc(groups, func(a, b YearGroup) int { return cmp.Compare(a.Year, b.Year) })

	trends := make([]YearTrend, len(groups))
	for i, g := range groups {
		trends[i] = YearTrend{YearGroup: g, Average: mean(g.Total, g.TransactionCount)}
	}

	return trends, nil
}

// ByYear returns per-year totals and counts, ascending by year.
func (s *Service) ByYear(ctx context.Context) ([]YearTotal, error) {
	groups, err := s.repo.GroupByYear(ctx)
	if err != nil {
		return nil, fmt.Errorf("group by year: %w", err)
	}

	slices.SortFunc(groups, func(a, b YearGroup) int { return cmp.Compare(a.Year, b.Year) })

	totals := make([]YearTotal, len(groups))
	for i, g := range groups {
		totals[i] = YearTotal{Year: g.Year, Total: g.Total, Count: g.TransactionCount}
	}

	return totals, nil
}

// AmountDistribution counts transactions per fixed bucket. Buckets without
// matches are reported with a zero count.
func (s *Service) AmountDistribution(ctx context.Context) ([]BucketCount, error) {
	counts, err := s.repo.CountByBucket(ctx, Buckets)
	if err != nil {
		return nil, fmt.Errorf("count by bucket: %w", err)
	}

	if len(counts) != len(Buckets) {
		return nil, fmt.Errorf("count by bucket: got %d counts for %d buckets", len(counts), len(Buckets))
	}

	return withCounts(counts), nil
}

// Heatmap returns the province x year totals ordered by province, then year.
// Rows without a province sort last.
func (s *Service) Heatmap(ctx context.Context, opts HeatmapOptions) ([]HeatmapCell, error) {
	cells, err := s.repo.GroupByProvinceYear(ctx, opts.IncludeUnassigned)
	if err != nil {
		return nil, fmt.Errorf("group by province and year: %w", err)
	}

	if !opts.IncludeUnassigned {
		cells = slices.DeleteFunc(cells, func(c HeatmapCell) bool { return c.Province == nil })
	}

	slices.SortFunc(cells, func(a, b HeatmapCell) int {
		if c := compareProvince(a.Province, b.Province); c != 0 {
			return c
		}

		return cmp.Compare(a.Year, b.Year)
	})

	return cells, nil
}

// TopLGUs ranks LGUs by summed amount, descending. Equal totals fall back
// to ascending LGU id so repeated calls return the same order.
func (s *Service) TopLGUs(ctx context.Context, filter TopFilter) ([]LGUTotal, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	limit = min(limit, MaxTopLimit)

	totals, err := s.repo.GroupByLGU(ctx, filter.Year)
	if err != nil {
		return nil, fmt.Errorf("group by lgu: %w", err)
	}

	slices.SortFunc(totals, func(a, b LGUTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}

		return cmp.Compare(a.LGUID, b.LGUID)
	})

	if len(totals) > limit {
		totals = totals[:limit]
	}

	return totals, nil
}

// ByProvince ranks provinces by summed amount, descending, ties broken by
// province name. The unassigned group, when requested, sorts after named
// provinces of equal total.
func (s *Service) ByProvince(ctx context.Context, filter ProvinceFilter) ([]ProvinceTotal, error) {
	totals, err := s.repo.GroupByProvince(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("group by province: %w", err)
	}

	if !filter.IncludeUnassigned {
		totals = slices.DeleteFunc(totals, func(p ProvinceTotal) bool { return p.Province == nil })
	}

	slices.SortFunc(totals, func(a, b ProvinceTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}

		return compareProvince(a.Province, b.Province)
	})

	return totals, nil
}

func mean(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return total.Div(decimal.NewFromInt(count))
}

// compareProvince orders named provinces alphabetically with nil last.
func compareProvince(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	return cmp.Compare(*a, *b)
}
