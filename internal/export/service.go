package export

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
)

// Sheet names of the analytics workbook, in order.
const (
	SheetStats        = "Stats"
	SheetTrends       = "Yearly Trends"
	SheetDistribution = "Amount Distribution"
	SheetHeatmap      = "Province-Year"
	SheetTopLGUs      = "Top LGUs"
)

const unassignedLabel = "(unassigned)"

//go:generate mockgen -source=service.go -destination=analytics_mock.go -package=export
type Analytics interface {
	Stats(ctx context.Context) (*analytics.Stats, error)
	YearlyTrends(ctx context.Context) ([]analytics.YearTrend, error)
	AmountDistribution(ctx context.Context) ([]analytics.BucketCount, error)
	Heatmap(ctx context.Context, opts analytics.HeatmapOptions) ([]analytics.HeatmapCell, error)
	TopLGUs(ctx context.Context, filter analytics.TopFilter) ([]analytics.LGUTotal, error)
}

// Options shape the workbook contents.
type Options struct {
	TopLimit          int
	Year              *int
	IncludeUnassigned bool
}

// Service renders analytics outputs as an XLSX workbook.
type Service struct {
	analytics Analytics
}

func NewService(a Analytics) *Service {
	return &Service{analytics: a}
}

type snapshot struct {
	stats        *analytics.Stats
	trends       []analytics.YearTrend
	distribution []analytics.BucketCount
	heatmap      []analytics.HeatmapCell
	top          []analytics.LGUTotal
}

func (s *Service) collect(ctx context.Context, opts Options) (*snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.stats, err = s.analytics.Stats(gctx)
		return err
	})

	g.Go(func() (err error) {
		snap.trends, err = s.analytics.YearlyTrends(gctx)
		return err
	})

	g.Go(func() (err error) {
		snap.distribution, err = s.analytics.AmountDistribution(gctx)
		return err
	})

	g.Go(func() (err error) {
		snap.heatmap, err = s.analytics.Heatmap(gctx, analytics.HeatmapOptions{IncludeUnassigned: opts.IncludeUnassigned})
		return err
	})

	g.Go(func() (err error) {
		snap.top, err = s.analytics.TopLGUs(gctx, analytics.TopFilter{Limit: opts.TopLimit, Year: opts.Year})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Write collects every analytics output and writes the workbook to w.
func (s *Service) Write(ctx context.Context, w io.Writer, opts Options) error {
	snap, err := s.collect(ctx, opts)
	if err != nil {
		return fmt.Errorf("collecting analytics: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	b := &builder{f: f}

	if err := f.SetSheetName("Sheet1", SheetStats); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	b.init()
	b.stats(snap.stats)
	b.trends(snap.trends)
	b.distribution(snap.distribution)
	b.heatmap(snap.heatmap)
	b.top(snap.top)

	if b.err != nil {
		return fmt.Errorf("building workbook: %w", b.err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

// builder writes sheets and keeps the first error, so the sheet functions
// read as straight-line code.
type builder struct {
	f      *excelize.File
	err    error
	header int
	money  int
}

func (b *builder) init() {
	if b.err != nil {
		return
	}

	b.header, b.err = b.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if b.err != nil {
		return
	}

	// Built-in format 4 is "#,##0.00".
	b.money, b.err = b.f.NewStyle(&excelize.Style{NumFmt: 4})
}

func (b *builder) sheet(name string) {
	if b.err != nil || name == SheetStats {
		return
	}

	_, b.err = b.f.NewSheet(name)
}

func (b *builder) row(sheet string, n int, values ...any) {
	if b.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		b.err = err
		return
	}

	b.err = b.f.SetSheetRow(sheet, cell, &values)
}

func (b *builder) headerRow(sheet string, values ...any) {
	b.row(sheet, 1, values...)

	if b.err != nil {
		return
	}

	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil {
		b.err = err
		return
	}

	b.err = b.f.SetCellStyle(sheet, "A1", last, b.header)
}

func (b *builder) moneyCols(sheet string, cols ...string) {
	for _, col := range cols {
		if b.err != nil {
			return
		}

		b.err = b.f.SetColStyle(sheet, col, b.money)
	}
}

func (b *builder) stats(st *analytics.Stats) {
	b.sheet(SheetStats)
	b.headerRow(SheetStats, "Metric", "Value")
	b.row(SheetStats, 2, "Total LGUs", st.TotalLGUs)
	b.row(SheetStats, 3, "Total reports", st.TotalReports)
	b.row(SheetStats, 4, "Total unliquidated", st.TotalUnliquidated.InexactFloat64())
	b.row(SheetStats, 5, "Provinces", st.ProvincesCount)

	years := ""
	for i, y := range st.YearsCovered {
		if i > 0 {
			years += ", "
		}

		years += fmt.Sprint(y)
	}

	b.row(SheetStats, 6, "Years covered", years)

	if b.err == nil {
		b.err = b.f.SetCellStyle(SheetStats, "B4", "B4", b.money)
	}
}

func (b *builder) trends(trends []analytics.YearTrend) {
	b.sheet(SheetTrends)
	b.headerRow(SheetTrends, "Year", "Total", "Average", "Transactions", "LGUs")

	for i, t := range trends {
		b.row(SheetTrends, i+2, t.Year, t.Total.InexactFloat64(), t.Average.InexactFloat64(), t.TransactionCount, t.LGUCount)
	}

	b.moneyCols(SheetTrends, "B", "C")
}

func (b *builder) distribution(counts []analytics.BucketCount) {
	b.sheet(SheetDistribution)
	b.headerRow(SheetDistribution, "Range", "Transactions")

	for i, c := range counts {
		b.row(SheetDistribution, i+2, c.Label, c.Count)
	}
}

// heatmap pivots the cells into one row per province and one column per year.
func (b *builder) heatmap(cells []analytics.HeatmapCell) {
	b.sheet(SheetHeatmap)

	var (
		years     []int
		provinces []*string
		totals    = make(map[string]map[int]float64)
	)

	for _, c := range cells {
		label := unassignedLabel
		if c.Province != nil {
			label = *c.Province
		}

		if _, ok := totals[label]; !ok {
			totals[label] = make(map[int]float64)
			provinces = append(provinces, c.Province)
		}

		totals[label][c.Year] += c.Total.InexactFloat64()

		if !slices.Contains(years, c.Year) {
			years = append(years, c.Year)
		}
	}

	slices.Sort(years)

	header := []any{"Province"}
	for _, y := range years {
		header = append(header, y)
	}

	b.headerRow(SheetHeatmap, header...)

	for i, p := range provinces {
		label := unassignedLabel
		if p != nil {
			label = *p
		}

		values := []any{label}

		for _, y := range years {
			if v, ok := totals[label][y]; ok {
				values = append(values, v)
			} else {
				values = append(values, nil)
			}
		}

		b.row(SheetHeatmap, i+2, values...)
	}

	for i := range years {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			b.err = err
			return
		}

		b.moneyCols(SheetHeatmap, col)
	}
}

func (b *builder) top(totals []analytics.LGUTotal) {
	b.sheet(SheetTopLGUs)
	b.headerRow(SheetTopLGUs, "Rank", "LGU ID", "LGU", "Province", "Total", "Transactions")

	for i, t := range totals {
		province := ""
		if t.Province != nil {
			province = *t.Province
		}

		b.row(SheetTopLGUs, i+2, i+1, t.LGUID, t.Name, province, t.Total.InexactFloat64(), t.TransactionCount)
	}

	b.moneyCols(SheetTopLGUs, "E")
}
