package analytics_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/export"
	analyticshttp "github.com/MrJamesThe3rd/openaudit/internal/http/analytics"
)

func newRouter(repo *analytics.MockRepository) http.Handler {
	svc := analytics.NewService(repo)

	r := chi.NewRouter()
	r.Route("/analytics", analyticshttp.NewHandler(svc, export.NewService(svc)).Routes)

	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().CountLGUs(gomock.Any()).Return(int64(2), nil)
	repo.EXPECT().CountReports(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().SumAmounts(gomock.Any()).Return(decimal.RequireFromString("525000"), nil)
	repo.EXPECT().ListYears(gomock.Any()).Return([]int{2021, 2020}, nil)
	repo.EXPECT().CountProvinces(gomock.Any()).Return(int64(2), nil)

	rec := get(t, newRouter(repo), "/analytics/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{
		"total_lgus": 2,
		"total_reports": 0,
		"total_unliquidated_amount": 525000,
		"years_covered": [2020, 2021],
		"provinces_count": 2
	}`, rec.Body.String())
}

func TestHandler_StatsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().CountLGUs(gomock.Any()).Return(int64(0), errors.New("db down")).AnyTimes()
	repo.EXPECT().CountReports(gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().SumAmounts(gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
	repo.EXPECT().ListYears(gomock.Any()).Return([]int{}, nil).AnyTimes()
	repo.EXPECT().CountProvinces(gomock.Any()).Return(int64(0), nil).AnyTimes()

	rec := get(t, newRouter(repo), "/analytics/stats")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestHandler_YearlyTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().GroupByYear(gomock.Any()).Return([]analytics.YearGroup{
		{Year: 2021, Total: decimal.RequireFromString("475000"), TransactionCount: 2, LGUCount: 2},
		{Year: 2020, Total: decimal.RequireFromString("50000"), TransactionCount: 1, LGUCount: 1},
	}, nil)

	rec := get(t, newRouter(repo), "/analytics/trends/yearly")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `[
		{"year": 2020, "total_amount": 50000, "avg_amount": 50000, "transaction_count": 1, "lgus_count": 1},
		{"year": 2021, "total_amount": 475000, "avg_amount": 237500, "transaction_count": 2, "lgus_count": 2}
	]`, rec.Body.String())
}

func TestHandler_AmountRanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().CountByBucket(gomock.Any(), analytics.Buckets).Return([]int64{2, 1, 0, 0, 0, 0}, nil)

	rec := get(t, newRouter(repo), "/analytics/distribution/amount-ranges")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `[
		{"range": "0-100K", "min": 0, "max": 100000, "count": 2},
		{"range": "100K-500K", "min": 100000, "max": 500000, "count": 1},
		{"range": "500K-1M", "min": 500000, "max": 1000000, "count": 0},
		{"range": "1M-5M", "min": 1000000, "max": 5000000, "count": 0},
		{"range": "5M-10M", "min": 5000000, "max": 10000000, "count": 0},
		{"range": "10M+", "min": 10000000, "max": null, "count": 0}
	]`, rec.Body.String())
}

func TestHandler_Heatmap(t *testing.T) {
	provX := "ProvX"

	cells := []analytics.HeatmapCell{
		{Province: nil, Year: 2020, Total: decimal.RequireFromString("10")},
		{Province: &provX, Year: 2021, Total: decimal.RequireFromString("75000")},
	}

	tests := []struct {
		name       string
		query      string
		include    bool
		wantStatus int
		wantLen    int
	}{
		{name: "Default", query: "", include: false, wantStatus: http.StatusOK, wantLen: 1},
		{name: "IncludeUnassigned", query: "?include_unassigned=true", include: true, wantStatus: http.StatusOK, wantLen: 2},
		{name: "BadFlag", query: "?include_unassigned=maybe", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := analytics.NewMockRepository(ctrl)
			if tt.wantStatus == http.StatusOK {
				repo.EXPECT().GroupByProvinceYear(gomock.Any(), tt.include).Return(slicesClone(cells), nil)
			}

			rec := get(t, newRouter(repo), "/analytics/heatmap/province-year"+tt.query)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var got []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, "ProvX", got[0]["province"])
		})
	}
}

func TestHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provX := "ProvX"

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().CountLGUs(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().CountReports(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().SumAmounts(gomock.Any()).Return(decimal.RequireFromString("50000"), nil)
	repo.EXPECT().ListYears(gomock.Any()).Return([]int{2020}, nil)
	repo.EXPECT().CountProvinces(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().GroupByYear(gomock.Any()).Return([]analytics.YearGroup{
		{Year: 2020, Total: decimal.RequireFromString("50000"), TransactionCount: 1, LGUCount: 1},
	}, nil)
	repo.EXPECT().CountByBucket(gomock.Any(), analytics.Buckets).Return([]int64{1, 0, 0, 0, 0, 0}, nil)
	repo.EXPECT().GroupByProvinceYear(gomock.Any(), false).Return([]analytics.HeatmapCell{
		{Province: &provX, Year: 2020, Total: decimal.RequireFromString("50000")},
	}, nil)
	repo.EXPECT().GroupByLGU(gomock.Any(), nil).Return([]analytics.LGUTotal{
		{LGUID: 1, Name: "Town A", Province: &provX, Total: decimal.RequireFromString("50000"), TransactionCount: 1},
	}, nil)

	rec := get(t, newRouter(repo), "/analytics/export")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=\"openaudit_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, []string{
		export.SheetStats, export.SheetTrends, export.SheetDistribution, export.SheetHeatmap, export.SheetTopLGUs,
	}, f.GetSheetList())
}

func TestHandler_ExportBadYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := get(t, newRouter(analytics.NewMockRepository(ctrl)), "/analytics/export?year=twenty")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func slicesClone(cells []analytics.HeatmapCell) []analytics.HeatmapCell {
	return append([]analytics.HeatmapCell(nil), cells...)
}
