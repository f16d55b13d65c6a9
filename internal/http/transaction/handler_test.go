package transaction_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	transactionhttp "github.com/MrJamesThe3rd/openaudit/internal/http/transaction"
	"github.com/MrJamesThe3rd/openaudit/internal/page"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

func TestHandler(t *testing.T) {
	type testCase struct {
		name       string
		path       string
		setupMock  func(tr *transaction.MockRepository, ar *analytics.MockRepository)
		wantStatus int
		verify     func(t *testing.T, body []byte)
	}

	provX := "ProvX"
	provY := "ProvY"

	manyLGUs := make([]analytics.LGUTotal, 150)
	for i := range manyLGUs {
		manyLGUs[i] = analytics.LGUTotal{
			LGUID: int64(i + 1),
			Name:  fmt.Sprintf("Town %d", i+1),
			Total: decimal.NewFromInt(int64(1000 + i)),
		}
	}

	tests := []testCase{
		{
			name: "ListFilters",
			path: "/transactions?year=2021&province=ProvX&min_amount=1000&max_amount=100000",
			setupMock: func(tr *transaction.MockRepository, _ *analytics.MockRepository) {
				year := 2021
				minAmount := decimal.RequireFromString("1000")
				maxAmount := decimal.RequireFromString("100000")

				tr.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, f transaction.ListFilter) ([]*transaction.Transaction, error) {
						assert.Equal(t, &year, f.Year)
						assert.Equal(t, &provX, f.Province)
						assert.True(t, f.MinAmount.Equal(minAmount))
						assert.True(t, f.MaxAmount.Equal(maxAmount))
						assert.Equal(t, page.Page{Skip: 0, Limit: page.DefaultLimit}, f.Page)

						return []*transaction.Transaction{
							{ID: 7, LGUID: 1, Year: 2021, Amount: decimal.RequireFromString("75000.50")},
						}, nil
					})
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				var got []map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 1)
				assert.InDelta(t, 75000.50, got[0]["amount"], 0.001)
				assert.Nil(t, got[0]["context_pre"])
			},
		},
		{
			name:       "ListMinAboveMax",
			path:       "/transactions?min_amount=5000&max_amount=10",
			setupMock:  func(*transaction.MockRepository, *analytics.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ListBadAmount",
			path:       "/transactions?min_amount=lots",
			setupMock:  func(*transaction.MockRepository, *analytics.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Years",
			path: "/transactions/years",
			setupMock: func(tr *transaction.MockRepository, _ *analytics.MockRepository) {
				tr.EXPECT().ListYears(gomock.Any()).Return([]int{2020, 2021}, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[2020, 2021]`, string(body))
			},
		},
		{
			name: "ByYear",
			path: "/transactions/aggregate/by-year",
			setupMock: func(_ *transaction.MockRepository, ar *analytics.MockRepository) {
				ar.EXPECT().GroupByYear(gomock.Any()).Return([]analytics.YearGroup{
					{Year: 2021, Total: decimal.RequireFromString("475000"), TransactionCount: 2},
					{Year: 2020, Total: decimal.RequireFromString("50000"), TransactionCount: 1},
				}, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[
					{"year": 2020, "total_amount": 50000, "count": 1},
					{"year": 2021, "total_amount": 475000, "count": 2}
				]`, string(body))
			},
		},
		{
			name: "ByProvince",
			path: "/transactions/aggregate/by-province?year=2021",
			setupMock: func(_ *transaction.MockRepository, ar *analytics.MockRepository) {
				year := 2021
				ar.EXPECT().GroupByProvince(gomock.Any(), analytics.ProvinceFilter{Year: &year}).
					Return([]analytics.ProvinceTotal{
						{Province: &provX, Total: decimal.RequireFromString("75000"), Count: 1},
						{Province: &provY, Total: decimal.RequireFromString("400000"), Count: 1},
						{Province: nil, Total: decimal.RequireFromString("999999"), Count: 3},
					}, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `[
					{"province": "ProvY", "total_amount": 400000, "count": 1},
					{"province": "ProvX", "total_amount": 75000, "count": 1}
				]`, string(body))
			},
		},
		{
			name: "TopLGUsCapped",
			path: "/transactions/top-lgus?limit=500",
			setupMock: func(_ *transaction.MockRepository, ar *analytics.MockRepository) {
				ar.EXPECT().GroupByLGU(gomock.Any(), nil).Return(manyLGUs, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				var got []map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, analytics.MaxTopLimit)
				assert.Equal(t, "Town 150", got[0]["lgu_name"])
			},
		},
		{
			name:       "TopLGUsZeroLimit",
			path:       "/transactions/top-lgus?limit=0",
			setupMock:  func(*transaction.MockRepository, *analytics.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txRepo := transaction.NewMockRepository(ctrl)
			anRepo := analytics.NewMockRepository(ctrl)
			tt.setupMock(txRepo, anRepo)

			r := chi.NewRouter()
			r.Route("/transactions", transactionhttp.NewHandler(
				transaction.NewService(txRepo), analytics.NewService(anRepo),
			).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.verify != nil {
				tt.verify(t, rec.Body.Bytes())
			}
		})
	}
}
