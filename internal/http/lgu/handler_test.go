package lgu_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	lguhttp "github.com/MrJamesThe3rd/openaudit/internal/http/lgu"
	"github.com/MrJamesThe3rd/openaudit/internal/lgu"
	"github.com/MrJamesThe3rd/openaudit/internal/page"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

func newRouter(repo *lgu.MockRepository, txs *lgu.MockTransactionLister) http.Handler {
	r := chi.NewRouter()
	r.Route("/lgus", lguhttp.NewHandler(lgu.NewService(repo, txs)).Routes)

	return r
}

func TestHandler(t *testing.T) {
	type testCase struct {
		name       string
		path       string
		setupMock  func(r *lgu.MockRepository, tl *lgu.MockTransactionLister)
		wantStatus int
		verify     func(t *testing.T, body []byte)
	}

	province := "ProvX"

	tests := []testCase{
		{
			name: "List",
			path: "/lgus?province=ProvX&skip=5&limit=2",
			setupMock: func(r *lgu.MockRepository, _ *lgu.MockTransactionLister) {
				r.EXPECT().ListLGUs(gomock.Any(), lgu.ListFilter{Province: &province, Page: page.Page{Skip: 5, Limit: 2}}).
					Return([]*lgu.LGU{{ID: 1, Name: "Town A", Province: &province}}, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				var got []map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 1)
				assert.Equal(t, "Town A", got[0]["name"])
				assert.Equal(t, "ProvX", got[0]["province"])
				assert.Nil(t, got[0]["lgu_type"])
			},
		},
		{
			name:       "ListBadLimit",
			path:       "/lgus?limit=-3",
			setupMock:  func(*lgu.MockRepository, *lgu.MockTransactionLister) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Provinces",
			path: "/lgus/provinces",
			setupMock: func(r *lgu.MockRepository, _ *lgu.MockTransactionLister) {
				r.EXPECT().ListProvinces(gomock.Any()).Return([]string{"Cebu", "Iloilo"}, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `["Cebu","Iloilo"]`, string(body))
			},
		},
		{
			name:       "SearchTooShort",
			path:       "/lgus/search/by-name?name=a",
			setupMock:  func(*lgu.MockRepository, *lgu.MockTransactionLister) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Search",
			path: "/lgus/search/by-name?name=town",
			setupMock: func(r *lgu.MockRepository, _ *lgu.MockTransactionLister) {
				r.EXPECT().SearchByName(gomock.Any(), "town", lgu.MaxSearchResults).
					Return([]*lgu.LGU{{ID: 1, Name: "Town A"}, {ID: 2, Name: "Town B"}}, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				var got []map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Len(t, got, 2)
			},
		},
		{
			name: "DetailNotFound",
			path: "/lgus/99",
			setupMock: func(r *lgu.MockRepository, _ *lgu.MockTransactionLister) {
				r.EXPECT().GetLGU(gomock.Any(), int64(99)).Return(nil, lgu.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "DetailBadID",
			path:       "/lgus/abc",
			setupMock:  func(*lgu.MockRepository, *lgu.MockTransactionLister) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Detail",
			path: "/lgus/1",
			setupMock: func(r *lgu.MockRepository, tl *lgu.MockTransactionLister) {
				r.EXPECT().GetLGU(gomock.Any(), int64(1)).Return(&lgu.LGU{ID: 1, Name: "Town A", Province: &province}, nil)
				tl.EXPECT().ListByLGU(gomock.Any(), int64(1)).Return([]*transaction.Transaction{
					{ID: 1, LGUID: 1, Year: 2020, Amount: decimal.RequireFromString("50000")},
					{ID: 2, LGUID: 1, Year: 2021, Amount: decimal.RequireFromString("75000.25")},
				}, nil)
				r.EXPECT().ListReports(gomock.Any(), int64(1)).Return([]*lgu.Report{}, nil)
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, body []byte) {
				var got struct {
					LGU               map[string]any   `json:"lgu"`
					TotalUnliquidated float64          `json:"total_unliquidated"`
					YearsWithData     []int            `json:"years_with_data"`
					Distribution      []map[string]any `json:"distribution"`
					Transactions      []map[string]any `json:"transactions"`
					Reports           []map[string]any `json:"reports"`
				}
				require.NoError(t, json.Unmarshal(body, &got))

				assert.Equal(t, "Town A", got.LGU["name"])
				assert.InDelta(t, 125000.25, got.TotalUnliquidated, 0.001)
				assert.Equal(t, []int{2020, 2021}, got.YearsWithData)
				assert.Len(t, got.Transactions, 2)
				assert.NotNil(t, got.Reports)
				require.Len(t, got.Distribution, 6)
				assert.Equal(t, "0-100K", got.Distribution[0]["range"])
				assert.InDelta(t, 0, got.Distribution[0]["min"], 0)
				assert.InDelta(t, 2, got.Distribution[0]["count"], 0)
				assert.Nil(t, got.Distribution[5]["max"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := lgu.NewMockRepository(ctrl)
			txs := lgu.NewMockTransactionLister(ctrl)
			tt.setupMock(repo, txs)

			rec := httptest.NewRecorder()
			newRouter(repo, txs).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.verify != nil {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				tt.verify(t, rec.Body.Bytes())
			}
		})
	}
}
