package lgu_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/openaudit/internal/lgu"
	"github.com/MrJamesThe3rd/openaudit/internal/page"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	province := "Iloilo"
	repo := lgu.NewMockRepository(ctrl)
	repo.EXPECT().
		ListLGUs(gomock.Any(), lgu.ListFilter{Province: &province, Page: page.Page{Skip: 0, Limit: page.MaxLimit}}).
		Return([]*lgu.LGU{{ID: 1, Name: "Oton"}}, nil)

	svc := lgu.NewService(repo, lgu.NewMockTransactionLister(ctrl))

	got, err := svc.List(context.Background(), lgu.ListFilter{Province: &province, Page: page.Page{Skip: -1, Limit: 99999}})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Detail(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(r *lgu.MockRepository, tl *lgu.MockTransactionLister)
		verify    func(t *testing.T, d *lgu.Detail)
		wantErr   error
	}

	province := "ProvX"

	tests := []testCase{
		{
			name: "AggregatesInProcess",
			setupMock: func(r *lgu.MockRepository, tl *lgu.MockTransactionLister) {
				r.EXPECT().GetLGU(gomock.Any(), int64(1)).Return(&lgu.LGU{ID: 1, Name: "Town A", Province: &province}, nil)
				tl.EXPECT().ListByLGU(gomock.Any(), int64(1)).Return([]*transaction.Transaction{
					{ID: 10, LGUID: 1, Year: 2021, Amount: decimal.RequireFromString("75000")},
					{ID: 11, LGUID: 1, Year: 2020, Amount: decimal.RequireFromString("50000")},
					{ID: 12, LGUID: 1, Year: 2021, Amount: decimal.RequireFromString("100000")},
				}, nil)
				r.EXPECT().ListReports(gomock.Any(), int64(1)).Return([]*lgu.Report{{ID: 3, LGUID: 1, Year: 2021}}, nil)
			},
			verify: func(t *testing.T, d *lgu.Detail) {
				assert.Equal(t, "Town A", d.LGU.Name)
				assert.True(t, d.TotalUnliquidated.Equal(decimal.RequireFromString("225000")))
				assert.Equal(t, []int{2020, 2021}, d.YearsWithData)
				assert.Len(t, d.Transactions, 3)
				assert.Len(t, d.Reports, 1)

				assert.Equal(t, "0-100K", d.Distribution[0].Label)
				assert.Equal(t, int64(2), d.Distribution[0].Count)
				assert.Equal(t, "100K-500K", d.Distribution[1].Label)
				assert.Equal(t, int64(1), d.Distribution[1].Count)
			},
		},
		{
			name: "NoTransactions",
			setupMock: func(r *lgu.MockRepository, tl *lgu.MockTransactionLister) {
				r.EXPECT().GetLGU(gomock.Any(), int64(1)).Return(&lgu.LGU{ID: 1}, nil)
				tl.EXPECT().ListByLGU(gomock.Any(), int64(1)).Return([]*transaction.Transaction{}, nil)
				r.EXPECT().ListReports(gomock.Any(), int64(1)).Return([]*lgu.Report{}, nil)
			},
			verify: func(t *testing.T, d *lgu.Detail) {
				assert.True(t, d.TotalUnliquidated.IsZero())
				assert.Empty(t, d.YearsWithData)
				assert.NotNil(t, d.YearsWithData)
			},
		},
		{
			name: "NotFound",
			setupMock: func(r *lgu.MockRepository, _ *lgu.MockTransactionLister) {
				r.EXPECT().GetLGU(gomock.Any(), int64(1)).Return(nil, lgu.ErrNotFound)
			},
			wantErr: lgu.ErrNotFound,
		},
		{
			name: "TransactionError",
			setupMock: func(r *lgu.MockRepository, tl *lgu.MockTransactionLister) {
				r.EXPECT().GetLGU(gomock.Any(), int64(1)).Return(&lgu.LGU{ID: 1}, nil)
				tl.EXPECT().ListByLGU(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := lgu.NewMockRepository(ctrl)
			txs := lgu.NewMockTransactionLister(ctrl)
			tt.setupMock(repo, txs)

			got, err := lgu.NewService(repo, txs).Detail(context.Background(), 1)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, lgu.ErrNotFound) {
					assert.ErrorIs(t, err, lgu.ErrNotFound)
				}

				return
			}

			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestService_Search(t *testing.T) {
	type testCase struct {
		name      string
		query     string
		setupMock func(r *lgu.MockRepository)
		wantLen   int
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "TooShort",
			query:   "a",
			wantErr: lgu.ErrQueryTooShort,
		},
		{
			name:    "WhitespaceOnly",
			query:   "   ",
			wantErr: lgu.ErrQueryTooShort,
		},
		{
			name:  "TwoCharacters",
			query: "ba",
			setupMock: func(r *lgu.MockRepository) {
				r.EXPECT().SearchByName(gomock.Any(), "ba", lgu.MaxSearchResults).
					Return([]*lgu.LGU{{ID: 1, Name: "Bacolod"}, {ID: 2, Name: "Cabanatuan"}}, nil)
			},
			wantLen: 2,
		},
		{
			name:  "TrimsQuery",
			query: "  Iloilo ",
			setupMock: func(r *lgu.MockRepository) {
				r.EXPECT().SearchByName(gomock.Any(), "Iloilo", lgu.MaxSearchResults).
					Return([]*lgu.LGU{{ID: 3, Name: "Iloilo City"}}, nil)
			},
			wantLen: 1,
		},
		{
			name:  "MultibyteCountsRunes",
			query: "ñá",
			setupMock: func(r *lgu.MockRepository) {
				r.EXPECT().SearchByName(gomock.Any(), "ñá", lgu.MaxSearchResults).Return([]*lgu.LGU{}, nil)
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := lgu.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := lgu.NewService(repo, lgu.NewMockTransactionLister(ctrl)).Search(context.Background(), tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.LessOrEqual(t, len(got), lgu.MaxSearchResults)
		})
	}
}

func TestService_Provinces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := lgu.NewMockRepository(ctrl)
	repo.EXPECT().ListProvinces(gomock.Any()).Return([]string{"Abra", "Cebu"}, nil)

	got, err := lgu.NewService(repo, lgu.NewMockTransactionLister(ctrl)).Provinces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Abra,Cebu", strings.Join(got, ","))
}
