package analysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/openaudit/internal/analysis"
	"github.com/MrJamesThe3rd/openaudit/internal/page"
)

func ptr[T any](v T) *T {
	return &v
}

func TestService_Analyze(t *testing.T) {
	type testCase struct {
		name           string
		req            analysis.Request
		hasCredentials bool
		setupMock      func(r *analysis.MockRepository, p *analysis.MockProvider)
		verify         func(t *testing.T, a *analysis.Analysis)
		wantErr        error
	}

	tests := []testCase{
		{
			name:           "NoTarget",
			req:            analysis.Request{Type: "summary"},
			hasCredentials: true,
			setupMock:      func(*analysis.MockRepository, *analysis.MockProvider) {},
			wantErr:        analysis.ErrTargetRequired,
		},
		{
			name:           "TargetCheckedBeforeCredentials",
			req:            analysis.Request{Type: "summary"},
			hasCredentials: false,
			setupMock:      func(*analysis.MockRepository, *analysis.MockProvider) {},
			wantErr:        analysis.ErrTargetRequired,
		},
		{
			name:           "NoCredentials",
			req:            analysis.Request{LGUID: ptr(int64(1)), Type: "summary"},
			hasCredentials: false,
			setupMock:      func(*analysis.MockRepository, *analysis.MockProvider) {},
			wantErr:        analysis.ErrProviderUnavailable,
		},
		{
			name:           "ReportNotFound",
			req:            analysis.Request{ReportID: ptr(int64(9)), Type: "summary"},
			hasCredentials: true,
			setupMock: func(r *analysis.MockRepository, _ *analysis.MockProvider) {
				r.EXPECT().GetReportText(gomock.Any(), int64(9)).Return(nil, analysis.ErrReportNotFound)
			},
			wantErr: analysis.ErrReportNotFound,
		},
		{
			name:           "LGUNotFound",
			req:            analysis.Request{LGUID: ptr(int64(4)), Type: "summary"},
			hasCredentials: true,
			setupMock: func(r *analysis.MockRepository, _ *analysis.MockProvider) {
				r.EXPECT().GetLGUSummary(gomock.Any(), int64(4)).Return(nil, analysis.ErrLGUNotFound)
			},
			wantErr: analysis.ErrLGUNotFound,
		},
		{
			name:           "ReportUsesFindingsText",
			req:            analysis.Request{ReportID: ptr(int64(9)), Type: "risk"},
			hasCredentials: true,
			setupMock: func(r *analysis.MockRepository, p *analysis.MockProvider) {
				r.EXPECT().GetReportText(gomock.Any(), int64(9)).
					Return(&analysis.ReportText{ID: 9, Findings: ptr("cash advances not liquidated"), Raw: ptr("raw")}, nil)
				p.EXPECT().Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pr analysis.Prompt) (string, error) {
						assert.Equal(t, "cash advances not liquidated", pr.Context)
						assert.Equal(t, analysis.DefaultModel, pr.Model)
						return "ok", nil
					})
				r.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *analysis.Analysis) error {
						a.ID = 11
						return nil
					})
			},
			verify: func(t *testing.T, a *analysis.Analysis) {
				assert.Equal(t, int64(11), a.ID)
				assert.Equal(t, "ok", a.Response)
				assert.Equal(t, analysis.DefaultModel, *a.Model)
				assert.Equal(t, "Analyze the following audit data for risk:\n\ncash advances not liquidated", *a.Prompt)
				assert.Nil(t, a.LGUID)
			},
		},
		{
			name:           "ReportFallsBackToRawText",
			req:            analysis.Request{ReportID: ptr(int64(9)), Type: "risk", Model: "gpt-4o"},
			hasCredentials: true,
			setupMock: func(r *analysis.MockRepository, p *analysis.MockProvider) {
				r.EXPECT().GetReportText(gomock.Any(), int64(9)).
					Return(&analysis.ReportText{ID: 9, Raw: ptr("raw text")}, nil)
				p.EXPECT().Generate(gomock.Any(), analysis.Prompt{
					Type:    "risk",
					Model:   "gpt-4o",
					Text:    "Analyze the following audit data for risk:\n\nraw text",
					Context: "raw text",
				}).Return("ok", nil)
				r.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, a *analysis.Analysis) {
				assert.Equal(t, "gpt-4o", *a.Model)
			},
		},
		{
			name: "LGUContextAndCustomPrompt",
			req: analysis.Request{
				LGUID: ptr(int64(4)), Type: "trend", CustomPrompt: ptr("Summarise the balances."),
			},
			hasCredentials: true,
			setupMock: func(r *analysis.MockRepository, p *analysis.MockProvider) {
				r.EXPECT().GetLGUSummary(gomock.Any(), int64(4)).Return(&analysis.LGUSummary{
					ID: 4, Name: "Town A", Province: ptr("ProvX"), TransactionCount: 2,
					Total: decimal.RequireFromString("125000"),
				}, nil)
				p.EXPECT().Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pr analysis.Prompt) (string, error) {
						assert.Equal(t, "Summarise the balances.", pr.Text)
						assert.Contains(t, pr.Context, "LGU: Town A, Province: ProvX")
						assert.Contains(t, pr.Context, "Total unliquidated transactions: 2")
						assert.Contains(t, pr.Context, "Total amount: 125000.00")
						return "ok", nil
					})
				r.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, a *analysis.Analysis) {
				assert.Equal(t, "Summarise the balances.", *a.Prompt)
				assert.Equal(t, int64(4), *a.LGUID)
			},
		},
		{
			name:           "ProviderError",
			req:            analysis.Request{ReportID: ptr(int64(9)), Type: "risk"},
			hasCredentials: true,
			setupMock: func(r *analysis.MockRepository, p *analysis.MockProvider) {
				r.EXPECT().GetReportText(gomock.Any(), int64(9)).Return(&analysis.ReportText{ID: 9}, nil)
				p.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))
			},
			wantErr: errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := analysis.NewMockRepository(ctrl)
			provider := analysis.NewMockProvider(ctrl)
			tt.setupMock(repo, provider)

			got, err := analysis.NewService(repo, provider, tt.hasCredentials).Analyze(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)
				assert.Contains(t, err.Error(), tt.wantErr.Error())

				return
			}

			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestPlaceholderProvider(t *testing.T) {
	got, err := analysis.PlaceholderProvider{}.Generate(context.Background(), analysis.Prompt{
		Type:    "risk",
		Model:   "claude-sonnet-4",
		Context: "ñandu",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "[LLM Analysis Placeholder - Integration ready for claude-sonnet-4]"))
	assert.Contains(t, got, "Analysis Type: risk\n")
	assert.Contains(t, got, "Context length: 5 characters")
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lguID := int64(3)
	repo := analysis.NewMockRepository(ctrl)
	repo.EXPECT().ListAnalyses(gomock.Any(), analysis.ListFilter{
		LGUID: &lguID,
		Page:  page.Page{Limit: page.DefaultLimit},
	}).Return([]*analysis.Analysis{{ID: 2}, {ID: 1}}, nil)

	got, err := analysis.NewService(repo, analysis.PlaceholderProvider{}, true).
		List(context.Background(), analysis.ListFilter{LGUID: &lguID})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := analysis.NewMockRepository(ctrl)
	repo.EXPECT().GetAnalysis(gomock.Any(), int64(99)).Return(nil, analysis.ErrNotFound)

	_, err := analysis.NewService(repo, analysis.PlaceholderProvider{}, true).Get(context.Background(), 99)
	assert.ErrorIs(t, err, analysis.ErrNotFound)
}
