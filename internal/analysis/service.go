package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=analysis
type Repository interface {
	GetReportText(ctx context.Context, reportID int64) (*ReportText, error)
	GetLGUSummary(ctx context.Context, lguID int64) (*LGUSummary, error)
	CreateAnalysis(ctx context.Context, a *Analysis) error
	ListAnalyses(ctx context.Context, filter ListFilter) ([]*Analysis, error)
	GetAnalysis(ctx context.Context, id int64) (*Analysis, error)
}

type Service struct {
	repo           Repository
	provider       Provider
	hasCredentials bool
}

// NewService builds the analysis service. hasCredentials reports whether any
// provider API key is configured; without one Analyze refuses to run.
func NewService(repo Repository, provider Provider, hasCredentials bool) *Service {
	return &Service{repo: repo, provider: provider, hasCredentials: hasCredentials}
}

func (s *Service) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	if req.ReportID == nil && req.LGUID == nil {
		return nil, ErrTargetRequired
	}

	if !s.hasCredentials {
		return nil, ErrProviderUnavailable
	}

	if req.Model == "" {
		req.Model = DefaultModel
	}

	contextText, err := s.buildContext(ctx, req)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Analyze the following audit data for %s:\n\n%s", req.Type, contextText)
	if req.CustomPrompt != nil && strings.TrimSpace(*req.CustomPrompt) != "" {
		prompt = *req.CustomPrompt
	}

	response, err := s.provider.Generate(ctx, Prompt{
		Type:    req.Type,
		Model:   req.Model,
		Text:    prompt,
		Context: contextText,
	})
	if err != nil {
		return nil, fmt.Errorf("generate analysis: %w", err)
	}

	model := req.Model
	a := &Analysis{
		ReportID: req.ReportID,
		LGUID:    req.LGUID,
		Type:     req.Type,
		Prompt:   &prompt,
		Response: response,
		Model:    &model,
	}

	if err := s.repo.CreateAnalysis(ctx, a); err != nil {
		return nil, fmt.Errorf("create analysis: %w", err)
	}

	slog.Info("analysis stored", "id", a.ID, "type", a.Type, "model", model)

	return a, nil
}

func (s *Service) buildContext(ctx context.Context, req Request) (string, error) {
	if req.ReportID != nil {
		r, err := s.repo.GetReportText(ctx, *req.ReportID)
		if err != nil {
			return "", err
		}

		switch {
		case r.Findings != nil && *r.Findings != "":
			return *r.Findings, nil
		case r.Raw != nil:
			return *r.Raw, nil
		default:
			return "", nil
		}
	}

	sum, err := s.repo.GetLGUSummary(ctx, *req.LGUID)
	if err != nil {
		return "", err
	}

	province := "None"
	if sum.Province != nil {
		province = *sum.Province
	}

	var b strings.Builder

	fmt.Fprintf(&b, "LGU: %s, Province: %s\n\n", sum.Name, province)
	fmt.Fprintf(&b, "Total unliquidated transactions: %d\n", sum.TransactionCount)
	fmt.Fprintf(&b, "Total amount: %s\n\n", sum.Total.StringFixed(2))

	return b.String(), nil
}

// List returns analyses newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Analysis, error) {
	filter.Page = filter.Page.Normalize()
	return s.repo.ListAnalyses(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (*Analysis, error) {
	return s.repo.GetAnalysis(ctx, id)
}

