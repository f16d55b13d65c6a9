package topic

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/page"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=topic
type Repository interface {
	ListTopics(ctx context.Context, p page.Page) ([]*Topic, error)
	GetTopic(ctx context.Context, id int64) (*Topic, error)
	// ListProportions returns one entry per report tagged with the topic.
	// Entries are nil where the proportion was never recorded.
	ListProportions(ctx context.Context, topicID int64) ([]*decimal.Decimal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, p page.Page) ([]*Topic, error) {
	return s.repo.ListTopics(ctx, p.Normalize())
}

func (s *Service) Get(ctx context.Context, id int64) (*Topic, error) {
	return s.repo.GetTopic(ctx, id)
}

// Analysis averages the topic's proportion over every report tagged with it.
// Missing proportions count as zero.
func (s *Service) Analysis(ctx context.Context, id int64) (*Analysis, error) {
	t, err := s.repo.GetTopic(ctx, id)
	if err != nil {
		return nil, err
	}

	proportions, err := s.repo.ListProportions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list proportions: %w", err)
	}

	a := &Analysis{Topic: t, ReportCount: int64(len(proportions))}
	if len(proportions) == 0 {
		return a, nil
	}

	sum := decimal.Zero
	for _, p := range proportions {
		if p != nil {
			sum = sum.Add(*p)
		}
	}

	avg := sum.Div(decimal.NewFromInt(a.ReportCount))
	a.AverageProportion = &avg

	return a, nil
}
