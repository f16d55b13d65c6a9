package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/page"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	ListYears(ctx context.Context) ([]int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFilter narrows a transaction listing. Nil fields are not applied.
// Amount bounds are inclusive on both ends.
type ListFilter struct {
	Year      *int
	Province  *string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Page      page.Page
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	if filter.MinAmount != nil && filter.MaxAmount != nil && filter.MinAmount.GreaterThan(*filter.MaxAmount) {
		return nil, fmt.Errorf("%w: min_amount %s exceeds max_amount %s",
			ErrInvalidFilter, filter.MinAmount, filter.MaxAmount)
	}

	filter.Page = filter.Page.Normalize()

	return s.repo.ListTransactions(ctx, filter)
}

// Years returns the distinct transaction years, ascending.
func (s *Service) Years(ctx context.Context) ([]int, error) {
	return s.repo.ListYears(ctx)
}
