package lgu

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/page"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

const (
	MinSearchLength  = 2
	MaxSearchResults = 50
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lgu
type Repository interface {
	ListLGUs(ctx context.Context, filter ListFilter) ([]*LGU, error)
	ListProvinces(ctx context.Context) ([]string, error)
	GetLGU(ctx context.Context, id int64) (*LGU, error)
	ListReports(ctx context.Context, lguID int64) ([]*Report, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*LGU, error)
}

// TransactionLister loads every transaction owned by an LGU.
type TransactionLister interface {
	ListByLGU(ctx context.Context, lguID int64) ([]*transaction.Transaction, error)
}

type Service struct {
	repo Repository
	txs  TransactionLister
}

func NewService(repo Repository, txs TransactionLister) *Service {
	return &Service{repo: repo, txs: txs}
}

type ListFilter struct {
	Province *string
	Page     page.Page
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*LGU, error) {
	filter.Page = filter.Page.Normalize()
	return s.repo.ListLGUs(ctx, filter)
}

// Provinces returns the distinct non-null provinces.
func (s *Service) Provinces(ctx context.Context) ([]string, error) {
	return s.repo.ListProvinces(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*LGU, error) {
	return s.repo.GetLGU(ctx, id)
}

// Detail loads an LGU with its transactions and reports and aggregates
// the transactions in process.
func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	l, err := s.repo.GetLGU(ctx, id)
	if err != nil {
		return nil, err
	}

	txs, err := s.txs.ListByLGU(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	reports, err := s.repo.ListReports(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	amounts := make([]decimal.Decimal, len(txs))
	for i, tx := range txs {
		amounts[i] = tx.Amount
	}

	return &Detail{
		LGU:               l,
		TotalUnliquidated: transaction.Total(txs),
		YearsWithData:     transaction.Years(txs),
		Distribution:      analytics.Distribute(amounts),
		Transactions:      txs,
		Reports:           reports,
	}, nil
}

// Search matches LGU names case-insensitively by substring. Queries shorter
// than MinSearchLength characters are rejected.
func (s *Service) Search(ctx context.Context, name string) ([]*LGU, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinSearchLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrQueryTooShort, MinSearchLength)
	}

	return s.repo.SearchByName(ctx, name, MaxSearchResults)
}
