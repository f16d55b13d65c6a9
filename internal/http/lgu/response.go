package lgu

import (
	"time"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/lgu"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

type lguResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Province  *string   `json:"province"`
	Region    *string   `json:"region"`
	LGUType   *string   `json:"lgu_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type transactionResponse struct {
	ID          int64     `json:"id"`
	LGUID       int64     `json:"lgu_id"`
	ReportID    *int64    `json:"report_id"`
	Year        int       `json:"year"`
	Amount      float64   `json:"amount"`
	ContextPre  *string   `json:"context_pre"`
	ContextPost *string   `json:"context_post"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type reportResponse struct {
	ID           int64     `json:"id"`
	LGUID        int64     `json:"lgu_id"`
	Year         int       `json:"year"`
	ReportType   string    `json:"report_type"`
	FilePath     *string   `json:"file_path"`
	RawText      *string   `json:"raw_text"`
	FindingsText *string   `json:"findings_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type bucketResponse struct {
	Range string   `json:"range"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Count int64    `json:"count"`
}

type detailResponse struct {
	LGU               lguResponse           `json:"lgu"`
	TotalUnliquidated float64               `json:"total_unliquidated"`
	YearsWithData     []int                 `json:"years_with_data"`
	Distribution      []bucketResponse      `json:"distribution"`
	Transactions      []transactionResponse `json:"transactions"`
	Reports           []reportResponse      `json:"reports"`
}

func toLGUResponse(l *lgu.LGU) lguResponse {
	return lguResponse{
		ID:        l.ID,
		Name:      l.Name,
		Province:  l.Province,
		Region:    l.Region,
		LGUType:   l.Type,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLGUResponseList(lgus []*lgu.LGU) []lguResponse {
	resp := make([]lguResponse, len(lgus))
	for i, l := range lgus {
		resp[i] = toLGUResponse(l)
	}

	return resp
}

func toBucketResponse(c analytics.BucketCount) bucketResponse {
	resp := bucketResponse{Range: c.Label, Count: c.Count}

	if c.Min != nil {
		resp.Min = c.Min.InexactFloat64()
	}

	if c.Max != nil {
		resp.Max = new(c.Max.InexactFloat64())
	}

	return resp
}

func toDetailResponse(d *lgu.Detail) detailResponse {
	resp := detailResponse{
		LGU:               toLGUResponse(d.LGU),
		TotalUnliquidated: d.TotalUnliquidated.InexactFloat64(),
		YearsWithData:     d.YearsWithData,
		Distribution:      make([]bucketResponse, len(d.Distribution)),
		Transactions:      make([]transactionResponse, len(d.Transactions)),
		Reports:           make([]reportResponse, len(d.Reports)),
	}

	for i, c := range d.Distribution {
		resp.Distribution[i] = toBucketResponse(c)
	}

	for i, tx := range d.Transactions {
		resp.Transactions[i] = toTransactionResponse(tx)
	}

	for i, r := range d.Reports {
		resp.Reports[i] = reportResponse{
			ID:           r.ID,
			LGUID:        r.LGUID,
			Year:         r.Year,
			ReportType:   r.Type,
			FilePath:     r.FilePath,
			RawText:      r.RawText,
			FindingsText: r.FindingsText,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		}
	}

	return resp
}

func toTransactionResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		LGUID:       tx.LGUID,
		ReportID:    tx.ReportID,
		Year:        tx.Year,
		Amount:      tx.Amount.InexactFloat64(),
		ContextPre:  tx.ContextPre,
		ContextPost: tx.ContextPost,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
