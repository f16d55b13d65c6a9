package transaction

import (
	"time"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

type lguResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Province *string `json:"province"`
	Region   *string `json:"region"`
	LGUType  *string `json:"lgu_type"`
}

type transactionResponse struct {
	ID          int64        `json:"id"`
	LGUID       int64        `json:"lgu_id"`
	ReportID    *int64       `json:"report_id"`
	Year        int          `json:"year"`
	Amount      float64      `json:"amount"`
	ContextPre  *string      `json:"context_pre"`
	ContextPost *string      `json:"context_post"`
	LGU         *lguResponse `json:"lgu,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type yearTotalResponse struct {
	Year        int     `json:"year"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
}

type provinceTotalResponse struct {
	Province    *string `json:"province"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
}

type topLGUResponse struct {
	LGUID            int64   `json:"lgu_id"`
	LGUName          string  `json:"lgu_name"`
	Province         *string `json:"province"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int64   `json:"transaction_count"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
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

	if tx.LGU != nil {
		resp.LGU = &lguResponse{
			ID:       tx.LGU.ID,
			Name:     tx.LGU.Name,
			Province: tx.LGU.Province,
			Region:   tx.LGU.Region,
			LGUType:  tx.LGU.Type,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toYearTotals(totals []analytics.YearTotal) []yearTotalResponse {
	resp := make([]yearTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = yearTotalResponse{Year: t.Year, TotalAmount: t.Total.InexactFloat64(), Count: t.Count}
	}

	return resp
}

func toProvinceTotals(totals []analytics.ProvinceTotal) []provinceTotalResponse {
	resp := make([]provinceTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = provinceTotalResponse{Province: t.Province, TotalAmount: t.Total.InexactFloat64(), Count: t.Count}
	}

	return resp
}

func toTopLGUs(totals []analytics.LGUTotal) []topLGUResponse {
	resp := make([]topLGUResponse, len(totals))
	for i, t := range totals {
		resp[i] = topLGUResponse{
			LGUID:            t.LGUID,
			LGUName:          t.Name,
			Province:         t.Province,
			TotalAmount:      t.Total.InexactFloat64(),
			TransactionCount: t.TransactionCount,
		}
	}

	return resp
}
