package analytics

import (
	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
)

type statsResponse struct {
	TotalLGUs               int64   `json:"total_lgus"`
	TotalReports            int64   `json:"total_reports"`
	TotalUnliquidatedAmount float64 `json:"total_unliquidated_amount"`
	YearsCovered            []int   `json:"years_covered"`
	ProvincesCount          int64   `json:"provinces_count"`
}

type trendResponse struct {
	Year             int     `json:"year"`
	TotalAmount      float64 `json:"total_amount"`
	AvgAmount        float64 `json:"avg_amount"`
	TransactionCount int64   `json:"transaction_count"`
	LGUsCount        int64   `json:"lgus_count"`
}

type bucketResponse struct {
	Range string   `json:"range"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Count int64    `json:"count"`
}

type heatmapResponse struct {
	Province    *string `json:"province"`
	Year        int     `json:"year"`
	TotalAmount float64 `json:"total_amount"`
}

func toStatsResponse(s *analytics.Stats) statsResponse {
	return statsResponse{
		TotalLGUs:               s.TotalLGUs,
		TotalReports:            s.TotalReports,
		TotalUnliquidatedAmount: s.TotalUnliquidated.InexactFloat64(),
		YearsCovered:            s.YearsCovered,
		ProvincesCount:          s.ProvincesCount,
	}
}

func toTrendResponses(trends []analytics.YearTrend) []trendResponse {
	resp := make([]trendResponse, len(trends))
	for i, t := range trends {
		resp[i] = trendResponse{
			Year:             t.Year,
			TotalAmount:      t.Total.InexactFloat64(),
			AvgAmount:        t.Average.InexactFloat64(),
			TransactionCount: t.TransactionCount,
			LGUsCount:        t.LGUCount,
		}
	}

	return resp
}

// toBucketResponses reports an unbounded lower edge as 0 and an unbounded
// upper edge as null.
func toBucketResponses(counts []analytics.BucketCount) []bucketResponse {
	resp := make([]bucketResponse, len(counts))
	for i, c := range counts {
		resp[i] = bucketResponse{Range: c.Label, Count: c.Count}

		if c.Min != nil {
			resp[i].Min = c.Min.InexactFloat64()
		}

		if c.Max != nil {
			resp[i].Max = new(c.Max.InexactFloat64())
		}
	}

	return resp
}

func toHeatmapResponses(cells []analytics.HeatmapCell) []heatmapResponse {
	resp := make([]heatmapResponse, len(cells))
	for i, c := range cells {
		resp[i] = heatmapResponse{Province: c.Province, Year: c.Year, TotalAmount: c.Total.InexactFloat64()}
	}

	return resp
}
