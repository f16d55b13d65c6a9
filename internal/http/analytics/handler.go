package analytics

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/export"
	"github.com/MrJamesThe3rd/openaudit/internal/http/param"
	"github.com/MrJamesThe3rd/openaudit/internal/http/render"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc    *analytics.Service
	export *export.Service
}

func NewHandler(svc *analytics.Service, export *export.Service) *Handler {
	return &Handler{svc: svc, export: export}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/stats", h.stats)
	r.Get("/trends/yearly", h.yearlyTrends)
	r.Get("/distribution/amount-ranges", h.amountRanges)
	r.Get("/heatmap/province-year", h.heatmap)
	r.Get("/export", h.exportWorkbook)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Stats(r.Context())
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toStatsResponse(s))
}

func (h *Handler) yearlyTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.svc.YearlyTrends(r.Context())
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toTrendResponses(trends))
}

func (h *Handler) amountRanges(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.AmountDistribution(r.Context())
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toBucketResponses(counts))
}

func (h *Handler) heatmap(w http.ResponseWriter, r *http.Request) {
	include, err := param.Bool(r, "include_unassigned")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cells, err := h.svc.Heatmap(r.Context(), analytics.HeatmapOptions{IncludeUnassigned: include})
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toHeatmapResponses(cells))
}

// exportWorkbook renders into memory first so a failure can still be reported
// with a proper status.
func (h *Handler) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	opts := export.Options{}

	var err error

	if opts.Year, err = param.OptionalInt(r, "year"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := param.OptionalInt(r, "limit")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if limit != nil {
		opts.TopLimit = *limit
	}

	if opts.IncludeUnassigned, err = param.Bool(r, "include_unassigned"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := h.export.Write(r.Context(), &buf, opts); err != nil {
		render.InternalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"openaudit_%s.xlsx\"", time.Now().Format("20060102")))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write workbook", "error", err)
	}
}
