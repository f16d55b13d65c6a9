package transaction

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/http/param"
	"github.com/MrJamesThe3rd/openaudit/internal/http/render"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

type Handler struct {
	svc       *transaction.Service
	analytics *analytics.Service
}

func NewHandler(svc *transaction.Service, analytics *analytics.Service) *Handler {
	return &Handler{svc: svc, analytics: analytics}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/years", h.years)
	r.Get("/aggregate/by-year", h.byYear)
	r.Get("/aggregate/by-province", h.byProvince)
	r.Get("/top-lgus", h.topLGUs)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, err := param.Page(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := transaction.ListFilter{
		Province: param.OptionalString(r, "province"),
		Page:     p,
	}

	if filter.Year, err = param.OptionalInt(r, "year"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if filter.MinAmount, err = param.OptionalDecimal(r, "min_amount"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if filter.MaxAmount, err = param.OptionalDecimal(r, "max_amount"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidFilter) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.InternalError(w, r, err)

		return
	}

	render.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) years(w http.ResponseWriter, r *http.Request) {
	years, err := h.svc.Years(r.Context())
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, years)
}

func (h *Handler) byYear(w http.ResponseWriter, r *http.Request) {
	totals, err := h.analytics.ByYear(r.Context())
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toYearTotals(totals))
}

func (h *Handler) byProvince(w http.ResponseWriter, r *http.Request) {
	year, err := param.OptionalInt(r, "year")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	include, err := param.Bool(r, "include_unassigned")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	totals, err := h.analytics.ByProvince(r.Context(), analytics.ProvinceFilter{Year: year, IncludeUnassigned: include})
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toProvinceTotals(totals))
}

// topLGUs caps limit at analytics.MaxTopLimit rather than rejecting it.
func (h *Handler) topLGUs(w http.ResponseWriter, r *http.Request) {
	limit, err := param.OptionalInt(r, "limit")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	year, err := param.OptionalInt(r, "year")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := analytics.TopFilter{Year: year}
	if limit != nil {
		if *limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		filter.Limit = *limit
	}

	totals, err := h.analytics.TopLGUs(r.Context(), filter)
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toTopLGUs(totals))
}
