package lgu

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/openaudit/internal/http/param"
	"github.com/MrJamesThe3rd/openaudit/internal/http/render"
	"github.com/MrJamesThe3rd/openaudit/internal/lgu"
)

type Handler struct {
	svc *lgu.Service
}

func NewHandler(svc *lgu.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/provinces", h.provinces)
	r.Get("/search/by-name", h.search)
	r.Get("/{id}", h.detail)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, err := param.Page(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lgus, err := h.svc.List(r.Context(), lgu.ListFilter{
		Province: param.OptionalString(r, "province"),
		Page:     p,
	})
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toLGUResponseList(lgus))
}

func (h *Handler) provinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.svc.Provinces(r.Context())
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, provinces)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	lgus, err := h.svc.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		if errors.Is(err, lgu.ErrQueryTooShort) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.InternalError(w, r, err)

		return
	}

	render.JSON(w, http.StatusOK, toLGUResponseList(lgus))
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	id, err := param.ID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, lgu.ErrNotFound) {
			http.Error(w, "LGU not found", http.StatusNotFound)
			return
		}

		render.InternalError(w, r, err)

		return
	}

	render.JSON(w, http.StatusOK, toDetailResponse(d))
}
