package topic

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/openaudit/internal/http/param"
	"github.com/MrJamesThe3rd/openaudit/internal/http/render"
	"github.com/MrJamesThe3rd/openaudit/internal/topic"
)

type Handler struct {
	svc *topic.Service
}

func NewHandler(svc *topic.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/analysis", h.analysis)
}

type topicResponse struct {
	ID          int64     `json:"id"`
	TopicNumber int       `json:"topic_number"`
	Description string    `json:"description"`
	Terms       *string   `json:"terms"`
	Prevalence  *float64  `json:"prevalence"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type analysisResponse struct {
	Topic         topicResponse `json:"topic"`
	ReportCount   int64         `json:"report_count"`
	AvgProportion *float64      `json:"avg_proportion"`
}

func toResponse(t *topic.Topic) topicResponse {
	resp := topicResponse{
		ID:          t.ID,
		TopicNumber: t.Number,
		Description: t.Description,
		Terms:       t.Terms,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.Prevalence != nil {
		resp.Prevalence = new(t.Prevalence.InexactFloat64())
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, err := param.Page(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	topics, err := h.svc.List(r.Context(), p)
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	resp := make([]topicResponse, len(topics))
	for i, t := range topics {
		resp[i] = toResponse(t)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := param.ID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(t))
}

func (h *Handler) analysis(w http.ResponseWriter, r *http.Request) {
	id, err := param.ID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Analysis(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := analysisResponse{Topic: toResponse(a.Topic), ReportCount: a.ReportCount}
	if a.AverageProportion != nil {
		resp.AvgProportion = new(a.AverageProportion.InexactFloat64())
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, topic.ErrNotFound) {
		http.Error(w, "topic not found", http.StatusNotFound)
		return
	}

	render.InternalError(w, r, err)
}
