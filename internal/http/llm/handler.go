package llm

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/openaudit/internal/analysis"
	"github.com/MrJamesThe3rd/openaudit/internal/http/param"
	"github.com/MrJamesThe3rd/openaudit/internal/http/render"
)

type Handler struct {
	svc      *analysis.Service
	validate *validator.Validate
}

func NewHandler(svc *analysis.Service) *Handler {
	return &Handler{svc: svc, validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(middleware.AllowContentType("application/json")).Post("/analyze", h.analyze)
	r.Get("/analyses", h.list)
	r.Get("/analyses/{id}", h.get)
}

type analyzeRequest struct {
	ReportID     *int64  `json:"report_id" validate:"omitempty,gt=0"`
	LGUID        *int64  `json:"lgu_id" validate:"omitempty,gt=0"`
	AnalysisType string  `json:"analysis_type" validate:"required,max=100"`
	CustomPrompt *string `json:"custom_prompt" validate:"omitempty,max=20000"`
	Model        string  `json:"model" validate:"omitempty,max=100"`
}

type analysisResponse struct {
	ID           int64     `json:"id"`
	ReportID     *int64    `json:"report_id"`
	LGUID        *int64    `json:"lgu_id"`
	AnalysisType string    `json:"analysis_type"`
	Prompt       *string   `json:"prompt"`
	Response     string    `json:"response"`
	ModelName    *string   `json:"model_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toResponse(a *analysis.Analysis) analysisResponse {
	return analysisResponse{
		ID:           a.ID,
		ReportID:     a.ReportID,
		LGUID:        a.LGUID,
		AnalysisType: a.Type,
		Prompt:       a.Prompt,
		Response:     a.Response,
		ModelName:    a.Model,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// validationMessage flattens validator errors into "field: tag" pairs.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fe.Field() + ": " + fe.Tag()
	}

	return "invalid request: " + strings.Join(parts, ", ")
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Analyze(r.Context(), analysis.Request{
		ReportID:     req.ReportID,
		LGUID:        req.LGUID,
		Type:         req.AnalysisType,
		CustomPrompt: req.CustomPrompt,
		Model:        req.Model,
	})
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrTargetRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, analysis.ErrProviderUnavailable):
			http.Error(w, "LLM API keys not configured", http.StatusServiceUnavailable)
		case errors.Is(err, analysis.ErrReportNotFound):
			http.Error(w, "Report not found", http.StatusNotFound)
		case errors.Is(err, analysis.ErrLGUNotFound):
			http.Error(w, "LGU not found", http.StatusNotFound)
		default:
			render.InternalError(w, r, err)
		}

		return
	}

	render.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p, err := param.Page(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := analysis.ListFilter{
		Type: param.OptionalString(r, "analysis_type"),
		Page: p,
	}

	if filter.LGUID, err = param.OptionalInt64(r, "lgu_id"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if filter.ReportID, err = param.OptionalInt64(r, "report_id"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	analyses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		render.InternalError(w, r, err)
		return
	}

	resp := make([]analysisResponse, len(analyses))
	for i, a := range analyses {
		resp[i] = toResponse(a)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := param.ID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			http.Error(w, "Analysis not found", http.StatusNotFound)
			return
		}

		render.InternalError(w, r, err)

		return
	}

	render.JSON(w, http.StatusOK, toResponse(a))
}
