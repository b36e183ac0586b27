package assessment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/reliability-atlas/pkg/adapters"
	"github.com/de-tools/reliability-atlas/pkg/models/api"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	svc "github.com/de-tools/reliability-atlas/pkg/services/assessment"
	"github.com/de-tools/reliability-atlas/pkg/services/catalog"
	"github.com/de-tools/reliability-atlas/pkg/services/runs"
)

type Handler struct {
	runs    runs.Controller
	catalog catalog.Service
}

func NewHandler(runs runs.Controller, cat catalog.Service) *Handler {
	return &Handler{
		runs:    runs,
		catalog: cat,
	}
}

func (h *Handler) StartRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	scope, err := scopeFromRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.runs.Start(ctx, scope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	run, err := h.runs.Get(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, logger, http.StatusAccepted, adapters.MapAssessmentRunDomainToApi(run))
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	run, err := h.runs.Get(ctx, id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, runs.ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, logger, http.StatusOK, adapters.MapAssessmentRunDomainToApi(run))
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := make([]api.RunStatus, 0)
	for _, run := range h.runs.List(ctx) {
		// Listings stay light; the report is served by GetRun only.
		run.Report = nil
		response = append(response, adapters.MapAssessmentRunDomainToApi(run))
	}
	writeJSON(w, logger, http.StatusOK, response)
}

func (h *Handler) CancelRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	if err := h.runs.Cancel(ctx, id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, runs.ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	run, err := h.runs.Get(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, logger, http.StatusOK, adapters.MapAssessmentRunDomainToApi(run))
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.CatalogEntry, 0)
	for _, def := range h.catalog.Definitions() {
		response = append(response, adapters.MapCatalogDefinitionDomainToApi(def))
	}
	writeJSON(w, logger, http.StatusOK, response)
}

func scopeFromRequest(req api.RunRequest) (domain.Scope, error) {
	cfg := svc.RunConfig{
		TenantID:       req.TenantID,
		Subscriptions:  req.SubscriptionIDs,
		ResourceGroups: req.ResourceGroupIDs,
		Resources:      req.ResourceIDs,
		Tags:           req.Tags,
	}
	return cfg.Scope()
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode response")
	}
}
