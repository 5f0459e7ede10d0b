package statement

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/runtime/terminal/export"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/services/statement"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	statements statement.Service
	catalog    catalog.Service
}

func NewHandler(statements statement.Service, catalog catalog.Service) *Handler {
	return &Handler{
		statements: statements,
		catalog:    catalog,
	}
}

func (h *Handler) ListPlays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plays, err := h.catalog.ListPlays(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list plays")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	response := make([]api.Play, 0, len(plays))
	for _, p := range plays {
		response = append(response, adapters.MapDomainPlayToApi(p))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetPlay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playID := chi.URLParam(r, "playID")

	play, err := h.catalog.GetPlay(ctx, playID)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			zerolog.Ctx(ctx).Error().Err(err).Str("play", playID).Msg("failed to get play")
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainPlayToApi(play))
}

func (h *Handler) PutPlay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playID := chi.URLParam(r, "playID")

	var req api.Play
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	play, err := adapters.MapApiPlayToDomain(playID, req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if err := h.catalog.SavePlays(ctx, []domain.Play{play}); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("play", playID).Msg("failed to save play")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainPlayToApi(play))
}

func (h *Handler) CreateStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.StatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	invoice, err := adapters.MapStatementRequestApiToDomain(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	issued, err := h.statements.Issue(ctx, invoice)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error().Err(err).Str("customer", invoice.Customer).Msg("failed to issue statement")
		} else {
			logger.Warn().Err(err).Str("customer", invoice.Customer).Msg("statement rejected")
		}
		writeError(w, status, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/plain") {
		reporter, err := export.NewReporter(w, export.FormatText)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		if err := reporter.Handle(issued.Statement); err != nil {
			logger.Error().Err(err).Msg("failed to render statement")
		}
		return
	}

	writeJSON(w, r, http.StatusCreated, adapters.MapIssuedStatementDomainToApi(issued))
}

func (h *Handler) ListStatements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customer := r.URL.Query().Get("customer")
	if customer == "" {
		writeError(w, http.StatusBadRequest, errors.New("customer query parameter is required"))
		return
	}

	statements, err := h.statements.History(ctx, customer)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("customer", customer).Msg("failed to list statements")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	response := make([]api.Statement, 0, len(statements))
	for _, s := range statements {
		response = append(response, adapters.MapIssuedStatementDomainToApi(s))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownPlay):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownGenre):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}
