package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	IncomingByCountry(ctx context.Context, sel domain.YearSelector) (domain.IncomingReport, error)
	IncomingByState(ctx context.Context, sel domain.YearSelector) (domain.IncomingReport, error)
	OutgoingByCountryAndState(ctx context.Context, sel domain.YearSelector) (domain.OutgoingReport, error)

	Years(ctx context.Context) ([]int, error)
	States(ctx context.Context) ([]string, error)
	Countries(ctx context.Context) ([]string, error)
}

// ReportHandler serves the adoption statistics endpoints under /api.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Root handles GET /.
func (h *ReportHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Welcome to the Intercountry Adoption Statistics API")
}

// Years handles GET /api/years.
func (h *ReportHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.svc.Years(r.Context())
	if err != nil {
		h.handleError(w, r, "years", err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[int]{Year: domain.AllYears, Data: years})
}

// States handles GET /api/states.
func (h *ReportHandler) States(w http.ResponseWriter, r *http.Request) {
	states, err := h.svc.States(r.Context())
	if err != nil {
		h.handleError(w, r, "states", err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[string]{Year: domain.AllYears, Data: states})
}

// Countries handles GET /api/countries.
func (h *ReportHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.svc.Countries(r.Context())
	if err != nil {
		h.handleError(w, r, "countries", err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[string]{Year: domain.AllYears, Data: countries})
}

// IncomingAdoptions handles GET /api/incoming-adoptions/{year}.
func (h *ReportHandler) IncomingAdoptions(w http.ResponseWriter, r *http.Request) {
	const resource = "incoming adoptions"

	sel, err := domain.ParseYearSelector(chi.URLParam(r, "year"))
	if err != nil {
		h.handleError(w, r, resource, err)
		return
	}

	report, err := h.svc.IncomingByCountry(r.Context(), sel)
	if err != nil {
		h.handleError(w, r, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, toIncomingByCountry(report))
}

// IncomingAdoptionsByState handles GET /api/incoming-adoptions-by-state/{year}.
func (h *ReportHandler) IncomingAdoptionsByState(w http.ResponseWriter, r *http.Request) {
	const resource = "adoptions by state"

	sel, err := domain.ParseYearSelector(chi.URLParam(r, "year"))
	if err != nil {
		h.handleError(w, r, resource, err)
		return
	}

	report, err := h.svc.IncomingByState(r.Context(), sel)
	if err != nil {
		h.handleError(w, r, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, toIncomingByState(report))
}

// OutgoingAdoptions handles GET /api/outgoing-adoptions/{year}.
func (h *ReportHandler) OutgoingAdoptions(w http.ResponseWriter, r *http.Request) {
	const resource = "outgoing adoptions"

	sel, err := domain.ParseYearSelector(chi.URLParam(r, "year"))
	if err != nil {
		h.handleError(w, r, resource, err)
		return
	}

	report, err := h.svc.OutgoingByCountryAndState(r.Context(), sel)
	if err != nil {
		h.handleError(w, r, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, toOutgoing(report))
}

// handleError maps a service error to a response. Storage errors are logged
// and answered with a generic message naming the resource.
func (h *ReportHandler) handleError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgNoDataForYear)
	default:
		h.log.ErrorContext(r.Context(), "fetch "+resource,
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching "+resource)
	}
}
