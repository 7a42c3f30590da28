package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/report"
	"github.com/pontodigital/ponto-backend-go/internal/handler/http/response"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	TeamMonthly(w http.ResponseWriter, r *http.Request)
	OrganizationMonthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// yearMonthFromQuery reads year and month query params, defaulting to the
// current month.
func yearMonthFromQuery(r *http.Request) (int, int) {
	now := time.Now().UTC()
	year := getIntQueryParam(r, "year", now.Year())
	month := getIntQueryParam(r, "month", int(now.Month()))
	return year, month
}

// TeamMonthly implements ReportHandler.
func (h *ReportHandlerImpl) TeamMonthly(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(teamID) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	year, month := yearMonthFromQuery(r)
	result, err := h.reportService.TeamMonthly(r.Context(), teamID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// OrganizationMonthly implements ReportHandler.
func (h *ReportHandlerImpl) OrganizationMonthly(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonthFromQuery(r)
	result, err := h.reportService.OrganizationMonthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
