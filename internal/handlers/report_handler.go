package handlers

import (
	"net/http"

	"github.com/white/lead-management/internal/models"
)

// ReportHandler serves the lead reports
type ReportHandler struct {
	reports ReportStore
}

func NewReportHandler(reports ReportStore) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// LastWeek godoc
// @Summary Leads closed in the last seven days
// @Tags Reports
// @Produce json
// @Success 200 {array} models.ClosedDeal
// @Failure 404 {object} ErrorResponse "No leads closed in the last seven days."
// @Failure 500 {object} ErrorResponse
// @Router /report/last-week [get]
func (h *ReportHandler) LastWeek(w http.ResponseWriter, r *http.Request) {
	deals, err := h.reports.RecentClosedDeals(r.Context())
	if err != nil {
		respondWithStoreError(w, r, err, errorMessages{Internal: "An error occurred while fetching recent closed leads."})
		return
	}
	if len(deals) == 0 {
		respondWithError(w, http.StatusNotFound, "No leads closed in the last seven days.")
		return
	}
	respondWithJSON(w, http.StatusOK, deals)
}

// Pipeline godoc
// @Summary Number of leads not yet Closed
// @Tags Reports
// @Produce json
// @Success 200 {object} models.PipelineSummary
// @Failure 404 {object} ErrorResponse "No Leads found in pipeline."
// @Failure 500 {object} ErrorResponse
// @Router /report/pipeline [get]
func (h *ReportHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	count, err := h.reports.PipelineCount(r.Context())
	if err != nil {
		respondWithStoreError(w, r, err, errorMessages{Internal: "An error occurred while fetching leads in pipeline."})
		return
	}
	if count == 0 {
		respondWithError(w, http.StatusNotFound, "No Leads found in pipeline.")
		return
	}
	respondWithJSON(w, http.StatusOK, models.PipelineSummary{TotalLeadsInPipeline: count})
}

// ClosedByAgent godoc
// @Summary Closed lead counts per agent
// @Description Ordered by count descending, then agent id.
// @Tags Reports
// @Produce json
// @Success 200 {array} models.AgentClosedCount
// @Failure 404 {object} ErrorResponse "No closed leads found"
// @Failure 500 {object} ErrorResponse
// @Router /report/closed-by-agent [get]
func (h *ReportHandler) ClosedByAgent(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.ClosedByAgent(r.Context())
	if err != nil {
		respondWithStoreError(w, r, err, errorMessages{Internal: "Failed to fetch closed leads by agent"})
		return
	}
	if len(rows) == 0 {
		respondWithError(w, http.StatusNotFound, "No closed leads found")
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}
