package handlers

import (
	"ecoalerta/internal/core"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportFilename is the download name of the report export
const ExportFilename = "ecoalerta-reports.json"

// ReportsHandler handles incident reports
type ReportsHandler struct {
	ledger core.ReportLedger
	logger *slog.Logger
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(ledger core.ReportLedger, logger *slog.Logger) *ReportsHandler {
	return &ReportsHandler{
		ledger: ledger,
		logger: logger,
	}
}

// CreateReportRequest is the body of POST /v1/reports
type CreateReportRequest struct {
	Reason    string `json:"reason" binding:"required"`
	Notes     string `json:"notes"`
	Timestamp int64  `json:"timestamp" binding:"min=0"`
}

// ListReports returns every report in filing order
// GET /v1/reports
func (h *ReportsHandler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Load(c.Request.Context()))
}

// CreateReport files a new report
// POST /v1/reports
func (h *ReportsHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
			"code":  "INVALID_REQUEST",
		})
		return
	}

	receipt, err := h.ledger.Add(c.Request.Context(), core.ReportInput{
		Reason:    req.Reason,
		Notes:     req.Notes,
		Timestamp: req.Timestamp,
	})
	if err != nil || !receipt.Success {
		h.logger.Error("Failed to file report",
			"component", "api",
			"reason", req.Reason,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"protocol": nil,
			"success":  false,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"protocol": receipt.Protocol,
		"success":  true,
	})
}

// ExportReports downloads the ledger as an indented JSON file
// GET /v1/reports/export
func (h *ReportsHandler) ExportReports(c *gin.Context) {
	data, err := json.MarshalIndent(h.ledger.Load(c.Request.Context()), "", "  ")
	if err != nil {
		h.logger.Error("Failed to encode reports", "component", "api", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export reports",
			"code":  "INTERNAL_ERROR",
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+ExportFilename)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
