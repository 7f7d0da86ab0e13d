package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"calzone/internal/pdf"
	"calzone/internal/services"
	"calzone/internal/utils"
)

type ReportHandler struct {
	Service   *services.PipelineService
	Generator pdf.Generator
}

func NewReportHandler(service *services.PipelineService, generator pdf.Generator) *ReportHandler {
	return &ReportHandler{Service: service, Generator: generator}
}

// @Summary      Pipeline report (PDF)
// @Description  Renders the current pipeline snapshot and KPI block as a downloadable PDF.
// @Tags         Reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      403  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /pipeline/report [get]
func (h *ReportHandler) PipelineReport(c *gin.Context) {
	if !h.Service.Loaded() {
		if err := h.Service.Refresh(c.Request.Context()); err != nil {
			utils.Logger.Error().Err(err).Msg("pipeline refresh failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load deals"})
			return
		}
	}

	data := pdf.ReportData{
		GeneratedAt: time.Now(),
		Deals:       h.Service.Snapshot(services.Filter{}),
		Metrics:     h.Service.Metrics(),
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="pipeline-report.pdf"`)
	if err := h.Generator.GeneratePipelineReport(c.Writer, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}
