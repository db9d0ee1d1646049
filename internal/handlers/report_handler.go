package handlers

import (
	"net/http"
	"strconv"
	"trade_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) ClientsReport(c *gin.Context) {
	path, err := h.reportService.GenerateClientsReport()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

func (h *ReportHandler) OrdersReport(c *gin.Context) {
	var clientID *uint
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
			return
		}
		v := uint(id)
		clientID = &v
	}

	path, err := h.reportService.GenerateOrdersReport(clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}
