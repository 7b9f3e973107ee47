package api

import (
	"errors"
	"net/http"
	"time"

	resdto "petcare-backend/internal/handler/dto/response"
	"petcare-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	revenueQueries queries.RevenueQueries
}

func NewReportHandler(revenueQueries queries.RevenueQueries) *ReportHandler {
	return &ReportHandler{
		revenueQueries: revenueQueries,
	}
}

// @Summary Revenue report
// @Description Aggregate revenue from health-record consumption and non-cancelled orders
// @Tags admin-reports
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (RFC 3339)"
// @Param end query string false "Range end (RFC 3339)"
// @Param group_by query string false "Bucket granularity: day, week, month or year"
// @Success 200 {object} resdto.RevenueReportResponse
// @Failure 400 {object} map[string]string
// @Router /admin/reports/revenue [get]
func (h *ReportHandler) GetRevenueReport(c *gin.Context) {
	start, err := parseTimeParam(c, "start")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time, expected RFC 3339",
		})
		return
	}
	end, err := parseTimeParam(c, "end")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end time, expected RFC 3339",
		})
		return
	}

	report, err := h.revenueQueries.GetRevenueReport(c.Request.Context(), start, end, c.Query("group_by"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidGroupBy):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "group_by must be one of day, week, month, year",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueReport(report))
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
