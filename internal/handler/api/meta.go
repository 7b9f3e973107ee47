package api

import (
	"net/http"

	resdto "petcare-backend/internal/handler/dto/response"
	"petcare-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type MetaHandler struct {
	bookingCfg config.BookingConfig
}

func NewMetaHandler(bookingCfg config.BookingConfig) *MetaHandler {
	return &MetaHandler{
		bookingCfg: bookingCfg,
	}
}

// @Summary Service metadata
// @Description Display-oriented settings for the frontend
// @Tags meta
// @Produce json
// @Success 200 {object} resdto.MetaResponse
// @Router /meta [get]
func (h *MetaHandler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MetaResponse{
		CancelWindowHours: h.bookingCfg.CancelWindowHours,
	})
}
