package api

import (
	"errors"
	"net/http"

	reqdto "petcare-backend/internal/handler/dto/request"
	resdto "petcare-backend/internal/handler/dto/response"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"
	"petcare-backend/internal/usecase/stock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HealthRecordHandler covers the staff-side record lifecycle. Creation
// consumes inventory; updates touch metadata only and deletion never puts
// stock back.
type HealthRecordHandler struct {
	recordCommands commands.HealthRecordCommands
	recordQueries  queries.HealthRecordQueries
}

func NewHealthRecordHandler(recordCommands commands.HealthRecordCommands, recordQueries queries.HealthRecordQueries) *HealthRecordHandler {
	return &HealthRecordHandler{
		recordCommands: recordCommands,
		recordQueries:  recordQueries,
	}
}

// @Summary Create health record
// @Description Record a visit; used products are reserved all-or-nothing
// @Tags health-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHealthRecordRequest true "Health record"
// @Success 201 {object} resdto.HealthRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/health-records [post]
func (h *HealthRecordHandler) CreateRecord(c *gin.Context) {
	var req reqdto.CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.recordCommands.CreateHealthRecord(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pet not found",
			})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, stock.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, stock.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Insufficient stock",
			})
		case errors.Is(err, stock.ErrInvalidQuantity),
			errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid health record data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHealthRecordView(view))
}

// @Summary Get health record
// @Tags health-records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.HealthRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/health-records/{id} [get]
func (h *HealthRecordHandler) GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	view, err := h.recordQueries.GetByIDSystem(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Health record not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHealthRecordView(view))
}

// @Summary Update health record
// @Description Update record metadata; stock is never re-adjusted
// @Tags health-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body reqdto.UpdateHealthRecordRequest true "Metadata update"
// @Success 200 {object} resdto.HealthRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/health-records/{id} [patch]
func (h *HealthRecordHandler) UpdateRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	var req reqdto.UpdateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.recordCommands.UpdateHealthRecord(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Health record not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid health record data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHealthRecordView(view))
}

// @Summary Delete health record
// @Description Hard delete; consumed stock is not returned
// @Tags health-records
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/health-records/{id} [delete]
func (h *HealthRecordHandler) DeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	if err := h.recordCommands.DeleteHealthRecord(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Health record not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
