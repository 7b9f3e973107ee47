package api

import (
	"errors"
	"net/http"

	reqdto "petcare-backend/internal/handler/dto/request"
	resdto "petcare-backend/internal/handler/dto/response"
	"petcare-backend/internal/handler/middleware"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PetHandler struct {
	petCommands   commands.PetCommands
	petQueries    queries.PetQueries
	recordQueries queries.HealthRecordQueries
	userQueries   queries.UserQueries
}

func NewPetHandler(petCommands commands.PetCommands, petQueries queries.PetQueries, recordQueries queries.HealthRecordQueries, userQueries queries.UserQueries) *PetHandler {
	return &PetHandler{
		petCommands:   petCommands,
		petQueries:    petQueries,
		recordQueries: recordQueries,
		userQueries:   userQueries,
	}
}

// @Summary Register pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePetRequest true "Pet"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.petCommands.CreatePet(c.Request.Context(), email, h.lookupUserName(c), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pet data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPetView(view))
}

// @Summary List my pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PetResponse
// @Router /pets [get]
func (h *PetHandler) ListMyPets(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.petQueries.ListByOwner(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PetResponse, len(views))
	for i := range views {
		response[i] = resdto.FromPetView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get pet
// @Description Get one of the caller's pets; pets of other owners read as absent
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [get]
func (h *PetHandler) GetPet(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pet ID format",
		})
		return
	}

	view, err := h.petQueries.GetByIDForOwner(c.Request.Context(), id, email)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pet not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary List pet health records
// @Description List records for one of the caller's pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {array} resdto.HealthRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id}/health-records [get]
func (h *PetHandler) ListPetHealthRecords(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pet ID format",
		})
		return
	}

	views, err := h.recordQueries.ListByPetForOwner(c.Request.Context(), id, email)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pet not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.HealthRecordResponse, len(views))
	for i := range views {
		response[i] = resdto.FromHealthRecordView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *PetHandler) lookupUserName(c *gin.Context) string {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return ""
	}
	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		return ""
	}
	return view.Name
}
