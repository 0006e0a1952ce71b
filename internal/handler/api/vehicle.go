package api

import (
	"errors"
	"net/http"

	reqdto "fleet-rental/internal/handler/dto/request"
	resdto "fleet-rental/internal/handler/dto/response"
	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleCommands commands.VehicleCommands
	vehicleQueries  queries.VehicleQueries
}

func NewVehicleHandler(vehicleCommands commands.VehicleCommands, vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{
		vehicleCommands: vehicleCommands,
		vehicleQueries:  vehicleQueries,
	}
}

// @Summary List fleet vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Router /admin/vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	views, err := h.vehicleQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

// @Summary Get fleet vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 404 {object} map[string]string
// @Router /admin/vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	view, err := h.vehicleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrVehicleViewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Register fleet vehicle
// @Description Add a vehicle with its base daily rate in cents
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VehicleRequest true "Vehicle definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req reqdto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.vehicleCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidVehicle) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid vehicle",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
