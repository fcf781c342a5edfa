package api

import (
	"errors"
	"net/http"

	"github.com/autohub/fleetrental/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	service fleet.FleetUseCase
}

type addVehicleRequest struct {
	Model       string         `json:"model" binding:"required"`
	Type        string         `json:"type"`
	PricePerDay int64          `json:"pricePerDay" binding:"required,gt=0"`
	Image       string         `json:"image"`
	Specs       map[string]any `json:"specs"`
}

func NewVehicleHandler(service fleet.FleetUseCase) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.add)
	router.DELETE("/:id", h.remove)
}

func (h *VehicleHandler) list(c *gin.Context) {
	vehicles, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) add(c *gin.Context) {
	var req addVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.service.Add(c.Request.Context(), fleet.AddVehicleInput{
		Model:       req.Model,
		Category:    req.Type,
		PricePerDay: req.PricePerDay,
		Image:       req.Image,
		Specs:       req.Specs,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) remove(c *gin.Context) {
	err := h.service.Remove(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, fleet.ErrVehicleHasActiveBooking):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, fleet.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
