package api

import (
	"net/http"

	"github.com/autohub/fleetrental/internal/service/rentals"
	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	service rentals.LedgerUseCase
}

func NewRentalHandler(service rentals.LedgerUseCase) *RentalHandler {
	return &RentalHandler{service: service}
}

func (h *RentalHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *RentalHandler) list(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
