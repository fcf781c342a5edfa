package api

import (
	"errors"
	"net/http"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/autohub/fleetrental/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	VehicleID    string `json:"vehicleId" binding:"required"`
	Date         string `json:"date"`
	StartDate    string `json:"startDate"`
	Days         int    `json:"days"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	TotalPrice   int64  `json:"totalPrice"`
}

type createBookingResponse struct {
	domain.Booking
	NewCustomerID *string        `json:"newCustomerId"`
	RentalID      string         `json:"rentalId"`
	Rental        *domain.Rental `json:"rental"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Clients send either "date" or "startDate".
	date := req.Date
	if date == "" {
		date = req.StartDate
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateBookingInput{
		VehicleID:    req.VehicleID,
		Date:         date,
		Days:         req.Days,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		TotalPrice:   req.TotalPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrVehicleNotFound), errors.Is(err, booking.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrVehicleUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	resp := createBookingResponse{
		Booking:  *result.Booking,
		RentalID: result.RentalID,
		Rental:   result.Rental,
	}
	if result.NewCustomerID != "" {
		resp.NewCustomerID = &result.NewCustomerID
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	result, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rentalID := result.RentalID
	if rentalID == "" {
		rentalID = "N/A"
	}
	c.JSON(http.StatusOK, gin.H{"success": result.Success, "rentalId": rentalID})
}
