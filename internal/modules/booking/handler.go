package booking

import (
	"errors"
	"net/http"

	"glamping/internal/pkg/response"
	"glamping/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/availability", h.CheckAvailability)
	rg.GET("/fully-booked-dates", h.FullyBookedDates)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields", fields)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var conflict *ConflictError
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "The date range must cover at least one night")
			return

		case errors.As(err, &conflict):
			response.ErrorWithDetails(c, http.StatusConflict, "NO_AVAILABILITY", "No cabin is free on every requested night", gin.H{
				"conflict_date": conflict.Date,
				"booked_cabins": conflict.BookedCabins,
				"max_cabins":    conflict.MaxCabins,
			})
			return

		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
			return
		}
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": NewBookingResponse(b)})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query params from and to are required (YYYY-MM-DD)")
		return
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) FullyBookedDates(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query params from and to are required (YYYY-MM-DD)")
		return
	}

	dates, err := h.service.FullyBookedDates(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load fully booked dates")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fully_booked": dates})
}
