package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/service/tours"
)

type TourHandler struct {
	service tours.TourUseCase
}

type createBookingRequest struct {
	TourID          string `json:"tour_id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BookingDate     string `json:"booking_date"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

type bookingResponse struct {
	ID              string `json:"id"`
	TourID          string `json:"tour_id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BookingDate     string `json:"booking_date"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID,
		TourID:          b.TourID,
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		Phone:           b.Phone,
		BookingDate:     b.BookingDate.Format(dateFormat),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func NewTourHandler(service tours.TourUseCase) *TourHandler {
	return &TourHandler{service: service}
}

func (h *TourHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/category/:category", h.listByCategory)
	router.POST("/bookings", h.createBooking)
	router.GET("/bookings/:id", h.getBooking)
}

func (h *TourHandler) list(c *gin.Context) {
	tours, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) get(c *gin.Context) {
	tour, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) listByCategory(c *gin.Context) {
	tours, err := h.service.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) createBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	bookingDate, err := time.Parse(dateFormat, req.BookingDate)
	if err != nil {
		badRequest(c, "booking_date must be YYYY-MM-DD")
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), tours.CreateBookingInput{
		TourID:          req.TourID,
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		BookingDate:     bookingDate,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *TourHandler) getBooking(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}
