package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
	"github.com/zanzibar-explore/tours-backend/internal/service/transfers"
)

type TransferHandler struct {
	service transfers.TransferUseCase
}

type createTransferRequest struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	FlightNumber    string `json:"flight_number"`
	ArrivalDate     string `json:"arrival_date"`
	ArrivalTime     string `json:"arrival_time"`
	Passengers      int    `json:"passengers"`
	VehicleType     string `json:"vehicle_type"`
	Destination     string `json:"destination"`
	SpecialRequests string `json:"special_requests"`
}

type transferResponse struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	FlightNumber    string `json:"flight_number"`
	ArrivalDate     string `json:"arrival_date"`
	ArrivalTime     string `json:"arrival_time"`
	Passengers      int    `json:"passengers"`
	VehicleType     string `json:"vehicle_type"`
	Destination     string `json:"destination"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func toTransferResponse(b *domain.TransferBooking) transferResponse {
	return transferResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		Phone:           b.Phone,
		FlightNumber:    b.FlightNumber,
		ArrivalDate:     b.ArrivalDate.Format(dateFormat),
		ArrivalTime:     b.ArrivalTime,
		Passengers:      b.Passengers,
		VehicleType:     b.VehicleType,
		Destination:     b.Destination,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func NewTransferHandler(service transfers.TransferUseCase) *TransferHandler {
	return &TransferHandler{service: service}
}

func (h *TransferHandler) Register(router *gin.RouterGroup) {
	router.GET("/vehicles", h.listVehicles)
	router.POST("/bookings", h.createBooking)
	router.GET("/bookings", h.listBookings)
	router.GET("/bookings/:id", h.getBooking)
	router.PUT("/bookings/:id/status", h.updateStatus)
}

func (h *TransferHandler) listVehicles(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *TransferHandler) createBooking(c *gin.Context) {
	var req createTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	arrivalDate, err := time.Parse(dateFormat, req.ArrivalDate)
	if err != nil {
		badRequest(c, "arrival_date must be YYYY-MM-DD")
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), transfers.CreateBookingInput{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		FlightNumber:    req.FlightNumber,
		ArrivalDate:     arrivalDate,
		ArrivalTime:     req.ArrivalTime,
		Passengers:      req.Passengers,
		VehicleType:     req.VehicleType,
		Destination:     req.Destination,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTransferResponse(booking))
}

func (h *TransferHandler) listBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]transferResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toTransferResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TransferHandler) getBooking(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransferResponse(booking))
}

func (h *TransferHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transfer booking status updated successfully"})
}
