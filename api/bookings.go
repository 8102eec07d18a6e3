package api

import (
	"errors"
	"net/http"

	"github.com/fastays/fastays/internal/catalog"
	"github.com/fastays/fastays/internal/domain"
	"github.com/fastays/fastays/internal/service/booking"
	"github.com/fastays/fastays/internal/state"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
	catalog catalog.Source
}

type selectFlightRequest struct {
	FlightID string `json:"flightId"`
}

type submitBookingRequest struct {
	FlightID      string               `json:"flightId"`
	Passenger     domain.PassengerInfo `json:"passenger"`
	TermsAccepted bool                 `json:"termsAccepted"`
}

func NewBookingHandler(service booking.BookingUseCase, source catalog.Source) *BookingHandler {
	return &BookingHandler{service: service, catalog: source}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.submit)
	router.GET("/state", h.state)
	router.POST("/select", h.selectFlight)
	router.DELETE("/select", h.closeModal)
	router.DELETE("/confirmation", h.clearConfirmation)
}

func (h *BookingHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.State().Bookings)
}

func (h *BookingHandler) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.State())
}

func (h *BookingHandler) selectFlight(c *gin.Context) {
	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.resolveFlight(c, req.FlightID)
	if err != nil {
		return
	}
	h.service.OpenModal(*flight)
	c.JSON(http.StatusOK, h.service.State())
}

func (h *BookingHandler) closeModal(c *gin.Context) {
	h.service.CloseModal()
	c.JSON(http.StatusOK, h.service.State())
}

func (h *BookingHandler) clearConfirmation(c *gin.Context) {
	h.service.ClearConfirmation()
	c.JSON(http.StatusOK, h.service.State())
}

func (h *BookingHandler) submit(c *gin.Context) {
	var req submitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.resolveFlight(c, req.FlightID)
	if err != nil {
		return
	}

	if err := h.service.SubmitBooking(c.Request.Context(), *flight, req.Passenger, req.TermsAccepted); err != nil {
		if errors.Is(err, state.ErrInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "booking already in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	snapshot := h.service.State()
	if snapshot.Error != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": snapshot.Error})
		return
	}
	c.JSON(http.StatusCreated, snapshot.CurrentBooking)
}

func (h *BookingHandler) resolveFlight(c *gin.Context, id string) (*domain.Flight, error) {
	flight, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, err
	}
	return flight, nil
}
