package api

import (
	"errors"
	"net/http"

	"github.com/fastays/fastays/internal/service/auth"
	"github.com/fastays/fastays/internal/state"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service auth.AuthUseCase
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type verifyOtpRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Otp         string `json:"otp"`
}

func NewAuthHandler(service auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/verify-otp", h.verifyOtp)
	router.POST("/logout", h.logout)
	router.GET("/session", h.session)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Format validation stays at this boundary; the service only checks
	// the value itself.
	if !validPhoneNumber(req.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid phone number"})
		return
	}

	if err := h.service.LoginWithPhone(c.Request.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, state.ErrInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "login already in progress"})
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
	c.JSON(http.StatusOK, snapshot)
}

func (h *AuthHandler) verifyOtp(c *gin.Context) {
	var req verifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validPhoneNumber(req.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid phone number"})
		return
	}
	if !validOtp(req.Otp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid OTP"})
		return
	}

	if err := h.service.VerifyOtp(c.Request.Context(), req.PhoneNumber, req.Otp); err != nil {
		if errors.Is(err, state.ErrInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "verification already in progress"})
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
	c.JSON(http.StatusOK, snapshot)
}

func (h *AuthHandler) logout(c *gin.Context) {
	h.service.Logout()
	c.JSON(http.StatusOK, h.service.State())
}

func (h *AuthHandler) session(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.State())
}
