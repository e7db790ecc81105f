package booking

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.PATCH("/bookings/:id", h.Approve)
	rg.GET("/bookings/:id", h.GetByID)
	rg.GET("/bookings", h.ListForBooker)
	rg.GET("/owner/bookings", h.ListForOwner)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Approve(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "approved must be true or false")
		return
	}

	b, err := h.service.Approve(c.Request.Context(), bookingID, c.GetInt64("user_id"), approved)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetByID(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListForBooker(c *gin.Context) {
	category, offset, limit, ok := listParams(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListForBooker(c.Request.Context(), c.GetInt64("user_id"), category, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListForOwner(c *gin.Context) {
	category, offset, limit, ok := listParams(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListForOwner(c.Request.Context(), c.GetInt64("user_id"), category, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

// listParams parses state/from/size. Unknown categories and negative
// windows are rejected here, before the service is reached.
func listParams(c *gin.Context) (Category, int, int, bool) {
	category, err := ParseCategory(c.Query("state"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return "", 0, 0, false
	}

	offset, err := intQuery(c, "from", 0)
	if err != nil || offset < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be a non-negative integer")
		return "", 0, 0, false
	}

	limit, err := intQuery(c, "size", 10)
	if err != nil || limit <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "size must be a positive integer")
		return "", 0, 0, false
	}

	return category, offset, limit, true
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking request")
	}
}
