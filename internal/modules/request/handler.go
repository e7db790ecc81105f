package request

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

// The browse-all listing sits under /all/requests because /requests/all
// would collide with the /requests/:id parameter route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests", h.Create)
	rg.GET("/requests", h.ListOwn)
	rg.GET("/requests/:id", h.GetByID)
	rg.GET("/all/requests", h.ListAll)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"request": d})
}

func (h *Handler) ListOwn(c *gin.Context) {
	requests, err := h.service.ListOwn(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) ListAll(c *gin.Context) {
	offset, err := intQuery(c, "from", 0)
	if err != nil || offset < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be a non-negative integer")
		return
	}
	limit, err := intQuery(c, "size", 10)
	if err != nil || limit <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "size must be a positive integer")
		return
	}

	requests, err := h.service.ListAll(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) GetByID(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request id")
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"request": d})
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
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process item request")
	}
}
