package user

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/pkg/response"
	"shareit/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.GetAll)
	rg.GET("/users/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/users/:id", h.Update)
	rg.DELETE("/users/:id", h.Delete)
}

func (h *Handler) GetAll(c *gin.Context) {
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

	users, err := h.service.GetAll(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) GetByID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Update(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", fieldErrs)
		return
	}

	u, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Delete(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), userID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
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
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process user request")
	}
}
