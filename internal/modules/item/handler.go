package item

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
	rg.POST("/items", h.Create)
	rg.PATCH("/items/:id", h.Edit)
	rg.DELETE("/items/:id", h.Delete)
	rg.GET("/items/:id", h.GetByID)
	rg.GET("/items", h.ListByOwner)
	rg.GET("/search", h.Search)
	rg.POST("/items/:id/comment", h.PostComment)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	i, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": i})
}

func (h *Handler) Edit(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item id")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	i, err := h.service.Edit(c.Request.Context(), c.GetInt64("user_id"), itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"item": i})
}

func (h *Handler) Delete(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), itemID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetByID(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item id")
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"item": d})
}

func (h *Handler) ListByOwner(c *gin.Context) {
	offset, limit, ok := pageParams(c)
	if !ok {
		return
	}

	items, err := h.service.ListByOwner(c.Request.Context(), c.GetInt64("user_id"), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Search(c *gin.Context) {
	offset, limit, ok := pageParams(c)
	if !ok {
		return
	}

	items, err := h.service.Search(c.Request.Context(), c.Query("text"), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) PostComment(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item id")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cm, err := h.service.PostComment(c.Request.Context(), c.GetInt64("user_id"), itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": cm})
}

func pageParams(c *gin.Context) (int, int, bool) {
	offset, err := intQuery(c, "from", 0)
	if err != nil || offset < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be a non-negative integer")
		return 0, 0, false
	}

	limit, err := intQuery(c, "size", 10)
	if err != nil || limit <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "size must be a positive integer")
		return 0, 0, false
	}

	return offset, limit, true
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
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process item request")
	}
}
