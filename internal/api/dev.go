package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhive/backend/internal/service"
	"github.com/devhive/backend/internal/types"
)

// DevService is the slice of the profile service the handlers use
type DevService interface {
	List(ctx context.Context) ([]types.DevSummary, error)
	Get(ctx context.Context, id string) (*types.DevProfile, error)
	Search(ctx context.Context, term string) ([]types.DevSummary, error)
	Update(ctx context.Context, req *types.UpdateDevRequest) error
	Delete(ctx context.Context, id string) error
}

type DevHandler struct {
	devs DevService
}

func NewDevHandler(devs DevService) *DevHandler {
	return &DevHandler{
		devs: devs,
	}
}

// List handles GET /devs
func (h *DevHandler) List(c *gin.Context) {
	data, err := h.devs.List(c.Request.Context())
	if err != nil {
		log.Printf("Error Fetch All Data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to fetched data", "ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Fetched Successfully",
		"data":    data,
		"ok":      true,
	})
}

// Get handles GET /devs/:id. A missing id is a 404, not an empty success.
func (h *DevHandler) Get(c *gin.Context) {
	profile, err := h.devs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
			return
		}
		log.Printf("Error Fetch By ID: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to fetched data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// Search handles POST /devs/search. An empty term matches everything.
func (h *DevHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	data, err := h.devs.Search(c.Request.Context(), req.Search)
	if err != nil {
		log.Printf("Error Search: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to search"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Update handles PUT /devs/update. The caller may only mutate the record
// matching their own token identity; a mismatch is a permission error,
// not a validation error.
func (h *DevHandler) Update(c *gin.Context) {
	var req types.UpdateDevRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID is required"})
		return
	}

	if !req.HasUpdates() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Fields are required"})
		return
	}

	if req.ID != c.GetString("dev_id") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	if err := h.devs.Update(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "Username is already taken"})
			return
		}
		log.Printf("Error Update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated Successfully"})
}

// Delete handles DELETE /devs/:id. No existence check: deleting an id
// that is already gone still reports success.
func (h *DevHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString("dev_id") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	if err := h.devs.Delete(c.Request.Context(), id); err != nil {
		log.Printf("Error Delete: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to delete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
