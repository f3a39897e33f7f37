package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wanderplan/wanderplan/internal/application"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/pkg/response"
	"github.com/wanderplan/wanderplan/pkg/validation"
)

type ItemHandler struct {
	Svc    *application.ItemService
	Logger *logrus.Logger
}

func NewItemHandler(svc *application.ItemService, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{Svc: svc, Logger: logger}
}

// coordinatesRequest mirrors the response shape; a pair is all-or-nothing,
// so both values are required once the object is present.
type coordinatesRequest struct {
	Lat *float64 `json:"lat" binding:"required,latitude"`
	Lng *float64 `json:"lng" binding:"required,longitude"`
}

type locationRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=255"`
	Coordinates *coordinatesRequest `json:"coordinates"`
}

type createItemRequest struct {
	Type        string           `json:"type" binding:"required,oneof=accommodation activity restaurant transportation"`
	Title       string           `json:"title" binding:"required,min=1,max=255"`
	Description string           `json:"description" binding:"max=2000"`
	Location    *locationRequest `json:"location"`
	StartTime   time.Time        `json:"start_time" binding:"required"`
	EndTime     *time.Time       `json:"end_time"`
	Cost        *float64         `json:"cost" binding:"omitempty,gte=0"`
	Notes       string           `json:"notes" binding:"max=2000"`
	Photos      []string         `json:"photos" binding:"omitempty,dive,url"`
}

type updateItemRequest struct {
	Type        *string          `json:"type" binding:"omitempty,oneof=accommodation activity restaurant transportation"`
	Title       *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Location    *locationRequest `json:"location"`
	StartTime   *time.Time       `json:"start_time"`
	EndTime     *time.Time       `json:"end_time"`
	Cost        *float64         `json:"cost" binding:"omitempty,gte=0"`
	Notes       *string          `json:"notes" binding:"omitempty,max=2000"`
	Photos      []string         `json:"photos" binding:"omitempty,dive,url"`
}

func locationFromRequest(req *locationRequest) *entity.Location {
	if req == nil {
		return nil
	}
	loc := &entity.Location{Name: req.Name}
	if c := req.Coordinates; c != nil {
		loc.Coordinates = &entity.Coordinates{Lat: *c.Lat, Lng: *c.Lng}
	}
	return loc
}

func (h *ItemHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	items, err := h.Svc.List(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, itemsJSON(items), "items", gin.H{"count": len(items)})
}

func (h *ItemHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", validation.ToDetails(err))
		return
	}
	item, err := h.Svc.Create(c.Request.Context(), uid, c.Param("id"), application.CreateItemInput{
		Type:        entity.ItemType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Location:    locationFromRequest(req.Location),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Cost:        req.Cost,
		Notes:       req.Notes,
		Photos:      req.Photos,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, itemJSON(item), "item created", nil)
}

func (h *ItemHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", validation.ToDetails(err))
		return
	}
	patch := entity.ItemPatch{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Cost:        req.Cost,
		Notes:       req.Notes,
	}
	if req.Photos != nil {
		patch.Photos = &req.Photos
	}
	if req.Type != nil {
		t := entity.ItemType(*req.Type)
		patch.Type = &t
	}
	if req.Location != nil {
		patch.Location = locationFromRequest(req.Location)
	}
	item, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), c.Param("itemId"), patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, itemJSON(item), "item updated", nil)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id"), c.Param("itemId")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "item deleted", nil)
}
