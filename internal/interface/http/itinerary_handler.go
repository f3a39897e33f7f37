package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wanderplan/wanderplan/internal/application"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/pkg/response"
	"github.com/wanderplan/wanderplan/pkg/validation"
)

type ItineraryHandler struct {
	Svc    *application.ItineraryService
	Logger *logrus.Logger
}

func NewItineraryHandler(svc *application.ItineraryService, logger *logrus.Logger) *ItineraryHandler {
	return &ItineraryHandler{Svc: svc, Logger: logger}
}

type createItineraryRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Destination string   `json:"destination" binding:"required,min=1,max=255"`
	StartDate   string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
	Currency    string   `json:"currency" binding:"omitempty,currency"`
	IsPublic    bool     `json:"is_public"`
}

type updateItineraryRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Destination *string  `json:"destination" binding:"omitempty,min=1,max=255"`
	StartDate   *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
	Currency    *string  `json:"currency" binding:"omitempty,currency"`
	IsPublic    *bool    `json:"is_public"`
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func (h *ItineraryHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", validation.ToDetails(err))
		return
	}
	it, err := h.Svc.Create(c.Request.Context(), uid, application.CreateItineraryInput{
		Title:       req.Title,
		Description: req.Description,
		Destination: req.Destination,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		Budget:      req.Budget,
		Currency:    req.Currency,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, itineraryJSON(it), "itinerary created", nil)
}

func (h *ItineraryHandler) Get(c *gin.Context) {
	uid := c.GetString("userID")
	d, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, itineraryJSON(d.Itinerary), "itinerary", gin.H{"role": string(d.Role)})
}

func (h *ItineraryHandler) ListOwned(c *gin.Context) {
	uid := c.GetString("userID")
	list, err := h.Svc.ListOwned(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, itinerariesJSON(list), "itineraries", gin.H{"count": len(list)})
}

func (h *ItineraryHandler) ListShared(c *gin.Context) {
	uid := c.GetString("userID")
	list, err := h.Svc.ListShared(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, itinerariesJSON(list), "shared itineraries", gin.H{"count": len(list)})
}

func (h *ItineraryHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", validation.ToDetails(err))
		return
	}
	patch := entity.ItineraryPatch{
		Title:       req.Title,
		Description: req.Description,
		Destination: req.Destination,
		Budget:      req.Budget,
		Currency:    req.Currency,
		IsPublic:    req.IsPublic,
	}
	if req.StartDate != nil {
		t := parseDate(*req.StartDate)
		patch.StartDate = &t
	}
	if req.EndDate != nil {
		t := parseDate(*req.EndDate)
		patch.EndDate = &t
	}
	it, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, itineraryJSON(it), "itinerary updated", nil)
}

func (h *ItineraryHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "itinerary deleted", nil)
}

func (h *ItineraryHandler) Duplicate(c *gin.Context) {
	uid := c.GetString("userID")
	dup, err := h.Svc.Duplicate(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, itineraryJSON(dup), "itinerary duplicated", nil)
}

// UploadCover accepts a multipart form with a "cover" file field.
func (h *ItineraryHandler) UploadCover(c *gin.Context) {
	uid := c.GetString("userID")
	fh, err := c.FormFile("cover")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing cover file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable cover file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadCover(c.Request.Context(), uid, c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cover_url": url}, "cover uploaded", nil)
}

// SearchPublic is unauthenticated; it only sees what syncIndex published.
func (h *ItineraryHandler) SearchPublic(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing query", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchPublic(c.Request.Context(), q, size)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "public itineraries", gin.H{"count": len(hits)})
}
