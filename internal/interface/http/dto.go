package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func itineraryJSON(it *entity.Itinerary) gin.H {
	out := gin.H{
		"id":          it.ID,
		"owner_id":    it.OwnerID,
		"title":       it.Title,
		"description": it.Description,
		"destination": it.Destination,
		"start_date":  it.StartDate.Format(dateLayout),
		"end_date":    it.EndDate.Format(dateLayout),
		"currency":    it.Currency,
		"is_public":   it.IsPublic,
		"cover_url":   it.CoverURL,
		"created_at":  it.CreatedAt,
		"updated_at":  it.UpdatedAt,
	}
	if it.Budget != nil {
		out["budget"] = *it.Budget
	}
	return out
}

func itinerariesJSON(list []*entity.Itinerary) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, it := range list {
		out = append(out, itineraryJSON(it))
	}
	return out
}

func collaboratorJSON(rec *entity.Collaborator) gin.H {
	out := gin.H{
		"id":           rec.ID,
		"itinerary_id": rec.ItineraryID,
		"user_id":      rec.UserID,
		"role":         string(rec.Role),
		"invited_at":   rec.InvitedAt,
		"accepted":     rec.Accepted(),
	}
	if rec.AcceptedAt != nil {
		out["accepted_at"] = rec.AcceptedAt
	}
	return out
}

func collaboratorsJSON(list []*entity.Collaborator) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, rec := range list {
		out = append(out, collaboratorJSON(rec))
	}
	return out
}

func itemJSON(item *entity.ItineraryItem) gin.H {
	out := gin.H{
		"id":           item.ID,
		"itinerary_id": item.ItineraryID,
		"type":         string(item.Type),
		"title":        item.Title,
		"description":  item.Description,
		"start_time":   item.StartTime.Format(time.RFC3339),
		"notes":        item.Notes,
		"photos":       item.Photos,
		"created_by":   item.CreatedBy,
		"created_at":   item.CreatedAt,
		"updated_at":   item.UpdatedAt,
	}
	if item.Location != nil {
		out["location"] = item.Location
	}
	if item.EndTime != nil {
		out["end_time"] = item.EndTime.Format(time.RFC3339)
	}
	if item.Cost != nil {
		out["cost"] = *item.Cost
	}
	return out
}

func itemsJSON(list []*entity.ItineraryItem) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, item := range list {
		out = append(out, itemJSON(item))
	}
	return out
}
