package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/internal/application"
	"github.com/wanderplan/wanderplan/internal/domain/collab"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/pkg/response"
)

// writeServiceError maps service errors to the stable wire codes clients
// match on. Anything unmapped is reported as an internal error without the
// underlying message.
func writeServiceError(c *gin.Context, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verr.Details())
	case errors.Is(err, application.ErrItineraryNotFound):
		response.Error(c, http.StatusNotFound, "ITINERARY_NOT_FOUND", "itinerary not found", nil)
	case errors.Is(err, application.ErrEditAccessDenied):
		response.Error(c, http.StatusForbidden, "EDIT_ACCESS_DENIED", "edit access denied", nil)
	case errors.Is(err, application.ErrDeleteDenied), errors.Is(err, application.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "ACCESS_DENIED", "access denied", nil)
	case errors.Is(err, application.ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", "item not found", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "user not found", nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "email already registered", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials", nil)
	case errors.Is(err, collab.ErrDuplicateCollaboration):
		response.Error(c, http.StatusConflict, "duplicate-collaboration", "user is already a collaborator", nil)
	case errors.Is(err, collab.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not-found", "collaborator not found", nil)
	case errors.Is(err, collab.ErrOwnerCollaboration):
		response.Error(c, http.StatusBadRequest, "OWNER_COLLABORATION", "owner cannot be invited as a collaborator", nil)
	case errors.Is(err, collab.ErrNotInvitee):
		response.Error(c, http.StatusForbidden, "ACCESS_DENIED", "only the invited user can accept", nil)
	case errors.Is(err, collab.ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", map[string]string{"role": "must be one of: viewer, editor, admin"})
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
	}
}
