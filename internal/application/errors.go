package application

import (
	"errors"

	"github.com/wanderplan/wanderplan/internal/domain/access"
)

// Denial outcomes are expected and frequent; they are typed sentinels, never
// panics, and handlers map them to the stable wire codes.
var (
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrEditAccessDenied  = errors.New("edit access denied")
	ErrDeleteDenied      = errors.New("delete denied")
	ErrItemNotFound      = errors.New("item not found")
)

func denialError(r access.Reason) error {
	switch r {
	case access.ReasonEditAccessDenied:
		return ErrEditAccessDenied
	case access.ReasonDeleteDenied:
		return ErrDeleteDenied
	default:
		return ErrAccessDenied
	}
}
