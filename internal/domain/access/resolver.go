package access

import (
	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

// Reason distinguishes why a request was denied. Code returns the stable wire
// code; a non-owner delete surfaces as ACCESS_DENIED, matching the codes
// existing clients depend on.
type Reason string

const (
	ReasonItineraryNotFound Reason = "ITINERARY_NOT_FOUND"
	ReasonAccessDenied      Reason = "ACCESS_DENIED"
	ReasonEditAccessDenied  Reason = "EDIT_ACCESS_DENIED"
	ReasonDeleteDenied      Reason = "DELETE_DENIED"
)

func (r Reason) Code() string {
	if r == ReasonDeleteDenied {
		return string(ReasonAccessDenied)
	}
	return string(r)
}

// Decision is the outcome of resolving a user against an itinerary: the
// effective role plus the itinerary it was resolved for, threaded explicitly
// to the next handling stage rather than stashed on a request context.
type Decision struct {
	Role      Role
	Itinerary *entity.Itinerary
}

// Allows reports whether the resolved role grants the capability.
func (d Decision) Allows(c Capability) bool {
	return d.Role.Grants(c)
}

// Denial returns the reason a request for the capability is refused. Callers
// should only consult it when Allows returned false.
func (d Decision) Denial(c Capability) Reason {
	switch c {
	case CapWrite:
		return ReasonEditAccessDenied
	case CapDelete:
		return ReasonDeleteDenied
	default:
		return ReasonAccessDenied
	}
}

// Resolve computes the effective role of userID on the itinerary given its
// collaborator records. It is a pure function over the loaded snapshot:
//
//  1. The owner always resolves to owner with every capability, even if an
//     anomalous collaborator record exists for the same user.
//  2. An accepted collaborator record yields its stored role.
//  3. An unaccepted invitation grants nothing; the user falls through to
//     public (read-only, if the itinerary is public) or none.
func Resolve(userID string, it *entity.Itinerary, records []*entity.Collaborator) Decision {
	if userID == it.OwnerID {
		return Decision{Role: RoleOwner, Itinerary: it}
	}
	for _, rec := range records {
		if rec.ItineraryID != it.ID || rec.UserID != userID {
			continue
		}
		if rec.Accepted() {
			return Decision{Role: FromStored(rec.Role), Itinerary: it}
		}
		break
	}
	if it.IsPublic {
		return Decision{Role: RolePublic, Itinerary: it}
	}
	return Decision{Role: RoleNone, Itinerary: it}
}
