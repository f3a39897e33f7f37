package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wanderplan/wanderplan/internal/domain/access"
	"github.com/wanderplan/wanderplan/internal/domain/collab"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	repo "github.com/wanderplan/wanderplan/internal/domain/repository"
	"github.com/wanderplan/wanderplan/pkg/helpers"
	"github.com/wanderplan/wanderplan/pkg/mailer"
)

type CollaboratorService struct {
	Auth          *Authorizer
	Collaborators repo.CollaboratorRepository
	Users         repo.UserRepository
	Pub           *helpers.RabbitPublisher
	Logger        *logrus.Logger
	InviteURL     string
	MailEnabled   bool
}

func NewCollaboratorService(auth *Authorizer, collaborators repo.CollaboratorRepository, users repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, inviteURL string, mailEnabled bool) *CollaboratorService {
	return &CollaboratorService{
		Auth:          auth,
		Collaborators: collaborators,
		Users:         users,
		Pub:           pub,
		Logger:        logger,
		InviteURL:     inviteURL,
		MailEnabled:   mailEnabled,
	}
}

// List returns every collaborator record of the itinerary, pending
// invitations included. Requires read capability.
func (s *CollaboratorService) List(ctx context.Context, userID, itineraryID string) ([]*entity.Collaborator, error) {
	d, recs, err := s.Auth.Resolve(userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if !d.Allows(access.CapRead) {
		return nil, ErrAccessDenied
	}
	return recs, nil
}

// Invite creates a pending record for the user registered under targetEmail
// and enqueues an invitation email. Requires manage-collaborators capability.
func (s *CollaboratorService) Invite(ctx context.Context, actorID, itineraryID, targetEmail string, role entity.Role) (*entity.Collaborator, error) {
	d, recs, err := s.Auth.Resolve(actorID, itineraryID)
	if err != nil {
		return nil, err
	}
	if !d.Allows(access.CapManageCollaborators) {
		return nil, ErrAccessDenied
	}
	target, err := s.Users.GetByEmail(targetEmail)
	if err != nil || target == nil {
		return nil, ErrUserNotFound
	}
	rec, err := collab.Invite(d.Itinerary, recs, target.ID, role, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.Collaborators.Create(rec); err != nil {
		// The unique index catches invites racing past the snapshot check.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, collab.ErrDuplicateCollaboration
		}
		return nil, err
	}

	s.enqueueInvite(ctx, target, d.Itinerary, actorID, rec)
	return rec, nil
}

// Accept confirms the caller's own pending invitation. Accepting twice is a
// no-op.
func (s *CollaboratorService) Accept(ctx context.Context, actorID, itineraryID string) (*entity.Collaborator, error) {
	rec, err := s.Collaborators.Get(itineraryID, actorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, collab.ErrNotFound
		}
		return nil, err
	}
	changed, err := collab.Accept(rec, actorID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.Collaborators.Update(rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// ChangeRole sets a new role on an existing record. Requires
// manage-collaborators; lowering one's own role is allowed.
func (s *CollaboratorService) ChangeRole(ctx context.Context, actorID, itineraryID, targetUserID string, role entity.Role) (*entity.Collaborator, error) {
	if _, err := s.Auth.Require(actorID, itineraryID, access.CapManageCollaborators); err != nil {
		return nil, err
	}
	rec, err := s.Collaborators.Get(itineraryID, targetUserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, collab.ErrNotFound
		}
		return nil, err
	}
	if err := collab.ChangeRole(rec, role); err != nil {
		return nil, err
	}
	if err := s.Collaborators.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Remove hard-deletes a record. Allowed for manage-collaborators holders and
// for the collaborator removing themself, regardless of their role.
func (s *CollaboratorService) Remove(ctx context.Context, actorID, itineraryID, targetUserID string) error {
	d, _, err := s.Auth.Resolve(actorID, itineraryID)
	if err != nil {
		return err
	}
	rec, err := s.Collaborators.Get(itineraryID, targetUserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return collab.ErrNotFound
		}
		return err
	}
	if !collab.MayRemove(d, actorID, rec) {
		return ErrAccessDenied
	}
	if err := s.Collaborators.Delete(itineraryID, targetUserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return collab.ErrNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"itinerary_id": itineraryID,
			"user_id":      targetUserID,
			"actor_id":     actorID,
		}).Info("collaborator removed")
	}
	return nil
}

func (s *CollaboratorService) enqueueInvite(ctx context.Context, target *entity.User, it *entity.Itinerary, actorID string, rec *entity.Collaborator) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	inviter, _ := s.Users.GetByID(actorID)
	inviterName := ""
	if inviter != nil {
		inviterName = inviter.Name
	}
	job := mailer.EmailJob{
		To:       target.Email,
		Template: mailer.TemplateCollaboratorInvite,
		Data: map[string]any{
			"RecipientName":  target.Name,
			"InviterName":    inviterName,
			"ItineraryTitle": it.Title,
			"Destination":    it.Destination,
			"Role":           string(rec.Role),
			"AcceptURL":      s.InviteURL + "?itinerary=" + it.ID,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", target.Email).Warn("failed to publish invite email job")
	}
}
