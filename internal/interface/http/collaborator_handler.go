package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wanderplan/wanderplan/internal/application"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/pkg/response"
	"github.com/wanderplan/wanderplan/pkg/validation"
)

type CollaboratorHandler struct {
	Svc    *application.CollaboratorService
	Logger *logrus.Logger
}

func NewCollaboratorHandler(svc *application.CollaboratorService, logger *logrus.Logger) *CollaboratorHandler {
	return &CollaboratorHandler{Svc: svc, Logger: logger}
}

type inviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=viewer editor admin"`
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=viewer editor admin"`
}

func (h *CollaboratorHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	recs, err := h.Svc.List(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, collaboratorsJSON(recs), "collaborators", gin.H{"count": len(recs)})
}

func (h *CollaboratorHandler) Invite(c *gin.Context) {
	uid := c.GetString("userID")
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.Invite(c.Request.Context(), uid, c.Param("id"), req.Email, entity.Role(req.Role))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, collaboratorJSON(rec), "collaborator invited", nil)
}

func (h *CollaboratorHandler) Accept(c *gin.Context) {
	uid := c.GetString("userID")
	rec, err := h.Svc.Accept(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, collaboratorJSON(rec), "invitation accepted", nil)
}

func (h *CollaboratorHandler) ChangeRole(c *gin.Context) {
	uid := c.GetString("userID")
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.ChangeRole(c.Request.Context(), uid, c.Param("id"), c.Param("userId"), entity.Role(req.Role))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, collaboratorJSON(rec), "role updated", nil)
}

func (h *CollaboratorHandler) Remove(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Remove(c.Request.Context(), uid, c.Param("id"), c.Param("userId")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"removed": true}, "collaborator removed", nil)
}
