package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jannivaran/internal/application/escalation/usecases"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/constants"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
	"jannivaran/internal/shared/utils"
)

type EscalateComplaintRequest struct {
	Reason string `json:"reason" validate:"required,oneof=sla-breach manual priority"`
	Notes  string `json:"notes" validate:"max=2000"`
}

type ResolveEscalationRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type EscalationHandler struct {
	escalateUC        usecases.EscalateComplaintExecutor
	resolveUC         usecases.ResolveEscalationExecutor
	listUC            usecases.ListEscalationsExecutor
	listForComplaints usecases.ListComplaintEscalationsExecutor
	sweepUC           usecases.SweepExecutor
	userRepo          user.UserRepository
	logger            logger.Interface
}

func NewEscalationHandler(
	escalateUC usecases.EscalateComplaintExecutor,
	resolveUC usecases.ResolveEscalationExecutor,
	listUC usecases.ListEscalationsExecutor,
	listForComplaints usecases.ListComplaintEscalationsExecutor,
	sweepUC usecases.SweepExecutor,
	userRepo user.UserRepository,
) *EscalationHandler {
	return &EscalationHandler{
		escalateUC:        escalateUC,
		resolveUC:         resolveUC,
		listUC:            listUC,
		listForComplaints: listForComplaints,
		sweepUC:           sweepUC,
		userRepo:          userRepo,
		logger:            logger.NewLogger(),
	}
}

func (h *EscalationHandler) actorName(c *gin.Context) string {
	userID := c.GetUint(constants.ContextKeyUserID)
	if userID == 0 {
		return ""
	}

	u, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Warnw("failed to resolve actor name", "error", err, "user_id", userID)
		return ""
	}
	return u.Name()
}

// EscalateComplaint handles POST /complaints/:id/escalate
func (h *EscalationHandler) EscalateComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EscalateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for escalate complaint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.EscalateComplaintCommand{
		ComplaintID: complaintID,
		Reason:      req.Reason,
		Notes:       req.Notes,
		Viewer:      viewerFromContext(c),
		ActorName:   h.actorName(c),
	}

	result, err := h.escalateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint escalated successfully")
}

// ResolveEscalation handles POST /escalations/:id/resolve
func (h *EscalationHandler) ResolveEscalation(c *gin.Context) {
	escalationID, err := parseEscalationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveEscalationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve escalation", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResolveEscalationCommand{
		EscalationID: escalationID,
		Notes:        req.Notes,
		Viewer:       viewerFromContext(c),
		ActorName:    h.actorName(c),
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Escalation resolved successfully", result)
}

// ListEscalations handles GET /escalations
func (h *EscalationHandler) ListEscalations(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListEscalationsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Viewer:   viewerFromContext(c),
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Escalations, result.Total, result.Page, result.PageSize)
}

// ListComplaintEscalations handles GET /complaints/:id/escalations
func (h *EscalationHandler) ListComplaintEscalations(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListComplaintEscalationsQuery{
		ComplaintID: complaintID,
		Viewer:      viewerFromContext(c),
	}

	result, err := h.listForComplaints.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RunSweep handles POST /escalations/sweep. It runs one pass of the SLA
// sweep on demand, outside the scheduled interval.
func (h *EscalationHandler) RunSweep(c *gin.Context) {
	result, err := h.sweepUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sweep completed", result)
}

func parseEscalationID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid escalation ID")
	}
	return uint(id), nil
}
