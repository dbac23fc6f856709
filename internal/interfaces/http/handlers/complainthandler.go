package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jannivaran/internal/application/complaint/usecases"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/constants"
	"jannivaran/internal/shared/logger"
	"jannivaran/internal/shared/utils"
)

type ComplaintHandler struct {
	fileComplaintUC   usecases.FileComplaintExecutor
	getComplaintUC    usecases.GetComplaintExecutor
	trackComplaintUC  usecases.TrackComplaintExecutor
	listComplaintsUC  usecases.ListComplaintsExecutor
	changeStatusUC    usecases.ChangeStatusExecutor
	changePriorityUC  usecases.ChangePriorityExecutor
	assignComplaintUC usecases.AssignComplaintExecutor
	deleteComplaintUC usecases.DeleteComplaintExecutor
	interveneUC       usecases.InterveneExecutor
	getAuditTrailUC   usecases.GetAuditTrailExecutor
	userRepo          user.UserRepository
	logger            logger.Interface
}

func NewComplaintHandler(
	fileComplaintUC usecases.FileComplaintExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	trackComplaintUC usecases.TrackComplaintExecutor,
	listComplaintsUC usecases.ListComplaintsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	changePriorityUC usecases.ChangePriorityExecutor,
	assignComplaintUC usecases.AssignComplaintExecutor,
	deleteComplaintUC usecases.DeleteComplaintExecutor,
	interveneUC usecases.InterveneExecutor,
	getAuditTrailUC usecases.GetAuditTrailExecutor,
	userRepo user.UserRepository,
) *ComplaintHandler {
	return &ComplaintHandler{
		fileComplaintUC:   fileComplaintUC,
		getComplaintUC:    getComplaintUC,
		trackComplaintUC:  trackComplaintUC,
		listComplaintsUC:  listComplaintsUC,
		changeStatusUC:    changeStatusUC,
		changePriorityUC:  changePriorityUC,
		assignComplaintUC: assignComplaintUC,
		deleteComplaintUC: deleteComplaintUC,
		interveneUC:       interveneUC,
		getAuditTrailUC:   getAuditTrailUC,
		userRepo:          userRepo,
		logger:            logger.NewLogger(),
	}
}

// actorName resolves the display name of the authenticated user for audit
// entries. Failures degrade to an empty name rather than failing the request.
func (h *ComplaintHandler) actorName(c *gin.Context) string {
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

// FileComplaint handles POST /complaints
func (h *ComplaintHandler) FileComplaint(c *gin.Context) {
	var req FileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for file complaint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	citizenID := c.GetUint(constants.ContextKeyUserID)
	cmd := req.ToCommand(citizenID)

	result, err := h.fileComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint filed successfully")
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetComplaintQuery{
		ComplaintID: complaintID,
		Viewer:      viewerFromContext(c),
	}

	result, err := h.getComplaintUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TrackComplaint handles GET /track/:tracking_id without authentication.
func (h *ComplaintHandler) TrackComplaint(c *gin.Context) {
	query := usecases.TrackComplaintQuery{
		TrackingID: c.Param("tracking_id"),
	}

	result, err := h.trackComplaintUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListComplaints handles GET /complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	req := parseListComplaintsRequest(c)

	query := usecases.ListComplaintsQuery{
		Status:    req.Status,
		Priority:  req.Priority,
		Category:  req.Category,
		SLAStatus: req.SLAStatus,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Viewer:    viewerFromContext(c),
	}

	result, err := h.listComplaintsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total, result.Page, result.PageSize)
}

// ChangeStatus handles PATCH /complaints/:id/status
func (h *ComplaintHandler) ChangeStatus(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeStatusCommand{
		ComplaintID:    complaintID,
		NewStatus:      req.Status,
		ResolutionNote: req.ResolutionNote,
		ActorID:        c.GetUint(constants.ContextKeyUserID),
		ActorName:      h.actorName(c),
		ActorRole:      c.GetString(constants.ContextKeyUserRole),
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// ChangePriority handles PATCH /complaints/:id/priority
func (h *ComplaintHandler) ChangePriority(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change priority", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangePriorityCommand{
		ComplaintID: complaintID,
		NewPriority: req.Priority,
		ActorID:     c.GetUint(constants.ContextKeyUserID),
		ActorName:   h.actorName(c),
		ActorRole:   c.GetString(constants.ContextKeyUserRole),
	}

	result, err := h.changePriorityUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Priority updated successfully", result)
}

// AssignComplaint handles POST /complaints/:id/assign
func (h *ComplaintHandler) AssignComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign complaint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignComplaintCommand{
		ComplaintID: complaintID,
		OfficialID:  req.OfficialID,
		ActorID:     c.GetUint(constants.ContextKeyUserID),
		ActorName:   h.actorName(c),
		ActorRole:   c.GetString(constants.ContextKeyUserRole),
	}

	result, err := h.assignComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint assigned successfully", result)
}

// DeleteComplaint handles DELETE /complaints/:id
func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteComplaintCommand{
		ComplaintID: complaintID,
		Viewer:      viewerFromContext(c),
		ActorName:   h.actorName(c),
	}

	if err := h.deleteComplaintUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Intervene handles POST /complaints/:id/intervene
func (h *ComplaintHandler) Intervene(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req InterveneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for intervene", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.InterveneCommand{
		ComplaintID: complaintID,
		Mode:        req.Mode,
		Viewer:      viewerFromContext(c),
		ActorName:   h.actorName(c),
	}

	result, err := h.interveneUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAuditTrail handles GET /complaints/:id/audit
func (h *ComplaintHandler) GetAuditTrail(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetAuditTrailQuery{
		ComplaintID: complaintID,
		Viewer:      viewerFromContext(c),
	}

	result, err := h.getAuditTrailUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
