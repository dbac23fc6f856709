package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jannivaran/internal/application/complaint/usecases"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/utils"
)

type FileComplaintRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required"`
	Location    string `json:"location" binding:"max=500"`
}

func (r *FileComplaintRequest) ToCommand(citizenID uint) usecases.FileComplaintCommand {
	return usecases.FileComplaintCommand{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
		CitizenID:   citizenID,
	}
}

type ChangeStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	ResolutionNote string `json:"resolution_note" binding:"max=10000"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type AssignComplaintRequest struct {
	OfficialID uint `json:"official_id" binding:"required"`
}

type InterveneRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type ListComplaintsRequest struct {
	Page      int
	PageSize  int
	Status    string
	Priority  string
	Category  string
	SLAStatus string
	SortBy    string
	SortOrder string
}

func parseListComplaintsRequest(c *gin.Context) *ListComplaintsRequest {
	pagination := utils.ParsePagination(c)

	return &ListComplaintsRequest{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		SLAStatus: c.Query("sla_status"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

func parseComplaintID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid complaint ID")
	}
	return uint(id), nil
}
