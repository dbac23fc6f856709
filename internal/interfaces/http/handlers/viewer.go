package handlers

import (
	"github.com/gin-gonic/gin"

	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/shared/authorization"
	"jannivaran/internal/shared/constants"
)

// viewerFromContext builds the request-scoped identity from the values set
// by the auth middleware.
func viewerFromContext(c *gin.Context) complaint.Viewer {
	return complaint.Viewer{
		UserID:     c.GetUint(constants.ContextKeyUserID),
		Role:       authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
		Department: c.GetString(constants.ContextKeyUserDepartment),
	}
}
