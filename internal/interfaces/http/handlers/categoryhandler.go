package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jannivaran/internal/domain/classification"
	"jannivaran/internal/shared/utils"
)

type CategoryResponse struct {
	Name       string  `json:"name"`
	Department string  `json:"department"`
	SLAHours   float64 `json:"sla_hours"`
}

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories handles GET /categories. The listing is public so citizens
// can see departments and resolution windows before filing.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	entries := classification.Entries()

	out := make([]CategoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CategoryResponse{
			Name:       e.Name,
			Department: e.Department,
			SLAHours:   e.SLAHours,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", out)
}

// SuggestCategory handles GET /categories/suggest?description=...
func (h *CategoryHandler) SuggestCategory(c *gin.Context) {
	description := c.Query("description")

	suggested := classification.SuggestCategory(description)
	entry := classification.Lookup(suggested.String())

	utils.SuccessResponse(c, http.StatusOK, "", CategoryResponse{
		Name:       entry.Name,
		Department: entry.Department,
		SLAHours:   entry.SLAHours,
	})
}
