package categories

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/TetianaVeremchuk/product-categories/app/respond"
	"github.com/TetianaVeremchuk/product-categories/logger"
	"github.com/TetianaVeremchuk/product-categories/models"
)

type CategoryResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID uint   `json:"ownerId"`
}

type CategoryProvider interface {
	Fixtures(ctx context.Context) (models.Fixtures, error)
}

type CategoryHandler struct {
	catalog CategoryProvider
}

func NewCategoryHandler(c CategoryProvider) *CategoryHandler {
	return &CategoryHandler{catalog: c}
}

// HandleGetAll lists the categories for the category filter buttons.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	fixtures, err := h.catalog.Fixtures(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to fetch categories", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(fixtures.Categories))
	for i, c := range fixtures.Categories {
		response[i] = CategoryResponse{
			ID:      c.ID,
			Title:   c.Title,
			Icon:    c.Icon,
			OwnerID: c.OwnerID,
		}
	}

	respond.JSON(w, http.StatusOK, response)
}
