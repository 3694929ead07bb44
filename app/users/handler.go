package users

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/TetianaVeremchuk/product-categories/app/respond"
	"github.com/TetianaVeremchuk/product-categories/logger"
	"github.com/TetianaVeremchuk/product-categories/models"
)

type UserResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Sex    string `json:"sex"`
	Accent string `json:"accent"`
}

type UserProvider interface {
	Fixtures(ctx context.Context) (models.Fixtures, error)
}

type UserHandler struct {
	catalog UserProvider
}

func NewUserHandler(c UserProvider) *UserHandler {
	return &UserHandler{catalog: c}
}

// HandleGetAll lists the users shown as owner filter tabs.
func (h *UserHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	fixtures, err := h.catalog.Fixtures(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to fetch users", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	response := make([]UserResponse, len(fixtures.Users))
	for i, u := range fixtures.Users {
		response[i] = UserResponse{
			ID:     u.ID,
			Name:   u.Name,
			Sex:    string(u.Sex),
			Accent: u.Accent(),
		}
	}

	respond.JSON(w, http.StatusOK, response)
}
