package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/TetianaVeremchuk/product-categories/app/browse"
	"github.com/TetianaVeremchuk/product-categories/app/respond"
	"github.com/TetianaVeremchuk/product-categories/logger"
	"github.com/TetianaVeremchuk/product-categories/models"
)

// NoMatchesMessage accompanies an empty product list.
const NoMatchesMessage = "No products matching selected criteria"

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
	Message  string    `json:"message,omitempty"`
}

type Category struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type User struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Sex    string `json:"sex"`
	Accent string `json:"accent"`
}

type Product struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	User     User     `json:"user"`
}

type ProductProvider interface {
	Fixtures(ctx context.Context) (models.Fixtures, error)
	Browse(ctx context.Context, state browse.FilterState) (browse.Result, error)
	Product(ctx context.Context, id uint) (browse.EnrichedProduct, error)
}

type CatalogHandler struct {
	catalog ProductProvider
}

func NewCatalogHandler(c ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
	}
}

// HandleGet lists the products matching the user, query and category params.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	q := r.URL.Query()
	state := browse.InitialState()

	if uStr := q.Get("user"); uStr != "" {
		if id, err := strconv.ParseUint(uStr, 10, 64); err == nil {
			fixtures, err := h.catalog.Fixtures(r.Context())
			if err != nil {
				log.Error("Failed to load fixtures", zap.Error(err))
				respond.Error(w, http.StatusInternalServerError, "failed to get products")
				return
			}
			user, err := browse.ResolveUser(fixtures.Users, uint(id))
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "Unknown user")
				return
			}
			state = browse.Reduce(state, browse.SelectUser{User: user})
		}
	}

	if query := q.Get("query"); query != "" {
		state = browse.Reduce(state, browse.SetQuery{Raw: query})
	}

	for _, cStr := range q["category"] {
		id, err := strconv.ParseUint(cStr, 10, 64)
		if err != nil || state.HasCategory(uint(id)) {
			continue
		}
		state = browse.Reduce(state, browse.ToggleCategory{ID: uint(id)})
	}

	res, err := h.catalog.Browse(r.Context(), state)
	if err != nil {
		log.Error("Failed to browse products", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	products := make([]Product, len(res.Products))
	for i, p := range res.Products {
		products[i] = toProduct(p)
	}

	response := Response{
		Total:    res.Total,
		Products: products,
	}
	if res.NoMatches {
		response.Message = NoMatchesMessage
	}
	respond.JSON(w, http.StatusOK, response)
}

// HandleGetProduct returns one product by its id path value.
func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.catalog.Product(r.Context(), uint(id))
	if errors.Is(err, models.ErrProductNotFound) {
		respond.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to retrieve product", zap.Uint64("product_id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	respond.JSON(w, http.StatusOK, toProduct(product))
}

func toProduct(p browse.EnrichedProduct) Product {
	return Product{
		ID:   p.ID,
		Name: p.Name,
		Category: Category{
			ID:    p.Category.ID,
			Title: p.Category.Title,
			Icon:  p.Category.Icon,
		},
		User: User{
			ID:     p.User.ID,
			Name:   p.User.Name,
			Sex:    string(p.User.Sex),
			Accent: p.User.Accent(),
		},
	}
}
