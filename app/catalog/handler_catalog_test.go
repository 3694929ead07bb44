package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TetianaVeremchuk/product-categories/app/browse"
	"github.com/TetianaVeremchuk/product-categories/models"
)

// --- Mock Catalog ---

type MockCatalog struct {
	Source     models.Fixtures
	FixtureErr error
	BrowseErr  error

	// Fields to capture call arguments
	lastState     *browse.FilterState
	lastProductID uint
}

func (m *MockCatalog) Fixtures(_ context.Context) (models.Fixtures, error) {
	if m.FixtureErr != nil {
		return models.Fixtures{}, m.FixtureErr
	}
	return m.Source, nil
}

func (m *MockCatalog) Browse(_ context.Context, state browse.FilterState) (browse.Result, error) {
	m.lastState = &state
	if m.BrowseErr != nil {
		return browse.Result{}, m.BrowseErr
	}

	products, err := browse.BuildViewModels(m.Source)
	if err != nil {
		return browse.Result{}, err
	}
	filtered := browse.FilterProducts(products, state)
	return browse.Result{Products: filtered, Total: len(filtered), NoMatches: len(filtered) == 0}, nil
}

func (m *MockCatalog) Product(_ context.Context, id uint) (browse.EnrichedProduct, error) {
	m.lastProductID = id
	if m.BrowseErr != nil {
		return browse.EnrichedProduct{}, m.BrowseErr
	}

	products, err := browse.BuildViewModels(m.Source)
	if err != nil {
		return browse.EnrichedProduct{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return browse.EnrichedProduct{}, models.ErrProductNotFound
}

// --- Helpers ---

func testFixtures() models.Fixtures {
	return models.Fixtures{
		Users: []models.User{
			{ID: 1, Name: "Roma", Sex: models.SexMale},
			{ID: 2, Name: "Anna", Sex: models.SexFemale},
		},
		Categories: []models.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		},
		Products: []models.Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Beer", CategoryID: 2},
			{ID: 4, Name: "Eggs", CategoryID: 1},
		},
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func codes(resp Response) []uint {
	ids := make([]uint, len(resp.Products))
	for i, p := range resp.Products {
		ids[i] = p.ID
	}
	return ids
}

// --- Tests ---

func TestHandleGet(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		mockSetup          func() *MockCatalog
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkCatalogCall   func(t *testing.T, m *MockCatalog)
	}{
		{
			name: "All products without filters",
			url:  "/catalog",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeResponse(t, rec)
				assert.Equal(t, 4, resp.Total)
				assert.Equal(t, []uint{1, 2, 3, 4}, codes(resp))
				assert.Empty(t, resp.Message)

				milk := resp.Products[0]
				assert.Equal(t, "Milk", milk.Name)
				assert.Equal(t, Category{ID: 2, Title: "Drinks", Icon: "🍺"}, milk.Category)
				assert.Equal(t, User{ID: 1, Name: "Roma", Sex: "m", Accent: "link"}, milk.User)
				assert.Equal(t, "danger", resp.Products[1].User.Accent)
			},
			checkCatalogCall: func(t *testing.T, m *MockCatalog) {
				assert.Equal(t, browse.InitialState(), *m.lastState)
			},
		},
		{
			name: "Filter by user",
			url:  "/catalog?user=2",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeResponse(t, rec)
				assert.Equal(t, []uint{2, 4}, codes(resp))
			},
			checkCatalogCall: func(t *testing.T, m *MockCatalog) {
				require.NotNil(t, m.lastState.SelectedUser)
				assert.Equal(t, "Anna", m.lastState.SelectedUser.Name)
			},
		},
		{
			name: "Search is trimmed and case-insensitive",
			url:  "/catalog?query=%20%20BE",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeResponse(t, rec)
				assert.Equal(t, []uint{3}, codes(resp))
			},
			checkCatalogCall: func(t *testing.T, m *MockCatalog) {
				assert.Equal(t, "be", m.lastState.Query)
			},
		},
		{
			name: "Filter by categories with duplicates and junk",
			url:  "/catalog?category=1&category=abc&category=1",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeResponse(t, rec)
				assert.Equal(t, []uint{2, 4}, codes(resp))
			},
			checkCatalogCall: func(t *testing.T, m *MockCatalog) {
				assert.Equal(t, []uint{1}, m.lastState.SelectedCategories)
			},
		},
		{
			name: "Combined filters",
			url:  "/catalog?user=1&query=mi&category=2",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeResponse(t, rec)
				assert.Equal(t, 1, resp.Total)
				assert.Equal(t, "Milk", resp.Products[0].Name)
			},
		},
		{
			name: "No matches",
			url:  "/catalog?query=zzz",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeResponse(t, rec)
				assert.Equal(t, 0, resp.Total)
				assert.NotNil(t, resp.Products)
				assert.Len(t, resp.Products, 0)
				assert.Equal(t, NoMatchesMessage, resp.Message)
			},
		},
		{
			name: "Unknown user",
			url:  "/catalog?user=99",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "Unknown user", errResp["error"])
			},
			checkCatalogCall: func(t *testing.T, m *MockCatalog) {
				assert.Nil(t, m.lastState, "Browse should not be called for an unknown user")
			},
		},
		{
			name: "Invalid user id is ignored",
			url:  "/catalog?user=abc",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{Source: testFixtures()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeResponse(t, rec)
				assert.Equal(t, 4, resp.Total)
			},
			checkCatalogCall: func(t *testing.T, m *MockCatalog) {
				assert.Nil(t, m.lastState.SelectedUser)
			},
		},
		{
			name: "Fixture load error",
			url:  "/catalog?user=1",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{FixtureErr: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "failed to get products", errResp["error"])
			},
		},
		{
			name: "Browse error",
			url:  "/catalog",
			mockSetup: func() *MockCatalog {
				return &MockCatalog{BrowseErr: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "failed to get products", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mock := tc.mockSetup()
			handler := NewCatalogHandler(mock)
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGet(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}

			if tc.checkCatalogCall != nil {
				tc.checkCatalogCall(t, mock)
			}
		})
	}
}
