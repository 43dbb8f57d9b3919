package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Arnab1999india/bazaar/apperrors"
	"github.com/Arnab1999india/bazaar/middleware"
	"github.com/Arnab1999india/bazaar/models"
	"github.com/Arnab1999india/bazaar/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock Service ---

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context, q services.ProductQuery) (*services.ProductPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ProductPage), args.Error(1)
}

func (m *MockProductService) GetProduct(ctx context.Context, id string) (*services.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ProductDetail), args.Error(1)
}

func (m *MockProductService) GetVariants(ctx context.Context, id string) ([]models.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductVariant), args.Error(1)
}

func (m *MockProductService) Recommendations(ctx context.Context, id string, limit int) ([]models.Product, error) {
	args := m.Called(ctx, id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, owner string, in services.CreateProductInput) (*models.Product, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, owner, id string, in services.UpdateProductInput) (*models.Product, error) {
	args := m.Called(ctx, owner, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, owner, id string) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func newProductRouter(svc ProductServiceAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pc := NewProductController(svc, nil)

	r := gin.New()
	r.Use(apperrors.Middleware())
	r.GET("/products", pc.ListProducts)
	r.GET("/products/:id", pc.GetProduct)
	r.GET("/products/:id/variants", pc.GetVariants)
	r.POST("/products", middleware.RequireUser(), pc.CreateProduct)
	r.DELETE("/products/:id", middleware.RequireUser(), pc.DeleteProduct)
	return r
}

// --- Tests ---

func TestListProductsController(t *testing.T) {
	t.Run("Success - 200 OK", func(t *testing.T) {
		mockService := new(MockProductService)
		expected := services.ProductQuery{
			Category: "electronics",
			SortBy:   "price",
			Page:     2,
			Limit:    5,
		}
		mockService.On("ListProducts", mock.Anything, expected).Return(&services.ProductPage{
			Products:   []models.Product{{Name: "mouse"}},
			Pagination: services.Pagination{Page: 2, Limit: 5, Total: 6},
		}, nil).Once()

		router := newProductRouter(mockService)
		req, _ := http.NewRequest(http.MethodGet, "/products?category=electronics&sortBy=price&page=2&limit=5", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total":6`)
		assert.Contains(t, recorder.Body.String(), "mouse")
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed numeric filter is dropped, not rejected", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("ListProducts", mock.Anything, mock.MatchedBy(func(q services.ProductQuery) bool {
			return q.MinPrice == nil && q.Page == 0
		})).Return(&services.ProductPage{Products: []models.Product{}}, nil).Once()

		router := newProductRouter(mockService)
		req, _ := http.NewRequest(http.MethodGet, "/products?minPrice=abc&page=xyz", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Service failure - 500 with opaque error", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("ListProducts", mock.Anything, mock.Anything).
			Return(nil, apperrors.Internal("failed to list products", assert.AnError)).Once()

		router := newProductRouter(mockService)
		req, _ := http.NewRequest(http.MethodGet, "/products", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":false`)
		assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
	})
}

func TestGetProductController(t *testing.T) {
	t.Run("Not found - 404", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("GetProduct", mock.Anything, "abc").
			Return(nil, apperrors.NotFound("product not found")).Once()

		router := newProductRouter(mockService)
		req, _ := http.NewRequest(http.MethodGet, "/products/abc", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "NOT_FOUND")
	})

	t.Run("Success - 200 with brand detail", func(t *testing.T) {
		mockService := new(MockProductService)
		detail := &services.ProductDetail{
			Product:     models.Product{Name: "cam"},
			BrandDetail: &models.BrandSummary{Name: "Nikon"},
		}
		mockService.On("GetProduct", mock.Anything, "abc").Return(detail, nil).Once()

		router := newProductRouter(mockService)
		req, _ := http.NewRequest(http.MethodGet, "/products/abc", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Nikon")
	})
}

func TestCreateProductController(t *testing.T) {
	t.Run("Missing identity - 401", func(t *testing.T) {
		router := newProductRouter(new(MockProductService))
		req, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Success - 201 Created", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("CreateProduct", mock.Anything, "seller-1", mock.MatchedBy(func(in services.CreateProductInput) bool {
			return in.Name == "Mouse"
		})).Return(&models.Product{Name: "Mouse", Owner: "seller-1"}, nil).Once()

		router := newProductRouter(mockService)
		payload := `{"name": "Mouse", "description": "a mouse", "price": 10, "category": "electronics"}`
		req, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "seller-1")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid body - 400", func(t *testing.T) {
		router := newProductRouter(new(MockProductService))
		req, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "seller-1")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VALIDATION")
	})
}

func TestDeleteProductController(t *testing.T) {
	t.Run("Success - 200 with owner passed through", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("DeleteProduct", mock.Anything, "seller-1", "abc").Return(nil).Once()

		router := newProductRouter(mockService)
		req, _ := http.NewRequest(http.MethodDelete, "/products/abc", nil)
		req.Header.Set(middleware.UserIDHeader, "seller-1")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})
}
