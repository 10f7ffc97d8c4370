package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "hucha/internal/errors"
	"hucha/internal/models"
	"hucha/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn    func(userID uint, name, color string) (*models.Category, error)
	getUserCategoriesFn func(userID uint) ([]models.Category, error)
	getCategoryByIDFn   func(userID, categoryID uint) (*models.Category, error)
	updateCategoryFn    func(userID, categoryID uint, fields services.CategoryUpdateFields) (*models.Category, error)
	deleteCategoryFn    func(userID, categoryID uint) error
}

func (m *mockCategoryService) CreateCategory(userID uint, name, color string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, name, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	if m.getUserCategoriesFn != nil {
		return m.getUserCategoriesFn(userID)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID uint, fields services.CategoryUpdateFields) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, fields)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID uint) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/categories", handler.GetUserCategories)
	auth.POST("/categories", handler.CreateCategory)
	auth.POST("/categories/update", handler.UpdateCategory)
	auth.POST("/categories/delete", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns_201_on_success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(_ uint, name, color string) (*models.Category, error) {
				return &models.Category{
					Base:  models.Base{ID: 1},
					Name:  name,
					Color: color,
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/categories", `{"name":"Comida","color":"#FF5733"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertEnvelope(t, result, "success", "Categoría creada exitosamente")
		data := result["data"].(map[string]interface{})
		if data["name"] != "Comida" {
			t.Errorf("expected name Comida, got %v", data["name"])
		}
	})

	t.Run("returns_422_on_bad_color", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Comida","color":"rojo"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		if _, ok := fieldErrors(t, parseJSON(t, rec))["color"]; !ok {
			t.Error("expected validation error on color field")
		}
	})

	t.Run("returns_422_on_duplicate_name", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(uint, string, string) (*models.Category, error) {
				return nil, apperrors.ErrDuplicateCategory
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/categories", `{"name":"Comida","color":"#FF5733"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertEnvelope(t, parseJSON(t, rec), "error", "Ya existe una categoría con ese nombre")
	})

	t.Run("returns_401_without_user", func(t *testing.T) {
		r := gin.New()
		handler := NewCategoryHandler(&mockCategoryService{})
		r.POST("/categories", handler.CreateCategory)

		rec := doRequest(r, "POST", "/categories", `{"name":"Comida","color":"#FF5733"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetUserCategories(t *testing.T) {
	catSvc := &mockCategoryService{
		getUserCategoriesFn: func(uint) ([]models.Category, error) {
			return []models.Category{
				{Base: models.Base{ID: 1}, Name: "Comida", Color: "#111111"},
				{Base: models.Base{ID: 2}, Name: "Ocio", Color: "#222222"},
			}, nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(catSvc))

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(data))
	}
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("returns_404_when_not_owned", func(t *testing.T) {
		catSvc := &mockCategoryService{
			updateCategoryFn: func(uint, uint, services.CategoryUpdateFields) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/categories/update", `{"id":42,"name":"Nueva"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertEnvelope(t, parseJSON(t, rec), "error", "Categoría no encontrada o no pertenece al usuario")
	})

	t.Run("returns_422_without_id", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories/update", `{"name":"Nueva"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		if _, ok := fieldErrors(t, parseJSON(t, rec))["id"]; !ok {
			t.Error("expected validation error on id field")
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns_200_on_success", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories/delete", `{"id":1}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		assertEnvelope(t, parseJSON(t, rec), "success", "Categoría eliminada exitosamente")
	})

	t.Run("returns_422_when_in_use", func(t *testing.T) {
		catSvc := &mockCategoryService{
			deleteCategoryFn: func(uint, uint) error {
				return apperrors.ErrCategoryInUse
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/categories/delete", `{"id":1}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertEnvelope(t, parseJSON(t, rec), "error", "No se puede eliminar la categoría porque está en uso en algunas transacciones")
	})
}
