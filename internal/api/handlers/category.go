package handlers

import (
	"log/slog"
	"net/http"

	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/models"
	service "github.com/carespace/carespace-api/internal/services"
	"github.com/carespace/carespace-api/internal/utils/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category  body      models.CreateCategoryRequest  true  "Category"
// @Success      201       {object}  models.Category
// @Failure      400       {object}  response.APIResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateCategoryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			fail(w, r, "Category creation failed", err, slog.String("slug", req.Slug))
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Category created", slog.String("categoryId", category.ID.String()))
		response.WriteJson(w, http.StatusCreated, category)
	}
}

// ListCategories godoc
// @Summary      List categories with product counts
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      500  {object}  response.APIResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			fail(w, r, "Failed to fetch categories", err)
			return
		}

		response.WriteJson(w, http.StatusOK, categories)
	}
}

// GetCategory godoc
// @Summary      Get a category by slug
// @Tags         categories
// @Produce      json
// @Param        slug  path      string  true  "Category slug"
// @Success      200   {object}  models.Category
// @Failure      404   {object}  response.APIResponse
// @Router       /api/categories/{slug} [get]
func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		category, err := h.categoryService.GetCategoryBySlug(r.Context(), slug)
		if err != nil {
			fail(w, r, "Failed to fetch category", err, slog.String("slug", slug))
			return
		}

		response.WriteJson(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
// @Summary      Delete a category and all of its products
// @Tags         categories
// @Param        slug  path  string  true  "Category slug"
// @Success      204
// @Failure      401  {object}  response.APIResponse
// @Failure      403  {object}  response.APIResponse
// @Failure      404  {object}  response.APIResponse
// @Security     SessionCookie
// @Router       /api/categories/{slug} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		if err := h.categoryService.DeleteCategory(r.Context(), slug); err != nil {
			fail(w, r, "Category deletion failed", err, slog.String("slug", slug))
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Category deleted", slog.String("slug", slug))
		w.WriteHeader(http.StatusNoContent)
	}
}
