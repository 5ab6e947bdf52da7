package handlers

import (
	"log/slog"
	"net/http"

	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/models"
	service "github.com/carespace/carespace-api/internal/services"
	"github.com/carespace/carespace-api/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct godoc
// @Summary      Create a product
// @Description  Unset price tiers are stored as 0.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      models.CreateProductRequest  true  "Product"
// @Success      201      {object}  models.Product
// @Failure      400      {object}  response.APIResponse
// @Router       /api/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateProductRequest
		if !decodeBody(w, r, &req) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			fail(w, r, "Product creation failed", err, slog.String("slug", req.Slug))
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Product created", slog.String("productId", product.ID.String()))
		response.WriteJson(w, http.StatusCreated, product)
	}
}

// ListProducts godoc
// @Summary      List all products with raw price tiers
// @Tags         products
// @Produce      json
// @Success      200  {array}   models.Product
// @Failure      500  {object}  response.APIResponse
// @Router       /api/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListProducts(r.Context())
		if err != nil {
			fail(w, r, "Failed to fetch products", err)
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

// GetProduct godoc
// @Summary      Get a product by slug
// @Description  price holds the tier for duration; unknown durations fall back to 1month.
// @Tags         products
// @Produce      json
// @Param        slug      path      string  true   "Product slug"
// @Param        duration  query     string  false  "1month, 2month or 3month"
// @Success      200       {object}  models.Product
// @Failure      404       {object}  response.APIResponse
// @Router       /api/products/{slug} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		product, err := h.productService.GetProductBySlug(r.Context(), slug, r.URL.Query().Get("duration"))
		if err != nil {
			fail(w, r, "Failed to fetch product", err, slog.String("slug", slug))
			return
		}

		response.WriteJson(w, http.StatusOK, product)
	}
}

// ListProductsByCategory godoc
// @Summary      List the products of a category
// @Tags         products
// @Produce      json
// @Param        slug      path      string  true   "Category slug"
// @Param        duration  query     string  false  "1month, 2month or 3month"
// @Success      200       {array}   models.Product
// @Failure      404       {object}  response.APIResponse
// @Router       /api/products/category/{slug} [get]
func (h *ProductHandler) ListProductsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		products, err := h.productService.ListProductsByCategory(r.Context(), slug, r.URL.Query().Get("duration"))
		if err != nil {
			fail(w, r, "Failed to fetch category products", err, slog.String("category", slug))
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

// ListRelatedProducts godoc
// @Summary      List up to 4 other products from the same category
// @Tags         products
// @Produce      json
// @Param        slug      path      string  true   "Product slug"
// @Param        duration  query     string  false  "1month, 2month or 3month"
// @Success      200       {array}   models.Product
// @Failure      404       {object}  response.APIResponse
// @Router       /api/products/{slug}/related [get]
func (h *ProductHandler) ListRelatedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		products, err := h.productService.ListRelatedProducts(r.Context(), slug, r.URL.Query().Get("duration"))
		if err != nil {
			fail(w, r, "Failed to fetch related products", err, slog.String("slug", slug))
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

// SearchProducts godoc
// @Summary      Search products by product or category name
// @Tags         products
// @Produce      json
// @Param        q    query     string  true  "Search text"
// @Success      200  {array}   models.ProductSearchResult
// @Failure      400  {object}  response.APIResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query().Get("q")

		results, err := h.productService.SearchProducts(r.Context(), query)
		if err != nil {
			fail(w, r, "Product search failed", err, slog.String("query", query))
			return
		}

		response.WriteJson(w, http.StatusOK, results)
	}
}

// UpdateProduct godoc
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        slug     path      string                       true  "Product slug"
// @Param        product  body      models.UpdateProductRequest  true  "Fields to change"
// @Success      200      {object}  models.Product
// @Failure      400      {object}  response.APIResponse
// @Failure      401      {object}  response.APIResponse
// @Failure      403      {object}  response.APIResponse
// @Failure      404      {object}  response.APIResponse
// @Security     SessionCookie
// @Router       /api/products/{slug} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		var req models.UpdateProductRequest
		if !decodeBody(w, r, &req) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), slug, &req)
		if err != nil {
			fail(w, r, "Product update failed", err, slog.String("slug", slug))
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Product updated", slog.String("productId", product.ID.String()))
		response.WriteJson(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Param        slug  path  string  true  "Product slug"
// @Success      204
// @Failure      401  {object}  response.APIResponse
// @Failure      403  {object}  response.APIResponse
// @Failure      404  {object}  response.APIResponse
// @Security     SessionCookie
// @Router       /api/products/{slug} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		if err := h.productService.DeleteProduct(r.Context(), slug); err != nil {
			fail(w, r, "Product deletion failed", err, slog.String("slug", slug))
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Product deleted", slog.String("slug", slug))
		w.WriteHeader(http.StatusNoContent)
	}
}
