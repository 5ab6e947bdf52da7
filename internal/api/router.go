package api

import (
	"net/http"

	"github.com/carespace/carespace-api/internal/api/handlers"
	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/metrics"
	"github.com/carespace/carespace-api/internal/utils/response"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	// registers the generated OpenAPI document with swag
	_ "github.com/carespace/carespace-api/docs"
)

type Handlers struct {
	Category *handlers.CategoryHandler
	Product  *handlers.ProductHandler
	Lead     *handlers.LeadHandler
	Auth     *handlers.AuthHandler
	Sitemap  *handlers.SitemapHandler
	// Health is optional.
	Health http.Handler
}

// NewRouter registers every route and wraps the mux with metrics, request
// logging and tracing, outermost last.
func NewRouter(h Handlers, authMiddleware *middleware.AuthMiddleware) http.Handler {

	mux := http.NewServeMux()

	// Categories. The storefront calls list endpoints with a trailing slash.
	mux.HandleFunc("POST /api/categories", h.Category.CreateCategory())
	mux.HandleFunc("POST /api/categories/{$}", h.Category.CreateCategory())
	mux.HandleFunc("GET /api/categories", h.Category.ListCategories())
	mux.HandleFunc("GET /api/categories/{$}", h.Category.ListCategories())
	mux.HandleFunc("GET /api/categories/{slug}", h.Category.GetCategory())
	mux.HandleFunc("DELETE /api/categories/{slug}", authMiddleware.RequireAdmin(h.Category.DeleteCategory()))

	// Products. Literal segments outrank {slug}.
	mux.HandleFunc("POST /api/products", h.Product.CreateProduct())
	mux.HandleFunc("POST /api/products/{$}", h.Product.CreateProduct())
	mux.HandleFunc("GET /api/products", h.Product.ListProducts())
	mux.HandleFunc("GET /api/products/{$}", h.Product.ListProducts())
	mux.HandleFunc("GET /api/products/search", h.Product.SearchProducts())
	mux.HandleFunc("GET /api/products/{slug}", h.Product.GetProduct())
	mux.HandleFunc("GET /api/products/{first}/{second}", productSubroutes(h.Product))
	mux.HandleFunc("PUT /api/products/{slug}", authMiddleware.RequireAdmin(h.Product.UpdateProduct()))
	mux.HandleFunc("DELETE /api/products/{slug}", authMiddleware.RequireAdmin(h.Product.DeleteProduct()))

	// Leads
	mux.HandleFunc("POST /api/leads", h.Lead.CreateLead())
	mux.HandleFunc("POST /api/leads/{$}", h.Lead.CreateLead())
	mux.HandleFunc("GET /api/leads", h.Lead.ListLeads())
	mux.HandleFunc("GET /api/leads/{$}", h.Lead.ListLeads())
	mux.HandleFunc("GET /api/leads/{id}", h.Lead.GetLead())

	// Session
	mux.HandleFunc("POST /auth/google-login", h.Auth.GoogleLogin())
	mux.HandleFunc("GET /auth/me", authMiddleware.Authenticate(h.Auth.Me()))
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout())

	// SEO and operations
	mux.HandleFunc("GET /sitemap.xml", h.Sitemap.Sitemap())
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	if h.Health != nil {
		mux.Handle("GET /health", h.Health)
	}

	var handler http.Handler = mux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "carespace-api")

	return handler
}

// productSubroutes serves the two-segment product paths. A single pattern is
// needed because /category/{slug} and /{slug}/related overlap on
// /category/related, which the mux rejects as ambiguous; the category listing
// wins that case.
func productSubroutes(h *handlers.ProductHandler) http.HandlerFunc {

	byCategory := h.ListProductsByCategory()
	related := h.ListRelatedProducts()

	return func(w http.ResponseWriter, r *http.Request) {

		first, second := r.PathValue("first"), r.PathValue("second")

		switch {
		case first == "category":
			r.SetPathValue("slug", second)
			byCategory(w, r)
		case second == "related":
			r.SetPathValue("slug", first)
			related(w, r)
		default:
			response.Error(w, errors.NotFoundError("Route not found"))
		}
	}
}
