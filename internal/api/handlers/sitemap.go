package handlers

import (
	"bytes"
	"net/http"

	"github.com/carespace/carespace-api/internal/pkg/clock"
	service "github.com/carespace/carespace-api/internal/services"
	"github.com/carespace/carespace-api/internal/sitemap"
)

type SitemapHandler struct {
	categoryService service.CategoryService
	productService  service.ProductService
	baseURL         string
	clock           clock.Clock
}

func NewSitemapHandler(categoryService service.CategoryService, productService service.ProductService, baseURL string, clk clock.Clock) *SitemapHandler {
	return &SitemapHandler{
		categoryService: categoryService,
		productService:  productService,
		baseURL:         baseURL,
		clock:           clk,
	}
}

// Sitemap godoc
// @Summary      Storefront sitemap
// @Tags         seo
// @Produce      xml
// @Success      200
// @Failure      500  {object}  response.APIResponse
// @Router       /sitemap.xml [get]
func (h *SitemapHandler) Sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			fail(w, r, "Sitemap generation failed", err)
			return
		}

		products, err := h.productService.ListProducts(r.Context())
		if err != nil {
			fail(w, r, "Sitemap generation failed", err)
			return
		}

		var buf bytes.Buffer
		if err := sitemap.Write(&buf, sitemap.Build(h.baseURL, categories, products, h.clock.Now())); err != nil {
			fail(w, r, "Sitemap generation failed", err)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
