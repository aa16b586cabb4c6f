package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/meravi-clothing/storefront-api/internal/backend"
	"github.com/meravi-clothing/storefront-api/internal/models"
)

//
// --- Content Handlers (home, blog, settings) ---
//

// fallbackCarousel renders when the backend carousel is unreachable, so the
// home page hero is never blank.
var fallbackCarousel = []models.CarouselImage{
	{ID: "fallback-1", Image: "/images/hero-default-1.jpg", Position: 1},
	{ID: "fallback-2", Image: "/images/hero-default-2.jpg", Position: 2},
}

// GetCarousel is the handler for GET /carousel.
func (h *Handlers) GetCarousel(c *gin.Context) {
	images, err := h.Backend.ActiveCarouselImages(c.Request.Context())
	if err != nil || len(images) == 0 {
		if err != nil {
			log.Printf("content: fetch carousel failed: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"images": fallbackCarousel})
		return
	}
	for i := range images {
		images[i].Image = h.Backend.ResolveImageURL(images[i].Image)
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// GetBlogs is the handler for GET /blogs.
func (h *Handlers) GetBlogs(c *gin.Context) {
	blogs, err := h.Backend.ActiveBlogs(c.Request.Context())
	if err != nil {
		log.Printf("content: fetch blogs failed: %v", err)
		blogs = []models.Blog{}
	}
	for i := range blogs {
		blogs[i].Image = h.Backend.ResolveImageURL(blogs[i].Image)
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs": blogs,
		"total": len(blogs),
	})
}

// GetBlogBySlug is the handler for GET /blogs/:slug. Incoming slugs are
// normalized so "Summer Style Guide!" and "summer-style-guide" resolve to the
// same article. The request context cancels a superseded fetch when the
// reader navigates away mid-load.
func (h *Handlers) GetBlogBySlug(c *gin.Context) {
	normalized := slug.Make(c.Param("slug"))

	blog, err := h.Backend.BlogBySlug(c.Request.Context(), normalized)
	if err != nil {
		if !errors.Is(err, backend.ErrNotFound) {
			log.Printf("content: fetch blog %q failed: %v", normalized, err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}
	blog.Image = h.Backend.ResolveImageURL(blog.Image)

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// GetSettings is the handler for GET /settings. It exposes the storefront's
// active currency; the 30-second refresher keeps it in sync with the backend,
// so this never blocks on a backend call.
func (h *Handlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency":       h.Currency.Code(),
		"currencySymbol": h.Currency.Symbol(),
	})
}
