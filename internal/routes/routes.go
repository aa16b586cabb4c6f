package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/meravi-clothing/storefront-api/internal/handlers"
	"github.com/meravi-clothing/storefront-api/internal/middleware"
)

// SetupRouter wires every storefront route. Session resolution happens
// globally so any page can read the cart badge; the CORS origin comes from
// ALLOWED_ORIGIN (defaulting to the local dev frontend) because the session
// cookie needs credentialed requests.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := router.Group("/v1")
	v1.Use(middleware.SessionMiddleware())
	{
		// --- Ping ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Catalog pages ---
		v1.GET("/collection", h.GetCollection)
		v1.GET("/sale", h.GetSaleProducts)
		v1.GET("/sets", h.GetSets)
		v1.GET("/new-arrivals", h.GetNewArrivals)
		v1.GET("/categories", h.GetCategories)
		v1.GET("/search/suggestions", h.SearchSuggestions)

		// --- Product detail ---
		v1.GET("/products/:id", h.GetProductDetail)
		v1.POST("/products/:id/reviews", h.CreateReview)

		// --- Bundles ---
		v1.GET("/bundles", h.GetBundles)
		v1.GET("/bundles/:id", h.GetBundleDetail)
		v1.POST("/bundles/calculate-discount", h.CalculateBundleDiscount)

		// --- Cart ---
		v1.GET("/cart", h.GetCart)
		v1.POST("/cart/items", h.AddToCart)
		v1.PATCH("/cart/items", h.UpdateCartItem)
		v1.DELETE("/cart/items", h.RemoveCartItem)
		v1.POST("/cart/bundles", h.AddBundleToCart)
		v1.GET("/cart/contains-bundle", h.IsBundleInCart)

		// --- Wishlist ---
		v1.GET("/wishlist", h.GetWishlist)
		v1.POST("/wishlist/items", h.AddToWishlist)
		v1.DELETE("/wishlist/items/:id", h.RemoveFromWishlist)

		// --- Checkout ---
		v1.POST("/checkout", h.Checkout)
		v1.POST("/checkout/coupon", h.ValidateCoupon)

		// --- Auth (proxied) ---
		v1.POST("/auth/login", h.Login)
		v1.GET("/auth/profile", h.GetProfile)

		// --- Content ---
		v1.GET("/carousel", h.GetCarousel)
		v1.GET("/blogs", h.GetBlogs)
		v1.GET("/blogs/:slug", h.GetBlogBySlug)
		v1.GET("/settings", h.GetSettings)

		// --- Contact ---
		v1.POST("/contact", h.SubmitContact)
	}

	return router
}
