package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/meravi-clothing/storefront-api/internal/backend"
	"github.com/meravi-clothing/storefront-api/internal/store"
)

const testSession = "test-session"

// fakeMailer records contact submissions and can be told to fail.
type fakeMailer struct {
	fail bool
	sent int
}

func (m *fakeMailer) SendContactSubmission(name, fromEmail, subject, messageBody, reference string) error {
	if m.fail {
		return assertError("smtp unreachable")
	}
	m.sent++
	return nil
}

type assertError string

func (e assertError) Error() string { return string(e) }

// newTestApp builds a Handlers over in-memory stores and a mocked backend.
func newTestApp(backendHandler http.HandlerFunc) (*Handlers, *httptest.Server) {
	server := httptest.NewServer(backendHandler)
	app := &Handlers{
		Backend:   backend.New(server.URL),
		Carts:     store.NewCartStore(nil),
		Wishlists: store.NewWishlistStore(nil),
		Currency:  store.NewCurrencyStore(nil),
		Mailer:    &fakeMailer{},
	}
	return app, server
}

// newTestRouter registers every route against a fixed session id, replacing
// the cookie-based session middleware.
func newTestRouter(app *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("sessionID", testSession)
		c.Next()
	})

	router.GET("/collection", app.GetCollection)
	router.GET("/sale", app.GetSaleProducts)
	router.GET("/sets", app.GetSets)
	router.GET("/new-arrivals", app.GetNewArrivals)
	router.GET("/search/suggestions", app.SearchSuggestions)
	router.GET("/products/:id", app.GetProductDetail)
	router.POST("/products/:id/reviews", app.CreateReview)
	router.GET("/bundles", app.GetBundles)
	router.GET("/bundles/:id", app.GetBundleDetail)
	router.POST("/bundles/calculate-discount", app.CalculateBundleDiscount)
	router.GET("/cart", app.GetCart)
	router.POST("/cart/items", app.AddToCart)
	router.PATCH("/cart/items", app.UpdateCartItem)
	router.DELETE("/cart/items", app.RemoveCartItem)
	router.POST("/cart/bundles", app.AddBundleToCart)
	router.GET("/cart/contains-bundle", app.IsBundleInCart)
	router.GET("/wishlist", app.GetWishlist)
	router.POST("/wishlist/items", app.AddToWishlist)
	router.DELETE("/wishlist/items/:id", app.RemoveFromWishlist)
	router.POST("/checkout", app.Checkout)
	router.POST("/checkout/coupon", app.ValidateCoupon)
	router.POST("/contact", app.SubmitContact)
	router.GET("/carousel", app.GetCarousel)
	router.GET("/blogs", app.GetBlogs)
	router.GET("/blogs/:slug", app.GetBlogBySlug)
	router.GET("/settings", app.GetSettings)
	router.POST("/auth/login", app.Login)
	router.GET("/auth/profile", app.GetProfile)
	return router
}

// doJSON runs one request through the router and decodes the JSON body.
func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}
