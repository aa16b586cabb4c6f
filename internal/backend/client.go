package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meravi-clothing/storefront-api/internal/models"
)

// Sentinel errors callers use to pick the right degradation path.
var (
	// ErrNotFound is returned for a 404 from the backend.
	ErrNotFound = errors.New("backend: resource not found")
	// ErrUnsuccessful is returned when the backend answers 2xx but the
	// envelope carries success=false.
	ErrUnsuccessful = errors.New("backend: response not successful")
)

// envelope is the backend's standard response wrapper. Success is a pointer
// so we can tell "absent" apart from "false" and fall back to bare payloads.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client talks to the core backend REST API. Every storefront data dependency
// goes through here; all methods take a context and none of them retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the given API base URL (e.g. "https://api.example.com/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get issues a GET and decodes the response into out via the envelope rules.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// post issues a JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, "", out)
}

// do is the single request path: build, send, check status, decode.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, bearer string, out interface{}) error {
	// 1. --- Build the request ---
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	// 2. --- Send it ---
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read response: %w", err)
	}

	// 3. --- Status handling ---
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend: %s %s: status %d: %s", method, path, resp.StatusCode, truncate(respBody, 200))
	}

	// 4. --- Decode ---
	return decodePayload(respBody, out)
}

// decodePayload applies the envelope convention: prefer {success,data,message},
// tolerate a bare payload (usually an array) as a fallback shape.
func decodePayload(respBody []byte, out interface{}) error {
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err == nil && (env.Success != nil || len(env.Data) > 0) {
		if env.Success != nil && !*env.Success {
			if env.Message != "" {
				return fmt.Errorf("%w: %s", ErrUnsuccessful, env.Message)
			}
			return ErrUnsuccessful
		}
		if len(env.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("backend: decode data: %w", err)
		}
		return nil
	}

	// Bare payload fallback.
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

//
// --- Catalog ---
//

// AllProducts fetches the full public catalog. Pages filter it in memory.
func (c *Client) AllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products/public/all", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID fetches a single product detail record.
func (c *Client) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/products/public/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts asks the backend for search suggestions.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/products/search?q=%s&limit=%d", url.QueryEscape(query), limit)
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

//
// --- Bundles ---
//

// ActiveBundles lists active bundles, optionally scoped to one category.
func (c *Client) ActiveBundles(ctx context.Context, category string) ([]models.Bundle, error) {
	path := "/bundles/public/active"
	if category != "" {
		path += "/" + url.PathEscape(category)
	}
	var bundles []models.Bundle
	if err := c.get(ctx, path, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

// BundleDetail fetches one bundle by id.
func (c *Client) BundleDetail(ctx context.Context, id string) (*models.Bundle, error) {
	var bundle models.Bundle
	if err := c.get(ctx, "/bundles/public/detail/"+url.PathEscape(id), &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// BundleDiscountItem is one cart line sent to the discount calculator.
type BundleDiscountItem struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// BundleDiscountResult is the backend's answer for the cart's bundle savings.
type BundleDiscountResult struct {
	Discount     float64  `json:"discount"`
	DealsApplied []string `json:"dealsApplied,omitempty"`
}

// CalculateBundleDiscount recomputes bundle savings for the given cart lines.
func (c *Client) CalculateBundleDiscount(ctx context.Context, items []BundleDiscountItem) (*BundleDiscountResult, error) {
	var result BundleDiscountResult
	payload := map[string]interface{}{"items": items}
	if err := c.post(ctx, "/bundles/public/calculate-discount", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

//
// --- Taxonomy & content ---
//

// DashboardCategories lists the storefront's category tiles.
func (c *Client) DashboardCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categories/public/dashboard", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Subcategories lists all public subcategories.
func (c *Client) Subcategories(ctx context.Context) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := c.get(ctx, "/subcategories/public", &subcategories); err != nil {
		return nil, err
	}
	return subcategories, nil
}

// ActiveCarouselImages lists the home-page hero slides.
func (c *Client) ActiveCarouselImages(ctx context.Context) ([]models.CarouselImage, error) {
	var images []models.CarouselImage
	if err := c.get(ctx, "/carousel-images/public/active", &images); err != nil {
		return nil, err
	}
	return images, nil
}

// ActiveBlogs lists published blog posts.
func (c *Client) ActiveBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := c.get(ctx, "/blogs/public/active", &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// BlogBySlug fetches one blog post by its URL slug.
func (c *Client) BlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := c.get(ctx, "/blogs/public/by-url/"+url.PathEscape(slug), &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// PublicSettings fetches the authoritative store settings (currency, shipping rule).
func (c *Client) PublicSettings(ctx context.Context) (*models.StoreSettings, error) {
	var settings models.StoreSettings
	if err := c.get(ctx, "/settings/public", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

//
// --- Shipping ---
//

// ShippingRule is the backend's shipping calculation for a subtotal.
type ShippingRule struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	ShippingCost          float64 `json:"shippingCost"`
}

// CalculateShipping asks the backend for the shipping rule applying to a subtotal.
func (c *Client) CalculateShipping(ctx context.Context, subtotal float64) (*ShippingRule, error) {
	var rule ShippingRule
	payload := map[string]interface{}{"subtotal": subtotal}
	if err := c.post(ctx, "/shipping/public/calculate", payload, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

//
// --- Checkout ---
//

// CouponResult is the backend's verdict on a coupon code.
type CouponResult struct {
	Valid    bool    `json:"valid"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message,omitempty"`
}

// ValidateCoupon checks a coupon code against the current subtotal.
func (c *Client) ValidateCoupon(ctx context.Context, code string, subtotal float64) (*CouponResult, error) {
	var result CouponResult
	payload := map[string]interface{}{"code": code, "subtotal": subtotal}
	if err := c.post(ctx, "/coupons/validate", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// OrderResult is the created order reference returned by the backend.
type OrderResult struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status,omitempty"`
}

// CreateOrder submits the checkout payload and returns the order reference.
func (c *Client) CreateOrder(ctx context.Context, order interface{}) (*OrderResult, error) {
	var result OrderResult
	if err := c.post(ctx, "/orders/public/create", order, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PaymentSession is the hosted-payment handoff returned by the gateway.
type PaymentSession struct {
	PaymentURL string `json:"paymentUrl"`
	Reference  string `json:"reference,omitempty"`
}

// CreatePayment opens an N-Genius payment session for an existing order and
// returns the hosted payment page URL the customer is redirected to.
func (c *Client) CreatePayment(ctx context.Context, orderID string) (*PaymentSession, error) {
	var session PaymentSession
	if err := c.post(ctx, "/payments/ngenius/create/"+url.PathEscape(orderID), nil, &session); err != nil {
		return nil, err
	}
	if session.PaymentURL == "" {
		return nil, fmt.Errorf("backend: payment session has empty payment URL")
	}
	return &session, nil
}

//
// --- Auth & profile ---
//

// LoginResult carries the bearer token the storefront stores for the customer.
type LoginResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Login proxies a credential login to the backend.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	payload := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile fetches the customer profile with the customer's own bearer token.
// Used for the ban check; the token is passed through, never minted here.
func (c *Client) Profile(ctx context.Context, bearer string) (json.RawMessage, error) {
	var profile json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, bearer, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

//
// --- Reviews ---
//

// ProductReviews lists reviews for one product.
func (c *Client) ProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "/reviews/public/"+url.PathEscape(productID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReviewInput is the payload for submitting a review.
type CreateReviewInput struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// CreateReview submits a customer review.
func (c *Client) CreateReview(ctx context.Context, input CreateReviewInput) error {
	return c.post(ctx, "/reviews/public/create", input, nil)
}
