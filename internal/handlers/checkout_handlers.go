package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meravi-clothing/storefront-api/internal/middleware"
	"github.com/meravi-clothing/storefront-api/internal/pricing"
)

//
// --- Checkout Handlers ---
//
// Orders and payments live in the core backend; these handlers assemble the
// session cart into the backend's payloads and hand the customer off to the
// hosted payment page. Failures here are the one place the storefront shows
// blocking errors instead of degrading silently.
//

// ValidateCouponInput is the JSON body for POST /checkout/coupon.
type ValidateCouponInput struct {
	Code string `json:"code" binding:"required"`
}

// ValidateCoupon is the handler for POST /checkout/coupon. An invalid coupon
// is a 200 with valid=false and a message for inline display, not an error.
func (h *Handlers) ValidateCoupon(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var input ValidateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.Backend.ValidateCoupon(c.Request.Context(), input.Code, h.Carts.Subtotal(sessionID))
	if err != nil {
		log.Printf("checkout: coupon validation failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"message": "Could not validate coupon, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    result.Valid,
		"code":     result.Code,
		"discount": result.Discount,
		"message":  result.Message,
	})
}

// CheckoutInput is the JSON body for POST /checkout.
type CheckoutInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" binding:"required"`
	Country      string `json:"country" binding:"required"`
	Postcode     string `json:"postcode"`
	CouponCode   string `json:"couponCode"`
}

// Checkout is the handler for POST /checkout. It creates the order in the
// backend, then opens an N-Genius payment session for it and returns the
// hosted payment URL. The cart is kept until the payment settles; abandoning
// the payment page must not lose the customer's cart.
func (h *Handlers) Checkout(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	items := h.Carts.Items(sessionID)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	subtotal := h.Carts.Subtotal(sessionID)

	var threshold, cost float64
	if cached := h.Carts.ShippingRule(); cached != nil {
		threshold = cached.FreeShippingThreshold
		cost = cached.ShippingCost
	}
	shipping := pricing.ShippingFor(subtotal, threshold, cost)

	// 1. --- Create the order ---
	orderPayload := gin.H{
		"customer": gin.H{
			"name":  input.Name,
			"email": input.Email,
			"phone": input.Phone,
			"address": gin.H{
				"line1":    input.AddressLine1,
				"line2":    input.AddressLine2,
				"city":     input.City,
				"country":  input.Country,
				"postcode": input.Postcode,
			},
		},
		"items":        items,
		"subtotal":     subtotal,
		"shippingCost": shipping.ShippingCost,
		"currency":     h.Currency.Code(),
		"couponCode":   input.CouponCode,
		"sessionId":    sessionID,
	}

	order, err := h.Backend.CreateOrder(c.Request.Context(), orderPayload)
	if err != nil {
		log.Printf("checkout: order creation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create order, please try again"})
		return
	}

	// 2. --- Open the payment session ---
	payment, err := h.Backend.CreatePayment(c.Request.Context(), order.OrderID)
	if err != nil {
		log.Printf("checkout: payment creation for order %s failed: %v", order.OrderID, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to initialize payment, please try again",
			"orderId": order.OrderID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":    order.OrderID,
		"paymentUrl": payment.PaymentURL,
		"reference":  payment.Reference,
	})
}
