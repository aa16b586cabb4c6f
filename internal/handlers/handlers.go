package handlers

import (
	"github.com/meravi-clothing/storefront-api/internal/backend"
	"github.com/meravi-clothing/storefront-api/internal/store"
)

// ContactMailer delivers contact-form submissions. *email.Mailer implements
// it over SMTP.
type ContactMailer interface {
	SendContactSubmission(name, fromEmail, subject, messageBody, reference string) error
}

// Handlers holds all dependencies for the storefront routes.
type Handlers struct {
	Backend   *backend.Client
	Carts     *store.CartStore
	Wishlists *store.WishlistStore
	Currency  *store.CurrencyStore
	Mailer    ContactMailer
}
