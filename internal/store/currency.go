package store

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meravi-clothing/storefront-api/internal/backend"
)

// Supported currency codes. Anything else from the backend is ignored and the
// previous code stays in effect.
const (
	CurrencyUSD = "USD"
	CurrencyAED = "AED"
)

// RefreshInterval is how often the currency store re-reads the backend's
// public settings while the process runs.
const RefreshInterval = 30 * time.Second

// CurrencyPersistence caches the currency code between restarts.
type CurrencyPersistence interface {
	LoadCurrency() (string, error)
	SaveCurrency(code string) error
}

// CurrencyStore holds the single storefront-wide currency code. The cached
// code is loaded from the database at startup, then overwritten by the
// authoritative backend settings on an interval. Fetch failures are swallowed
// and logged; the stale value stays in effect.
type CurrencyStore struct {
	mu      sync.RWMutex
	code    string
	persist CurrencyPersistence
}

// NewCurrencyStore builds a CurrencyStore seeded from the persisted cache,
// defaulting to USD when nothing is cached yet.
func NewCurrencyStore(persist CurrencyPersistence) *CurrencyStore {
	s := &CurrencyStore{code: CurrencyUSD, persist: persist}
	if persist != nil {
		cached, err := persist.LoadCurrency()
		if err != nil {
			log.Printf("currency: failed to load cached code: %v", err)
		} else if isSupported(cached) {
			s.code = cached
		}
	}
	return s
}

func isSupported(code string) bool {
	return code == CurrencyUSD || code == CurrencyAED
}

// Code returns the current currency code.
func (s *CurrencyStore) Code() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.code
}

// Set switches the currency and persists the new code. Unsupported codes are
// ignored so a bad settings payload cannot break price display.
func (s *CurrencyStore) Set(code string) {
	if !isSupported(code) {
		log.Printf("currency: ignoring unsupported code %q", code)
		return
	}

	s.mu.Lock()
	changed := s.code != code
	s.code = code
	s.mu.Unlock()

	if changed && s.persist != nil {
		if err := s.persist.SaveCurrency(code); err != nil {
			log.Printf("currency: failed to persist code: %v", err)
		}
	}
}

// Symbol returns the display symbol for the current currency.
func (s *CurrencyStore) Symbol() string {
	if s.Code() == CurrencyAED {
		return "AED"
	}
	return "$"
}

// FormatPrice renders an amount as a localized display string, e.g.
// "$1,299.00" for USD and "AED 1,299.00" for AED.
func (s *CurrencyStore) FormatPrice(amount float64) string {
	code := s.Code()
	printer := message.NewPrinter(localeFor(code))
	formatted := printer.Sprintf("%.2f", amount)
	if code == CurrencyAED {
		return "AED " + formatted
	}
	return "$" + formatted
}

// localeFor maps a currency code to the locale used for digit grouping.
func localeFor(code string) language.Tag {
	if code == CurrencyAED {
		return language.MustParse("en-AE")
	}
	return language.AmericanEnglish
}

// StartRefresher launches the background worker that re-reads the backend's
// public settings every interval for the lifetime of ctx. Same pattern as any
// other periodic worker: ticker in a goroutine, errors logged and ignored.
func (s *CurrencyStore) StartRefresher(ctx context.Context, client *backend.Client, interval time.Duration) {
	if interval <= 0 {
		interval = RefreshInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// One immediate sync so startup does not wait a full interval.
		s.refreshOnce(ctx, client)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refreshOnce(ctx, client)
			}
		}
	}()
}

func (s *CurrencyStore) refreshOnce(ctx context.Context, client *backend.Client) {
	reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	settings, err := client.PublicSettings(reqCtx)
	if err != nil {
		log.Printf("currency: settings refresh failed: %v", err)
		return
	}
	if settings.Currency != "" {
		s.Set(settings.Currency)
	}
}
