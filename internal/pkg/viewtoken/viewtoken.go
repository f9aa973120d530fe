// Package viewtoken mints and checks the signed handles that tie HTMX
// requests back to the page render that owns their form state.
package viewtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/pkg/cache"
)

// HeaderName carries the token on every HTMX request (set through hx-headers).
const HeaderName = "X-View-Token"

var (
	ErrInvalidToken = errors.New("invalid view token")
	// ErrViewExpired means the token is genuine but its view went idle for
	// longer than the TTL, or was started by an earlier process.
	ErrViewExpired = errors.New("view expired")
)

// Toucher holds per-view entries whose lifetime follows the view.
type Toucher interface {
	Touch(key string) bool
}

// Claims represents the view token claims
type Claims struct {
	ViewID string `json:"vid"`
	jwt.RegisteredClaims
}

// Issuer signs view tokens and tracks when each view was last used. Tokens
// carry no expiry of their own: a view lives while requests keep arriving
// within the TTL of each other.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
	views  *cache.UnifiedCache[time.Time]
	stores []Toucher
}

type Option func(*Issuer)

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// WithStores registers caches keyed by view id. Every accepted request
// refreshes their entries along with the view itself.
func WithStores(stores ...Toucher) Option {
	return func(i *Issuer) { i.stores = append(i.stores, stores...) }
}

func NewIssuer(secret []byte, ttl time.Duration, logger *zap.Logger, opts ...Option) *Issuer {
	if logger == nil {
		logger = zap.NewNop()
	}
	i := &Issuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.views = cache.NewUnifiedCache[time.Time](ttl, "views", logger)
	return i
}

// Issue creates a fresh view id and its signed token.
func (i *Issuer) Issue() (viewID, token string, err error) {
	viewID = uuid.NewString()
	now := i.now()
	claims := Claims{
		ViewID: viewID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		i.logger.Error("Failed to sign view token", zap.Error(err))
		return "", "", fmt.Errorf("failed to sign view token: %w", err)
	}
	i.views.Set(viewID, now)
	return viewID, token, nil
}

// Resume validates the token and marks its view as used now. A view idle for
// longer than the TTL, or unknown to this process, is ErrViewExpired.
func (i *Issuer) Resume(token string) (string, error) {
	viewID, err := i.Parse(token)
	if err != nil {
		return "", err
	}

	now := i.now()
	lastSeen, found := i.views.Get(viewID)
	if !found || now.Sub(lastSeen) > i.ttl {
		i.views.Delete(viewID)
		return "", fmt.Errorf("%w: %s", ErrViewExpired, viewID)
	}

	i.views.Set(viewID, now)
	for _, store := range i.stores {
		store.Touch(viewID)
	}
	return viewID, nil
}

// ActiveViews is the number of views currently tracked.
func (i *Issuer) ActiveViews() int {
	return i.views.Size()
}

// Parse checks the signature and returns the view id the token carries. It
// says nothing about whether the view is still alive; see Resume.
func (i *Issuer) Parse(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.ViewID == "" {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.ViewID); err != nil {
		return "", fmt.Errorf("%w: malformed view id", ErrInvalidToken)
	}

	return claims.ViewID, nil
}
