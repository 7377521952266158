// Package download issues signed, single-use tickets for built artifacts.
// A ticket names the blob key and how to serve it; it expires after a short
// TTL and can be redeemed once.
package download

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidTicket = errors.New("invalid or expired download ticket")

const issuer = "cursoapp-export"

type Claims struct {
	Key         string `json:"key"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Inline      bool   `json:"inline,omitempty"`
	Checksum    string `json:"checksum,omitempty"`
	jwt.RegisteredClaims
}

// Artifact is what a ticket points at.
type Artifact struct {
	ID          string
	Key         string
	Filename    string
	ContentType string
	Inline      bool
	Checksum    string
}

type Issuer struct {
	hmac []byte
	ttl  time.Duration
	now  func() time.Time

	mu   sync.Mutex
	used map[string]time.Time // ticket ID -> expiry
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Issuer{hmac: []byte(secret), ttl: ttl, now: time.Now, used: map[string]time.Time{}}
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

func (i *Issuer) Issue(a Artifact) (string, error) {
	if len(i.hmac) == 0 {
		return "", errors.New("download: empty signing secret")
	}
	if a.ID == "" || a.Key == "" {
		return "", errors.New("download: artifact needs an id and a blob key")
	}
	now := i.now()
	claims := &Claims{
		Key:         a.Key,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		Inline:      a.Inline,
		Checksum:    a.Checksum,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        a.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.hmac)
}

// Parse verifies signature, issuer and expiry without consuming the ticket.
func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.hmac, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}
	c, ok := token.Claims.(*Claims)
	if !ok || c.Key == "" || c.ID == "" {
		return nil, ErrInvalidTicket
	}
	return c, nil
}

// Consume marks a parsed ticket as used; only the first call for a ticket
// succeeds. Call it once the artifact has been opened.
func (i *Issuer) Consume(c *Claims) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	now := i.now()
	for id, exp := range i.used {
		if now.After(exp) {
			delete(i.used, id)
		}
	}
	if _, seen := i.used[c.ID]; seen {
		return fmt.Errorf("%w: already used", ErrInvalidTicket)
	}
	i.used[c.ID] = c.ExpiresAt.Time
	return nil
}

// Used reports whether a ticket was already consumed.
func (i *Issuer) Used(c *Claims) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, seen := i.used[c.ID]
	return seen
}

// Redeem is Parse plus Consume.
func (i *Issuer) Redeem(tokenStr string) (*Claims, error) {
	c, err := i.Parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if err := i.Consume(c); err != nil {
		return nil, err
	}
	return c, nil
}
