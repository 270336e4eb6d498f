package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ourganize/ourganize-cli/internal/client/gateway"
	"github.com/ourganize/ourganize-cli/internal/client/localstore"
	"github.com/ourganize/ourganize-cli/internal/common"
	"github.com/ourganize/ourganize-cli/internal/logging"
)

// Metadata keys for the persisted credential and identity.
const (
	metaKeyToken       = "auth_token"
	metaKeyTokenExpiry = "auth_token_expires_at"
	metaKeyIdentity    = "auth_user"
)

// defaultCredentialTTL applies when the token carries no usable expiry.
const defaultCredentialTTL = 7 * 24 * time.Hour

// Credentials owns the persisted access token and its lifetime. It is shared
// between the session (which sets and clears it) and the gateway (which
// attaches it to outgoing requests).
type Credentials struct {
	store *localstore.Store
	log   logging.Logger

	mu        sync.Mutex
	loaded    bool
	token     string
	expiresAt time.Time
}

func NewCredentials(store *localstore.Store, log logging.Logger) *Credentials {
	return &Credentials{store: store, log: log}
}

// Source adapts the credentials to the gateway's CredentialSource contract.
func (c *Credentials) Source() gateway.CredentialSource {
	return func() string { return c.Token(context.Background()) }
}

// Token returns the current access token, or "" when none is stored or the
// stored one has expired. Expired tokens are dropped from the metadata so
// identity and credential go invalid together.
func (c *Credentials) Token(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadLocked(ctx)

	if c.token == "" {
		return ""
	}
	if !c.expiresAt.IsZero() && time.Now().After(c.expiresAt) {
		c.log.Info(ctx, "stored credential expired")
		c.clearLocked(ctx)
		return ""
	}
	return c.token
}

// Set stores the token. The expiry comes from the token's exp claim when it
// parses as a JWT, then from expiresIn (seconds), then from the default TTL.
func (c *Credentials) Set(ctx context.Context, token string, expiresIn int64) error {
	expiresAt := tokenExpiry(token, expiresIn)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.MetaSet(ctx, metaKeyToken, []byte(token)); err != nil {
		return err
	}
	if err := c.store.MetaSet(ctx, metaKeyTokenExpiry, []byte(expiresAt.Format(time.RFC3339))); err != nil {
		return err
	}

	c.loaded = true
	c.token = token
	c.expiresAt = expiresAt
	return nil
}

// Clear drops the token from memory and from the metadata store.
func (c *Credentials) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked(ctx)
	return nil
}

// Forget drops only the in-memory copy. Used when the metadata table itself
// has been cleared wholesale and the stored rows are already gone.
func (c *Credentials) Forget() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true
	c.token = ""
	c.expiresAt = time.Time{}
}

func (c *Credentials) loadLocked(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true

	token, err := c.store.MetaGet(ctx, metaKeyToken)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			c.log.Error(ctx, "failed to load credential", "error", err)
		}
		return
	}
	c.token = string(token)

	if raw, err := c.store.MetaGet(ctx, metaKeyTokenExpiry); err == nil {
		if at, err := time.Parse(time.RFC3339, string(raw)); err == nil {
			c.expiresAt = at
		}
	}
}

func (c *Credentials) clearLocked(ctx context.Context) {
	c.token = ""
	c.expiresAt = time.Time{}
	if err := c.store.MetaDelete(ctx, metaKeyToken); err != nil {
		c.log.Error(ctx, "failed to clear credential", "error", err)
	}
	if err := c.store.MetaDelete(ctx, metaKeyTokenExpiry); err != nil {
		c.log.Error(ctx, "failed to clear credential expiry", "error", err)
	}
}

// tokenExpiry derives the credential lifetime. The token's signature is not
// checked here: the client only needs the exp claim to know when to stop
// sending the token, the server remains the authority on validity.
func tokenExpiry(token string, expiresIn int64) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if expiresIn > 0 {
		return time.Now().Add(time.Duration(expiresIn) * time.Second)
	}
	return time.Now().Add(defaultCredentialTTL)
}
