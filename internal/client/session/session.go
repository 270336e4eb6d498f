// Package session owns the authenticated identity: login, registration,
// logout, identity resolution against the remote API, and the credential
// persisted in the local store between runs.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ourganize/ourganize-cli/internal/client/gateway"
	"github.com/ourganize/ourganize-cli/internal/client/localstore"
	"github.com/ourganize/ourganize-cli/internal/client/models"
	"github.com/ourganize/ourganize-cli/internal/common"
	"github.com/ourganize/ourganize-cli/internal/logging"
)

// Identity resolution retries transient failures a bounded number of times
// and then settles as resolved-but-unauthenticated rather than looping.
const (
	identityRetryAttempts = 3
	identityRetryBackoff  = 200 * time.Millisecond
)

// CacheWiper clears every cached entity collection. Satisfied by the entity
// registry; the session calls it on logout and account deletion so no data
// from the previous user leaks into the next one.
type CacheWiper interface {
	ClearAll(ctx context.Context) error
}

// Session tracks the current user and mediates every auth-related API call.
type Session struct {
	gw    gateway.Client
	store *localstore.Store
	creds *Credentials
	cache CacheWiper
	log   logging.Logger

	mu          sync.Mutex
	user        *models.User
	resolved    bool
	professions []models.Profession
}

func New(gw gateway.Client, store *localstore.Store, creds *Credentials, cache CacheWiper, log logging.Logger) *Session {
	return &Session{
		gw:    gw,
		store: store,
		creds: creds,
		cache: cache,
		log:   log.With("component", "session"),
	}
}

// Hydrate restores the persisted identity from the local store. The identity
// is only trusted while a credential is present; otherwise it is stale and
// dropped. Call once at startup, before FetchIdentity.
func (s *Session) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.MetaGet(ctx, metaKeyIdentity)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "failed to load persisted identity", "error", err)
		}
		return
	}
	if s.creds.Token(ctx) == "" {
		s.setUserLocked(ctx, nil)
		return
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Error(ctx, "persisted identity is corrupt, dropping it", "error", err)
		s.setUserLocked(ctx, nil)
		return
	}
	s.user = &u
	s.log.Debug(ctx, "restored persisted identity", "user_id", u.ID)
}

// Login exchanges credentials for a token, stores it and adopts the returned
// identity.
func (s *Session) Login(ctx context.Context, in models.LoginInput) (*models.User, error) {
	var resp struct {
		Login models.AuthPayload `json:"login"`
	}
	vars := map[string]any{"email": in.Email, "password": in.Password}
	if err := s.gw.Mutate(ctx, loginDoc, vars, &resp); err != nil {
		return nil, err
	}
	return s.adoptAuthPayload(ctx, resp.Login)
}

// Register creates the account and logs the new user in.
func (s *Session) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	var resp struct {
		Register models.AuthPayload `json:"register"`
	}
	vars := map[string]any{
		"name":                  in.Name,
		"email":                 in.Email,
		"password":              in.Password,
		"password_confirmation": in.PasswordConfirmation,
	}
	if err := s.gw.Mutate(ctx, registerDoc, vars, &resp); err != nil {
		return nil, err
	}
	return s.adoptAuthPayload(ctx, resp.Register)
}

func (s *Session) adoptAuthPayload(ctx context.Context, p models.AuthPayload) (*models.User, error) {
	if p.AccessToken == "" || p.User == nil {
		return nil, errors.New("auth response carried no token or user")
	}
	if err := s.creds.Set(ctx, p.AccessToken, p.ExpiresIn); err != nil {
		return nil, fmt.Errorf("failed to persist credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(ctx, p.User)
	s.resolved = true
	s.log.Info(ctx, "authenticated", "user_id", p.User.ID)
	return p.User, nil
}

// Logout ends the session. The remote call is best effort: local state is
// cleared even when the server is unreachable, so the device never keeps a
// credential the user asked to drop.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil && s.creds.Token(ctx) == "" {
		return nil
	}

	var resp struct {
		Logout models.StatusResponse `json:"logout"`
	}
	if err := s.gw.Mutate(ctx, logoutDoc, nil, &resp); err != nil {
		s.log.Warn(ctx, "remote logout failed, clearing local state anyway", "error", err)
	}
	return s.clearLocalStateLocked(ctx)
}

// FetchIdentity resolves the current user against the API. With no stored
// credential it settles immediately as anonymous. Transient failures are
// retried up to identityRetryAttempts times; after that the session counts
// as resolved and later calls return without touching the network unless
// force is set. An authentication failure drops the credential.
func (s *Session) FetchIdentity(ctx context.Context, force bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds.Token(ctx) == "" {
		s.setUserLocked(ctx, nil)
		s.resolved = true
		return nil, nil
	}
	if s.resolved && !force {
		return s.user, nil
	}

	var user *models.User
	backoff := retry.WithMaxRetries(identityRetryAttempts-1, retry.NewConstant(identityRetryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var resp struct {
			Me *models.User `json:"me"`
		}
		if err := s.gw.Query(ctx, meDoc, nil, &resp); err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				return err
			}
			return retry.RetryableError(err)
		}
		user = resp.Me
		return nil
	})

	s.resolved = true
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.log.Info(ctx, "stored credential rejected, dropping it")
			if cerr := s.creds.Clear(ctx); cerr != nil {
				s.log.Error(ctx, "failed to clear rejected credential", "error", cerr)
			}
			s.setUserLocked(ctx, nil)
			return nil, nil
		}
		s.log.Error(ctx, "identity fetch failed, session stays unresolved-anonymous",
			"attempts", identityRetryAttempts, "error", err)
		return nil, err
	}

	s.setUserLocked(ctx, user)
	return user, nil
}

// UpdateProfile saves the writable profile fields and adopts the returned
// identity.
func (s *Session) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.User, error) {
	var resp struct {
		UpdateProfile *models.User `json:"updateProfile"`
	}
	vars := map[string]any{"name": in.Name, "email": in.Email, "profession_id": in.ProfessionID}
	if err := s.gw.Mutate(ctx, updateProfileDoc, vars, &resp); err != nil {
		return nil, err
	}
	if resp.UpdateProfile == nil {
		return nil, errors.New("profile update returned no user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The update response omits fields like the avatar; keep the known value.
	if resp.UpdateProfile.Avatar == "" && s.user != nil {
		resp.UpdateProfile.Avatar = s.user.Avatar
	}
	s.setUserLocked(ctx, resp.UpdateProfile)
	return resp.UpdateProfile, nil
}

// DeleteAccount removes the account on the server and then clears all local
// state, credential and caches included.
func (s *Session) DeleteAccount(ctx context.Context) error {
	var resp struct {
		DeleteAccount models.StatusResponse `json:"deleteAccount"`
	}
	if err := s.gw.Mutate(ctx, deleteAccountDoc, nil, &resp); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocalStateLocked(ctx)
}

// VerifyEmail submits the signed verification-link parameters. On success the
// identity is refetched so the verification timestamp lands locally.
func (s *Session) VerifyEmail(ctx context.Context, in models.VerifyEmailInput) (models.StatusResponse, error) {
	var resp struct {
		VerifyEmail models.StatusResponse `json:"verifyEmail"`
	}
	vars := map[string]any{
		"id":        in.ID,
		"hash":      in.Hash,
		"expires":   in.Expires,
		"signature": in.Signature,
	}
	if err := s.gw.Mutate(ctx, verifyEmailDoc, vars, &resp); err != nil {
		return models.StatusResponse{}, err
	}
	if resp.VerifyEmail.Verified {
		if _, err := s.FetchIdentity(ctx, true); err != nil {
			s.log.Warn(ctx, "identity refresh after verification failed", "error", err)
		}
	}
	return resp.VerifyEmail, nil
}

// ResendVerificationEmail asks the server to send a fresh verification link.
func (s *Session) ResendVerificationEmail(ctx context.Context) (models.StatusResponse, error) {
	var resp struct {
		Resend models.StatusResponse `json:"resendVerificationEmail"`
	}
	if err := s.gw.Mutate(ctx, resendVerificationDoc, nil, &resp); err != nil {
		return models.StatusResponse{}, err
	}
	return resp.Resend, nil
}

// Professions returns the profession lookup list, fetched at most once per
// session.
func (s *Session) Professions(ctx context.Context) ([]models.Profession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.professions) > 0 {
		return s.professions, nil
	}

	var resp struct {
		Professions []models.Profession `json:"professions"`
	}
	if err := s.gw.Query(ctx, professionsDoc, nil, &resp); err != nil {
		return nil, err
	}
	s.professions = resp.Professions
	return s.professions, nil
}

// CurrentUser returns the resolved identity, or nil while anonymous.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether an identity is currently held.
func (s *Session) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// IsEmailVerified reports whether the current user confirmed their address.
func (s *Session) IsEmailVerified() bool {
	return s.CurrentUser().IsEmailVerified()
}

// Resolved reports whether the identity question has been settled for this
// run, authenticated or not.
func (s *Session) Resolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

func (s *Session) setUserLocked(ctx context.Context, u *models.User) {
	s.user = u
	if u == nil {
		if err := s.store.MetaDelete(ctx, metaKeyIdentity); err != nil {
			s.log.Error(ctx, "failed to drop persisted identity", "error", err)
		}
		return
	}
	data, err := json.Marshal(u)
	if err != nil {
		s.log.Error(ctx, "failed to encode identity", "error", err)
		return
	}
	if err := s.store.MetaSet(ctx, metaKeyIdentity, data); err != nil {
		s.log.Error(ctx, "failed to persist identity", "error", err)
	}
}

// clearLocalStateLocked removes everything tied to the departing user: the
// whole metadata table (credential and identity), the cached collections and
// the entity tables on disk.
func (s *Session) clearLocalStateLocked(ctx context.Context) error {
	var errs []error

	if err := s.store.MetaClear(ctx); err != nil {
		errs = append(errs, err)
	}
	s.creds.Forget()
	s.user = nil
	s.resolved = true
	s.professions = nil

	if s.cache != nil {
		if err := s.cache.ClearAll(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.store.WipeAll(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
