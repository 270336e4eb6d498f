package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/ourganize/ourganize-cli/internal/client/config"
	"github.com/ourganize/ourganize-cli/internal/client/entities"
	"github.com/ourganize/ourganize-cli/internal/client/gateway"
	"github.com/ourganize/ourganize-cli/internal/client/localstore"
	"github.com/ourganize/ourganize-cli/internal/client/session"
	"github.com/ourganize/ourganize-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App bundles the pieces of the client: the local cache, the GraphQL
// gateway, the session and the entity collections.
type App struct {
	config   *config.Config
	store    *localstore.Store
	sess     *session.Session
	registry *entities.Registry
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault(slog.LevelWarn)

	store, err := localstore.Open(ctx, c.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	creds := session.NewCredentials(store, log)
	gw := gateway.NewHTTPClient(c.APIEndpointURL, creds.Source(), c.RequestTimeout, log)
	registry := entities.NewRegistry(gw, store, log)
	sess := session.New(gw, store, creds, registry, log)
	sess.Hydrate(ctx)

	return &App{
		config:   c,
		store:    store,
		sess:     sess,
		registry: registry,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the identity once and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()

	if _, err := a.sess.FetchIdentity(ctx, false); err != nil {
		a.log.Warn(ctx, "could not resolve identity, starting offline", "error", err)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sess.IsAuthenticated()
}

// getStatus renders the prompt decoration: the signed-in email, plus an
// "unverified" marker until the address is confirmed.
func (a *App) getStatus() string {
	u := a.sess.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Email
	if !u.IsEmailVerified() {
		s += " unverified"
	}
	return "(" + s + ")"
}
