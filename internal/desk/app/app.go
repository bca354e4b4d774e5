// Package app wires the clubdesk terminal client together: configuration,
// logging, the local state store, the API client, the session manager and
// the operation layer, plus the command dispatch on top.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/internal/desk/service"
	"github.com/itbsclubs/clubdesk/internal/desk/session"
	"github.com/itbsclubs/clubdesk/internal/desk/store/drivers/sqlite"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/itbsclubs/clubdesk/pkg/cryptox"
	"github.com/itbsclubs/clubdesk/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the terminal client with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger
	out    io.Writer

	db       *sqlite.Store
	sessions *session.Manager
	services *service.Services
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	logger := slogx.New(slogx.Config{
		Service: "clubdesk",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	db, err := sqlite.NewStore(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate state file: %w", err)
	}
	if err := db.Ping(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("state file not usable: %w", err)
	}

	api := clubapi.NewSDKClient(cfg.APIURL)
	api.HTTPClient.Transport = slogx.NewTransport(logger, http.DefaultTransport)

	sessions := session.NewManager(api, db, cryptox.NewBox(cfg.Passphrase), logger,
		session.WithDefaultTTL(cfg.SessionTTL),
		session.WithTOTPSecret(cfg.TOTPSecret),
	)

	out := os.Stdout
	notifier := notify.NewWriterNotifier(out, logger)

	return &Application{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		db:       db,
		sessions: sessions,
		services: service.New(sessions, db, notifier, logger),
	}, nil
}

// Close releases the local state store.
func (app *Application) Close() error {
	return app.db.Close()
}

// Run dispatches one command invocation. The error it returns is already
// suitable for the process boundary; navigation outcomes are printed, not
// returned as failures.
func (app *Application) Run(args []string) error {
	if len(args) == 0 {
		app.usage()
		return nil
	}

	start := time.Now()
	cmd, rest := args[0], args[1:]
	err := app.dispatch(cmd, rest)
	app.logger.Debug("command finished", "command", cmd, "duration", time.Since(start), "error", err)
	return err
}

func (app *Application) usage() {
	fmt.Fprintln(app.out, `clubdesk - client du portail des clubs ITBS

Commandes :
  login <email>          Se connecter (mot de passe demandé)
  logout                 Se déconnecter
  whoami                 Afficher la session courante
  nav                    Afficher le menu du rôle courant
  apply                  Candidater à la plateforme
  upload <fichier>       Téléverser un fichier média
  clubs ...              Clubs (list, details, join, not-joined, my, members, create, update, delete)
  events ...             Événements (list, public, calendar, create, update, delete, archive, register, unregister)
  blogs ...              Blog (feed, create, update, delete, like, comment)
  demandes ...           Demandes d'adhésion (list, approve, refuse)
  accounts ...           Comptes en attente (list, accept, refuse)
  users ...              Comptes (list, create, update, delete, assign, moderators)`)
}
