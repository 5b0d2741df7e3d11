package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EddieTunji/tv-series-tracker/database"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/service"
	"github.com/EddieTunji/tv-series-tracker/internal/config"
	"github.com/EddieTunji/tv-series-tracker/internal/logging"
)

var errNoUser = errors.New("no session user; pass --user <name> or set TRACKER_USER")

// session holds everything one CLI invocation needs.
type session struct {
	username string
	envFile  string

	cfg    *config.Config
	logger *slog.Logger
	db     *database.Database
	svc    service.TrackerService
	user   *models.User
}

func (s *session) open(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(s.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	s.cfg = cfg
	s.logger = logger
	s.db = db
	s.svc = service.NewTrackerService(
		repository.NewRepositories(db.DB),
		repository.NewTransactor(db.DB),
		service.Options{StrictWatchStatus: cfg.StrictWatchStatus},
		logger,
	)
	return nil
}

func (s *session) close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// currentUser resolves the --user flag to a user row, creating it on first
// use. The result is cached for the rest of the invocation.
func (s *session) currentUser(ctx context.Context) (*models.User, error) {
	if s.user != nil {
		return s.user, nil
	}
	name := strings.TrimSpace(s.username)
	if name == "" {
		return nil, errNoUser
	}
	user, created, err := s.svc.SelectOrCreateUser(ctx, name)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("session user created", "username", user.Username)
	}
	s.user = user
	return user, nil
}

// existingUser resolves the --user flag without creating anything. It
// returns nil when no user was given.
func (s *session) existingUser(ctx context.Context) (*models.User, error) {
	if s.user != nil {
		return s.user, nil
	}
	if strings.TrimSpace(s.username) == "" {
		return nil, nil
	}
	user, err := s.svc.FindUser(ctx, s.username)
	if err != nil {
		return nil, err
	}
	s.user = user
	return user, nil
}

// withUser adapts a handler that needs the session user to cobra's RunE.
func (s *session) withUser(fn func(cmd *cobra.Command, args []string, user *models.User) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		user, err := s.currentUser(cmd.Context())
		if err != nil {
			return err
		}
		return fn(cmd, args, user)
	}
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
