// Package session owns the authenticated-user identity: login, signup,
// logout and restoring a persisted session at startup.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/andrissp/invoicedesk/internal/client/gateway"
	"github.com/andrissp/invoicedesk/internal/client/models"
	"github.com/andrissp/invoicedesk/internal/client/storage"
	"github.com/andrissp/invoicedesk/internal/logging"
)

// currentUserKey is the settings key holding the JSON-encoded session.
const currentUserKey = "currentUser"

var (
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long")
	ErrNameRequired     = errors.New("Name is required")
	ErrEmailInvalid     = errors.New("A valid email address is required")
)

type signupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Controller drives the Unauthenticated -> Authenticated -> Unauthenticated
// state machine. It keeps the identity in memory and mirrors it into the
// durable settings store.
type Controller struct {
	client   gateway.Client
	repo     storage.Repository
	log      logging.Logger
	validate *validator.Validate
	current  *models.Session
}

func New(client gateway.Client, repo storage.Repository, log logging.Logger) *Controller {
	return &Controller{
		client:   client,
		repo:     repo,
		log:      log,
		validate: validator.New(),
	}
}

// Current returns the active session, or nil when unauthenticated.
func (c *Controller) Current() *models.Session {
	return c.current
}

func (c *Controller) IsAuthenticated() bool {
	return c.current != nil
}

// Login exchanges credentials for an identity and persists it. A failure to
// write the durable record is logged but does not fail the login: the
// in-memory session is the authoritative one for this run.
func (c *Controller) Login(ctx context.Context, email, password string) (*models.Session, error) {
	s, err := c.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := c.persist(ctx, s); err != nil {
		c.log.Warn(ctx, "failed to persist session", "error", err)
	}

	c.current = s
	c.log.Info(ctx, "logged in", "user_id", s.ID)
	return s, nil
}

// Signup validates the form locally, registers the account, then immediately
// logs in with the just-registered credentials. A login failure after a
// successful registration is still surfaced as a signup failure.
func (c *Controller) Signup(ctx context.Context, name, email, password, confirmPassword string) (*models.Session, error) {
	if err := c.validateSignup(name, email, password, confirmPassword); err != nil {
		return nil, err
	}

	if err := c.client.Register(ctx, name, email, password); err != nil {
		return nil, err
	}

	s, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("account created but automatic login failed: %w", err)
	}
	return s, nil
}

func (c *Controller) validateSignup(name, email, password, confirmPassword string) error {
	err := c.validate.Struct(signupForm{Name: name, Email: email, Password: password})
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Name":
				return ErrNameRequired
			case "Email":
				return ErrEmailInvalid
			case "Password":
				return ErrPasswordTooShort
			}
		}
		return err
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Logout clears both the in-memory and the durable session state.
func (c *Controller) Logout(ctx context.Context) error {
	c.current = nil
	if err := c.repo.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	c.log.Info(ctx, "logged out")
	return nil
}

// Restore reads the persisted session, if any. It is trusted as-is without
// re-validating against the server. A corrupt record is discarded and
// treated as no session.
func (c *Controller) Restore(ctx context.Context) (*models.Session, error) {
	raw, err := c.repo.Get(ctx, currentUserKey)
	if err != nil {
		return nil, fmt.Errorf("read persisted session: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		c.log.Warn(ctx, "discarding corrupt persisted session", "error", err)
		_ = c.repo.Delete(ctx, currentUserKey)
		return nil, nil
	}

	c.current = &s
	c.log.Info(ctx, "session restored", "user_id", s.ID)
	return &s, nil
}

func (c *Controller) persist(ctx context.Context, s *models.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.repo.Set(ctx, currentUserKey, string(b))
}
