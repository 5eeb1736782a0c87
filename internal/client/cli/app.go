package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/andrissp/invoicedesk/internal/client/config"
	"github.com/andrissp/invoicedesk/internal/client/gateway"
	"github.com/andrissp/invoicedesk/internal/client/models"
	"github.com/andrissp/invoicedesk/internal/client/session"
	"github.com/andrissp/invoicedesk/internal/client/storage"
	"github.com/andrissp/invoicedesk/internal/client/theme"
	"github.com/andrissp/invoicedesk/internal/client/workspace"
	"github.com/andrissp/invoicedesk/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the view layer together: it owns the session controller, the
// per-user invoice workspace, the theme controller and the notifier, and
// exposes the command methods the REPL dispatches to.
type App struct {
	config    *config.Config
	log       logging.Logger
	db        io.Closer
	session   *session.Controller
	client    gateway.Client
	themes    *theme.Controller
	workspace *workspace.Workspace
	notifier  Notifier
	filter    workspace.Filter
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing settings database", "error", err)
		return nil, err
	}

	apiClient := gateway.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	settings := storage.NewSettingsRepository(db)
	themes := theme.NewController(db)

	return &App{
		config:   c,
		log:      log,
		db:       db,
		session:  session.New(apiClient, settings, log),
		client:   apiClient,
		themes:   themes,
		notifier: NewConsoleNotifier(os.Stdout, themes.Current(ctx)),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores a persisted session, if any, then blocks in the REPL until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if s, err := a.session.Restore(ctx); err == nil && s != nil {
		a.notify(NotifyInfo, fmt.Sprintf("Welcome back, %s", s.Name))
		a.enterWorkspace(ctx, s)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if s := a.session.Current(); s != nil {
		return s.Email
	}
	return "not logged in"
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// enterWorkspace binds a fresh workspace to the session's user and performs
// the initial load. Re-entering for the same user is a no-op so a restored
// session followed by an explicit login does not reload twice.
func (a *App) enterWorkspace(ctx context.Context, s *models.Session) {
	if a.workspace != nil && a.workspace.UserID() == s.ID {
		return
	}

	w := workspace.New(a.client, s.ID, a.log)
	w.SetChangeListener(func() { a.renderInvoices() })
	a.workspace = w
	a.filter = workspace.Filter{}

	if err := w.LoadInvoices(ctx); err != nil {
		a.notifyErr(err)
	}
}

func (a *App) leaveWorkspace() {
	a.workspace = nil
	a.filter = workspace.Filter{}
}

// requireWorkspace guards commands that only make sense when logged in.
func (a *App) requireWorkspace() (*workspace.Workspace, bool) {
	if a.workspace == nil {
		a.notify(NotifyError, "Please log in first")
		return nil, false
	}
	return a.workspace, true
}

func (a *App) notify(kind NotificationKind, message string) {
	a.notifier.Notify(kind, message)
}

func (a *App) notifyErr(err error) {
	a.notifier.Notify(NotifyError, err.Error())
}

// Theme flips the persisted light/dark preference and recolors the notifier.
func (a *App) Theme(ctx context.Context) error {
	next, err := a.themes.Toggle(ctx)
	if err != nil {
		a.notifyErr(err)
		return err
	}
	a.notifier.SetTheme(next)
	a.notify(NotifyInfo, "Theme switched to "+next)
	return nil
}
