package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/earnhub/adminctl/internal/client/api"
	"github.com/earnhub/adminctl/internal/client/config"
	"github.com/earnhub/adminctl/internal/client/repositories/tokens"
	"github.com/earnhub/adminctl/internal/client/services"
	"github.com/earnhub/adminctl/internal/client/session"
	"github.com/earnhub/adminctl/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the console together: configuration, session manager, action
// gateway, and the interactive input plumbing.
type App struct {
	config *config.Config
	log    logging.Logger
	sess   *session.Manager
	gw     *services.Gateway
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds a ready-to-run App from configuration. It opens the local
// credentials database, constructs the session manager and the HTTP client
// around each other (the client reads its bearer token through the manager's
// Token accessor), and attaches the action gateway on top.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := tokens.InitDatabase(ctx, cfg.TokenDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing credentials database: %w", err)
	}

	sess := session.NewManager(tokens.NewSQLiteRepository(db), log)
	client := api.NewHTTPClient(cfg.ServerBaseURL, sess.Token)
	sess.Bind(client)
	sess.SetRetryBaseDelay(cfg.RetryBaseDelay)

	gw := services.NewGateway(client, sess, log)
	gw.SetRetryBaseDelay(cfg.RetryBaseDelay)

	return &App{
		config: cfg,
		log:    log,
		sess:   sess,
		gw:     gw,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores a persisted session, if any, and enters the REPL. It returns
// when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "EarnHub admin console (type 'help' for commands)")
	a.log.Debug(ctx, "console starting", "server", a.config.ServerBaseURL)

	if err := a.sess.Startup(ctx); err != nil {
		if errors.Is(err, session.ErrStaleToken) {
			fmt.Fprintln(a.out, "Your saved session has expired, please log in again.")
		} else {
			fmt.Fprintln(a.out, err.Error())
		}
	} else if p := a.sess.Profile(); p != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", p.Name)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isLoggedIn() bool {
	return a.sess.State() == session.StateAuthenticated
}

func (a *App) getStatus() string {
	if p := a.sess.Profile(); p != nil {
		return fmt.Sprintf("(%s)", p.Name)
	}
	return ""
}

// printStatus echoes the gateway's transient outcome message, if any.
func (a *App) printStatus() {
	if s := a.gw.Status(); s != "" {
		fmt.Fprintln(a.out, s)
	}
}

// printPending shows the armed confirmation and how to resolve it.
func (a *App) printPending() {
	if c := a.gw.Pending(); c != nil {
		fmt.Fprintln(a.out, c.Message)
		fmt.Fprintln(a.out, "Type 'yes' to confirm or 'no' to cancel.")
	}
}

// Yes executes the outstanding confirmation, if there is one.
func (a *App) Yes(ctx context.Context) error {
	if a.gw.Pending() == nil {
		fmt.Fprintln(a.out, "Nothing to confirm.")
		return nil
	}
	err := a.gw.Confirm(ctx)
	a.printStatus()
	return err
}

// No discards the outstanding confirmation, if there is one.
func (a *App) No(ctx context.Context) error {
	if !a.gw.Cancel() {
		fmt.Fprintln(a.out, "Nothing to cancel.")
		return nil
	}
	a.printStatus()
	return nil
}
