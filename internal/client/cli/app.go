package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/taskdeck/internal/buildinfo"
	"github.com/dmitrijs2005/taskdeck/internal/client/client"
	"github.com/dmitrijs2005/taskdeck/internal/client/config"
	"github.com/dmitrijs2005/taskdeck/internal/client/services"
	"github.com/dmitrijs2005/taskdeck/internal/client/session"
	"github.com/dmitrijs2005/taskdeck/internal/logging"
)

type App struct {
	api    client.Client
	auth   services.AuthService
	store  *session.Store
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
	color  bool
	width  int

	commands []*command
}

// NewApp opens the session database at cfg.DBPath and builds the API client
// on top of it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(db)
	if err := store.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	api, err := client.New(cfg.APIBaseURL, store,
		client.WithLogger(log),
		client.WithUserAgent("taskdeck-cli/"+buildinfo.Version),
		client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(api, store, log, os.Stdin, os.Stdout)
	a.db = db
	a.color = isTerminal(int(os.Stdout.Fd()))
	a.width = outputWidth(80)
	return a, nil
}

func newApp(api client.Client, store *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		api:    api,
		auth:   services.NewAuthService(api, store),
		store:  store,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		width:  80,
	}
	a.commands = a.commandTable()
	return a
}

// Run restores a persisted session, if any, and serves the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to taskdeck (type 'help' for commands)")

	if a.store.IsAuthenticated(ctx) {
		if u, err := a.auth.CurrentUser(ctx); err != nil {
			a.log.Warn(ctx, "could not restore session", "error", err)
			if errors.Is(err, client.ErrUnauthorized) {
				fmt.Fprintln(a.out, "Your session has expired, please log in again.")
			}
		} else {
			fmt.Fprintf(a.out, "Signed in as %s\n", u.DisplayName())
		}
	}

	unsubscribe := a.store.Subscribe(a.onSessionChange())
	defer unsubscribe()

	return runREPL(ctx, a, a.reader, a.out)
}

// onSessionChange announces a pending forced password change once per
// transition.
func (a *App) onSessionChange() func(session.State) {
	announced := false
	return func(st session.State) {
		if st.PasswordResetRequired && !announced {
			fmt.Fprintln(a.out, "A password change is required: run 'passwd'.")
		}
		announced = st.PasswordResetRequired
	}
}

func (a *App) Close() error {
	err := a.api.Close()
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}
