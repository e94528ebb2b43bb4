package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userreg/internal/config"
	"github.com/dmitrijs2005/userreg/internal/filex"
	"github.com/dmitrijs2005/userreg/internal/logging"
	"github.com/dmitrijs2005/userreg/internal/services"

	_ "modernc.org/sqlite"
)

// userStore is the part of services.UserStore the CLI depends on.
type userStore interface {
	Register(ctx context.Context, userName, email, password string) (bool, error)
	Authenticate(ctx context.Context, userName, password string) (bool, error)
	ListAll(ctx context.Context, w io.Writer) error
}

type App struct {
	config   *config.Config
	log      logging.Logger
	db       io.Closer
	store    userStore
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens (creating if needed) the database named by c and prepares
// the users table.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DatabaseFile); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", c.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	store := services.NewUserStore(db, log)
	if err := store.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info(ctx, "database ready", "file", c.DatabaseFile)

	return &App{
		config: c,
		log:    log,
		db:     db,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to userreg (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
