package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/foodcourt/internal/client/api"
	"github.com/dmitrijs2005/foodcourt/internal/client/cart"
	"github.com/dmitrijs2005/foodcourt/internal/client/config"
	"github.com/dmitrijs2005/foodcourt/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/foodcourt/internal/client/services"
	"github.com/dmitrijs2005/foodcourt/internal/client/session"
	"github.com/dmitrijs2005/foodcourt/internal/client/storage"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// App wires the services together and hosts the command handlers.
type App struct {
	config   *config.Config
	api      api.Client
	session  *session.Store
	cart     *cart.Store
	checkout *services.CheckoutService
	catalog  *services.CatalogService
	orders   *services.OrdersService
	admin    *services.AdminService
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := storage.Open(ctx, c.DatabaseFile)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.BaseURL, c.APIKey, c.RequestTimeout)
	tokenRepo := tokens.NewSQLiteRepository(db)

	sess := session.NewStore(apiClient, tokenRepo, log)
	localCart := cart.NewStore()

	return &App{
		config:   c,
		api:      apiClient,
		session:  sess,
		cart:     localCart,
		checkout: services.NewCheckoutService(apiClient, localCart, sess, log),
		catalog:  services.NewCatalogService(apiClient),
		orders:   services.NewOrdersService(apiClient),
		admin:    services.NewAdminService(apiClient),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session (never fatal) and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAuthenticated() && a.session.IsAdmin()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Name
		if a.session.IsAdmin() {
			s += " admin"
		}
	}
	if n := a.cart.ItemCount(); n > 0 {
		if s != "" {
			s += " "
		}
		s += formatBadge(n)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}
