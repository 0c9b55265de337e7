// Command bankctl is a terminal client of the core banking API that shares
// the portal's services and keeps its session in a local file.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/SscSPs/bank_portal/internal/adapters/bankapi"
	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/SscSPs/bank_portal/internal/platform/config"
	"github.com/SscSPs/bank_portal/internal/repositories/file"
	"github.com/SscSPs/bank_portal/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// errNotLoggedIn is returned by commands that need a session when none is stored.
var errNotLoggedIn = errors.New("not logged in, run `bankctl login` first")

// app is what every command works with once the root command has run.
type app struct {
	svc    *portssvc.ServiceContainer
	state  *sessionState
	logger *slog.Logger
	close  func()
}

// appFactory builds the app for the invoked command.
type appFactory func(cmd *cobra.Command, c *cli) (*app, error)

// cli carries the global flags and the app shared by all commands.
type cli struct {
	build     appFactory
	app       *app
	verbose   bool
	apiURL    string
	configDir string
	timeout   time.Duration
}

func newRootCmd(build appFactory) *cobra.Command {
	c := &cli{build: build}

	rootCmd := &cobra.Command{
		Use:   "bankctl",
		Short: "Terminal client for the banking portal",
		Long: `bankctl talks to the core banking API with the same session handling
as the web portal. Log in once; the session is kept under the config
directory until it expires or you log out.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.build(cmd, c)
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.app != nil && c.app.close != nil {
				c.app.close()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&c.apiURL, "api", "", "Core banking API base URL (or set BANK_API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&c.configDir, "config-dir", "", "Directory holding the session (default: <user config dir>/bankctl)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Timeout for each command")

	rootCmd.AddCommand(
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newWhoamiCmd(),
		c.newMenuCmd(),
		c.newAccountsCmd(),
		c.newTransferCmd(),
		c.newPendingCmd(),
		c.newApproveCmd(),
		c.newRejectCmd(),
		c.newInterestCmd(),
		c.newNotificationsCmd(),
	)
	return rootCmd
}

// newApp wires the portal services over a file session store.
func newApp(cmd *cobra.Command, c *cli) (*app, error) {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.apiURL != "" {
		cfg.BankAPIBaseURL = c.apiURL
	}

	dir := c.configDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config directory: %w", err)
		}
		dir = filepath.Join(base, "bankctl")
	}

	sealer, err := utils.NewSealer(cfg.SessionSecret)
	if err != nil {
		return nil, err
	}
	state, err := loadSessionState(filepath.Join(dir, "state.yaml"))
	if err != nil {
		return nil, err
	}

	conn, err := bankapi.NewConnector(bankapi.Options{
		BaseURL:   cfg.BankAPIBaseURL,
		Timeout:   cfg.BankAPITimeout,
		RateLimit: cfg.BankAPIRateLimit,
		Burst:     cfg.BankAPIBurst,
	})
	if err != nil {
		return nil, err
	}

	repos := portsrepo.RepositoryProvider{
		SessionRepo: file.NewSessionRepository(filepath.Join(dir, "session.json"), sealer),
	}
	container := services.NewServiceContainer(cfg, repos, conn.Factory(), logger)
	conn.OnSessionExpired(container.Session.ExpireSession)

	return &app{
		svc:    container,
		state:  state,
		logger: logger,
		close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			container.Notification.Close(ctx)
		},
	}, nil
}

// context returns the command context bounded by the --timeout flag.
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// session resolves the stored session.
func (a *app) session(ctx context.Context) (*domain.Session, error) {
	id := a.state.SessionID()
	if id == "" {
		return nil, errNotLoggedIn
	}
	sess, err := a.svc.Session.ResolveSession(ctx, id)
	if err != nil {
		return nil, a.explain(err)
	}
	return sess, nil
}

// explain turns service errors into messages for the terminal. An expired
// session is forgotten so the next command asks for a login.
func (a *app) explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrSessionExpired):
		if clearErr := a.state.Clear(); clearErr != nil {
			a.logger.Warn("Failed to clear stored session", slog.String("error", clearErr.Error()))
		}
		return errors.New("session expired, run `bankctl login` again")
	case errors.Is(err, apperrors.ErrIdentityUnresolved):
		return errors.New("your profile is still loading, try again in a moment")
	case errors.Is(err, apperrors.ErrForbidden):
		return fmt.Errorf("not allowed: %s", apperrors.Message(err, "you do not have permission to do that"))
	case errors.Is(err, apperrors.ErrTransport):
		return errors.New("the banking service is unavailable, try again later")
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrConflict):
		return errors.New(apperrors.Message(err, err.Error()))
	default:
		return err
	}
}

// money formats amount in currency, which defaults to USD.
func money(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return utils.FormatMoney(amount, currency)
}

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newApp).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
