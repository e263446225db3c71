package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Liscuitle/web-larek/internal/api"
	"github.com/Liscuitle/web-larek/internal/config"
	"github.com/Liscuitle/web-larek/internal/events"
	"github.com/Liscuitle/web-larek/internal/logic"
	"github.com/Liscuitle/web-larek/internal/presenter"
	"github.com/Liscuitle/web-larek/internal/view"
)

var envFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "larek",
		Short:        "Terminal storefront for the web-larek API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newShopCmd(), newCatalogCmd())
	return root
}

// session is everything one storefront run needs.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	bus    *events.Bus
	app    *logic.AppState
	client *api.Client
}

func newSession() (*session, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("session", uuid.NewString()))

	bus := events.NewBus()
	if cfg.TraceEvents {
		view.NewEventLogger(os.Stderr).Attach(bus)
	}

	logger.Debug("session started",
		zap.String("api", cfg.APIURL()),
		zap.String("cdn", cfg.CDNURL()))

	return &session{
		cfg:    cfg,
		logger: logger,
		bus:    bus,
		app:    logic.NewAppState(bus, logger.Named("state")),
		client: api.NewClient(api.Config{
			BaseURL: cfg.APIURL(),
			CDNURL:  cfg.CDNURL(),
			Timeout: cfg.HTTPTimeout,
			Logger:  logger.Named("api"),
		}),
	}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func newShopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Browse the catalog, fill a basket and place an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()

			p, err := presenter.New(s.bus, s.app, s.client, s.logger.Named("presenter"))
			if err != nil {
				return err
			}
			defer p.Close()

			// A failed load leaves an empty catalog with a notice; keep going.
			_ = p.Load(cmd.Context())

			sh := newShell(p, cmd.InOrStdin(), cmd.OutOrStdout())
			return sh.run(cmd.Context())
		},
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()

			items, err := s.client.GetProductList(cmd.Context())
			if err != nil {
				s.logger.Error("failed to load products", zap.Error(err))
				return err
			}
			out := cmd.OutOrStdout()
			for i, p := range items {
				card := view.NewCard(nil).Render(p)
				fmt.Fprintf(out, "%2d. %s", i+1, card)
			}
			return nil
		},
	}
}
