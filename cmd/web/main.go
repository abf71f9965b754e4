package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lenon69/MegJoniShop/internal/catalog"
	"github.com/Lenon69/MegJoniShop/internal/config"
	"github.com/Lenon69/MegJoniShop/internal/httpserver"
	custommw "github.com/Lenon69/MegJoniShop/internal/middleware"
	"github.com/Lenon69/MegJoniShop/internal/metrics"
	"github.com/Lenon69/MegJoniShop/internal/observability"
	"github.com/Lenon69/MegJoniShop/internal/storefront"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile string
	env     map[string]string
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&rootOptions{})
}

func newRootCmdWithOptions(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "web",
		Short:         "Meg Joni storefront web server",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with local overrides")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the storefront over HTTP",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "render <path>",
			Short: "Render the document for a path to stdout",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRender(cmd, opts, args[0])
			},
		},
		&cobra.Command{
			Use:   "routes",
			Short: "List registered routes and navigation entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRoutes(cmd, opts)
			},
		},
	)
	return root
}

func (o *rootOptions) load() (config.Config, error) {
	loadOpts := []config.Option{config.WithEnvFile(o.envFile)}
	if o.env != nil {
		loadOpts = append(loadOpts, config.WithEnvMap(o.env), config.WithoutSystemEnv())
	}
	return config.Load(loadOpts...)
}

func buildStorefront(cfg config.Config) (*storefront.Storefront, error) {
	src, err := catalog.LoadFile(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	return storefront.New(storefront.Options{
		Catalog:       src,
		SiteURL:       cfg.Site.URL,
		Locale:        cfg.Site.Locale,
		Stylesheet:    cfg.Site.Stylesheet,
		CopyrightYear: cfg.Site.CopyrightYear,
	})
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sf, err := buildStorefront(cfg)
	if err != nil {
		logger.Error("build storefront", zap.Error(err))
		return err
	}

	assets := custommw.NewAssets(cfg.Assets.PublicDir)
	logger.Info("static assets indexed",
		zap.String("dir", cfg.Assets.PublicDir),
		zap.Int("files", assets.Len()),
	)

	serverCfg := httpserver.Config{
		Address:      cfg.Server.Addr(),
		Renderer:     sf,
		Logger:       logger,
		Assets:       assets,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	if cfg.Metrics.Enabled {
		reg := metrics.NewRegistry()
		serverCfg.Recorder = metrics.NewPrometheusRecorder(reg)
		serverCfg.MetricsHandler = metrics.Handler(reg)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpserver.Run(ctx, httpserver.New(serverCfg), logger)
}

func runRender(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	sf, err := buildStorefront(cfg)
	if err != nil {
		return err
	}
	res := sf.Render(path)
	if err := res.Document.Component().Render(context.Background(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr())
	fmt.Fprintf(cmd.ErrOrStderr(), "match=%s route=%q\n", res.Kind, res.Route)
	return nil
}

func runRoutes(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	sf, err := buildStorefront(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tNAME\tTITLE")
	for _, rt := range sf.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rt.Pattern, rt.Name, sf.Render(rt.Pattern).Document.Title())
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "NAV\tPATH\t")
	for _, e := range sf.Nav() {
		fmt.Fprintf(tw, "%s\t%s\t\n", e.Label, e.Path)
	}
	return tw.Flush()
}
