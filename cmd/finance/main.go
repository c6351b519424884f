// Package main is the entry point for the finance terminal dashboard.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/dashboard/config"
	"github.com/finance-tracker/dashboard/internal/application/formatter"
	"github.com/finance-tracker/dashboard/internal/application/store"
	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/infra/dependency"
	"github.com/finance-tracker/dashboard/internal/integration/terminal"
)

// app holds the dependencies shared by the subcommands of one invocation.
type app struct {
	storageDriver string
	injector      *dependency.Injector
	renderer      *terminal.Renderer
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finance",
		Short: "Personal finance dashboard",
		Long: `finance shows the personal finance dashboard in the terminal: net worth,
monthly cash flow, recent transactions, credit cards and investments.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
	}

	rootCmd.PersistentFlags().StringVar(&a.storageDriver, "storage", "", "storage driver (sqlite, postgres, redis, file, memory)")

	rootCmd.AddCommand(summaryCmd(a))
	rootCmd.AddCommand(accountsCmd(a))
	rootCmd.AddCommand(darkModeCmd(a))

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one command line. The storage is closed whether the command succeeds or not.
func run(ctx context.Context, args []string) error {
	a := &app{}
	return a.execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) error {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (a *app) open(cmd *cobra.Command, _ []string) error {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()
	if a.storageDriver != "" {
		cfg.Storage.Driver = strings.ToLower(a.storageDriver)
	}

	// Diagnostics go to stderr so they never mix with the rendered dashboard
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	kv, err := dependency.NewStorage(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	a.renderer = terminal.NewRenderer(cmd.OutOrStdout(), formatter.New(cfg.Display.Locale), cfg.Display.DefaultCurrency)
	a.injector = dependency.NewInjector(cmd.Context(), cfg, kv, dashboard.SystemClock{}, store.WithThemeApplier(a.renderer))
	return nil
}

// close releases the storage opened by open. It is safe to call when nothing was opened.
func (a *app) close() error {
	if a.injector == nil {
		return nil
	}
	injector := a.injector
	a.injector = nil
	if err := injector.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
