package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jengzang/trails-backend-go/internal/app"
	"github.com/jengzang/trails-backend-go/internal/config"
	"github.com/jengzang/trails-backend-go/internal/observability"
)

const (
	flagDB       = "db"
	flagLogLevel = "log-level"
)

// newRootCmd builds the trailctl command tree writing results to out
func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "trailctl",
		Short:         "Operate the trail search catalog",
		Long:          `trailctl seeds the trail catalog and runs searches against it from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().String(flagDB, "", "SQLite database path (default $DB_PATH)")
	root.PersistentFlags().String(flagLogLevel, "warn", "Log level: debug, info, warn, error")

	root.AddCommand(
		newSeedCmd(),
		newSearchCmd(),
		newBrowseCmd(),
		newShowCmd(),
	)
	return root
}

// open loads config, applies flag overrides and builds the app.
// With autoSeed an empty catalog is seeded so read commands have data.
func open(c *cobra.Command, autoSeed bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if db, _ := c.Flags().GetString(flagDB); db != "" {
		cfg.DBPath = db
	}
	l := logger(c)

	a, err := app.New(c.Context(), cfg, l, nil)
	if err != nil {
		return nil, err
	}
	if !autoSeed {
		return a, nil
	}
	if err := a.EnsureSeeded(c.Context(), false, l); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func printJSON(c *cobra.Command, v any) error {
	enc := json.NewEncoder(c.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func logger(c *cobra.Command) *slog.Logger {
	level, _ := c.Flags().GetString(flagLogLevel)
	return observability.NewLogger(c.ErrOrStderr(), level, "text")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "trailctl:", err)
		os.Exit(1)
	}
}
