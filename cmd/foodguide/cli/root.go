// Package cli holds the cobra commands of the foodguide binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/charleslimjh/tp/internal/app"
	"github.com/charleslimjh/tp/internal/config"
	"github.com/charleslimjh/tp/internal/logging"
)

// VersionInfo is stamped into the binary at build time.
type VersionInfo struct {
	Version string
	Commit  string
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand builds the foodguide command tree.
func NewRootCommand(info VersionInfo) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "foodguide",
		Short:         "Keep track of places to eat",
		Long:          "foodguide keeps a list of eateries with contact details, cuisine, location and free-form tags.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       fmt.Sprintf("%s.%s", info.Version, info.Commit),
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (environment variables override it)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newExecCommand(opts),
		newShellCommand(opts),
		newServeCommand(opts),
		newVersionCommand(info),
	)
	return cmd
}

// loadConfig reads .env files, then the config file and environment.
// Missing .env files are ignored.
func (o *rootOptions) loadConfig() (config.Config, error) {
	envFiles := []string{".env", ".env.local"}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	if o.configPath != "" {
		dir := filepath.Dir(o.configPath)
		for _, f := range envFiles {
			_ = godotenv.Load(filepath.Join(dir, f))
		}
	}

	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load configuration: %w", err)
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

// openApp builds the application with logs written to logOut. Terminal
// commands pass quiet so only warnings reach the screen unless --log-level
// says otherwise. The returned cleanup closes the store and the log file.
func (o *rootOptions) openApp(ctx context.Context, logOut io.Writer, quiet bool) (*app.App, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if quiet && o.logLevel == "" {
		cfg.LogLevel = "warn"
	}

	logger, logCloser := logging.New(logOut, logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	slog.SetDefault(logger)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := a.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
		_ = logCloser.Close()
	}
	return a, cleanup, nil
}
