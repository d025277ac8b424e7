package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel      string
	migrationsURL string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "griya",
		Short:        "MyGriya room rental bot",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides LOG_LEVEL")
	root.PersistentFlags().StringVar(&migrationsURL, "migrations", "file://migrations", "migrations source URL")

	root.AddCommand(serveCmd(), migrateCmd(), roomsCmd())
	return root.Execute()
}

// newLogger builds the production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	if logLevel != "" {
		level = logLevel
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
