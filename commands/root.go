package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/soocke/roomview-go/app"
	"github.com/soocke/roomview-go/config"
)

var (
	cfgPath  string
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roomview",
		Short:         "Meeting room control: touch panel and Fusion room status",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
			level := cfg.LogLevel
			if logLevel != "" {
				level = logLevel
			}
			logger = app.NewLogger(os.Stdout, app.ParseLevel(level))
			logger.Debug("config loaded", "path", cfgPath, "room", cfg.Room.Name)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "roomview.json", "config file (.json with comments, .yaml or .yml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(runCmd(), panelCmd(), blocksCmd(), configCmd())
	return root
}
