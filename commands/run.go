package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soocke/roomview-go/app"
)

var simulateCall string

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the room headless, reporting to Fusion until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			c, err := app.BuildContainer(cfg, logger, nil)
			if err != nil {
				return err
			}
			defer func() {
				if err := c.Close(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()
			if simulateCall != "" {
				c.Conference.Incoming(simulateCall)
			}
			return app.Run(ctx, c)
		},
	}
	cmd.Flags().StringVar(&simulateCall, "simulate-call", "", "raise an incoming call from this party at startup")
	return cmd
}

func panelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Open the touch-panel simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunPanel(cfg, logger, func(c *app.Container) {
				if simulateCall != "" {
					c.Conference.Incoming(simulateCall)
				}
			})
		},
	}
	cmd.Flags().StringVar(&simulateCall, "simulate-call", "", "raise an incoming call from this party at startup")
	return cmd
}
