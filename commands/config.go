package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soocke/roomview-go/config"
)

func configCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write a default config file with a fresh room GUID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(cfgPath); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", cfgPath)
			}
			c := config.DefaultConfig()
			c.EnsureRoomGUID()
			if err := c.Save(cfgPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\nRoom GUID: %s\n", cfgPath, c.Fusion.RoomGUID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
