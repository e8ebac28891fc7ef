package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/roomview-go/domain/dsp"
)

func blocksCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "List the configured DSP blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			device, err := dsp.NewDeviceFromConfig(cfg.DSP)
			if err != nil {
				return err
			}
			blocks := device.Blocks()
			if kind != "" {
				k, err := dsp.ParseKind(kind)
				if err != nil {
					return err
				}
				blocks = device.ByKind(k)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d blocks)\n", device.Name(), len(blocks))
			for _, b := range blocks {
				fmt.Fprintf(out, "  %-10s %s\n", b.Kind, b.Tag)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only blocks of this kind")
	return cmd
}
