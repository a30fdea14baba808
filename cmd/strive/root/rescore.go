package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newRescoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescore",
		Short: "Recompute priority labels for pending tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			changed, err := svc.RescorePriorities(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) relabeled.\n", ui.Good.Render(ui.IconBolt+" Rescored"), changed)
			return nil
		},
	}

	return cmd
}
