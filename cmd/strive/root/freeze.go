package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newFreezeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Show streak freezes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ov, err := svc.Overview(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d freeze(s) in the stash.\n", ui.IconFreeze, ov.StreakFreezes)
			return nil
		},
	}

	cmd.AddCommand(newFreezeUseCmd(), newFreezeEarnCmd())

	return cmd
}

func newFreezeUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use",
		Short: "Spend a freeze to shield today's streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, remaining, err := svc.UseFreeze(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" No freezes left."))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconFreeze+" Freeze used."),
				ui.Muted.Render(fmt.Sprintf("(%d remaining)", remaining)))
			return nil
		},
	}
}

func newFreezeEarnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earn",
		Short: "Bank a freeze",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.EarnFreeze(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d freeze(s) in the stash.\n", ui.IconFreeze, n)
			return nil
		},
	}
}
