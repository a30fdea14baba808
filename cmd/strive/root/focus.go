package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"strive/internal/tui"
	"strive/internal/ui"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run the pomodoro timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunFocus(ctx, svc, cfg.Focus, cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newFocusLogCmd())

	return cmd
}

func newFocusLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <minutes>",
		Short: "Log focus minutes done off the timer",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("minutes is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("minutes must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			minutes, _ := strconv.Atoi(args[0])
			xp, unlocked, err := svc.RecordFocus(ctx, minutes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d min %s\n", ui.Good.Render(ui.IconFocus+" Logged"), minutes,
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", xp.XPGained)))
			if xp.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("Level %d", xp.Level)))
			}
			for _, u := range unlocked {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Gold.Render(ui.IconTrophy+" Unlocked"), u.Achievement.Name,
					ui.Muted.Render(fmt.Sprintf("(+%d XP)", u.XP.XPGained)))
			}
			return nil
		},
	}
}
