package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Show today's challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ch, completed, err := svc.DailyChallenge(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Daily Challenge"))
			fmt.Fprintln(out, ui.LabelValue("Challenge", ch.Text))
			fmt.Fprintln(out, ui.LabelValue("Difficulty", ch.Difficulty))
			fmt.Fprintln(out, ui.LabelValue("Reward", fmt.Sprintf("+%d XP", ch.XPReward)))
			if completed {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Completed today."))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Run `strive challenge done` once you finish it."))
			}
			return nil
		},
	}

	cmd.AddCommand(newChallengeDoneCmd())

	return cmd
}

func newChallengeDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Claim today's challenge reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			xp, err := svc.CompleteChallenge(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Challenge complete"),
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", xp.XPGained)))
			if xp.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("Level %d", xp.Level)))
			}
			return nil
		},
	}
}
