package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"badges"},
		Short:   "Show unlocked and locked badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.AchievementsOverview(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			earned := 0
			for _, st := range list {
				if st.Unlocked {
					earned++
				}
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", earned, len(list))))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Unlocked"))
			if earned == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet)"))
			}
			for _, st := range list {
				if !st.Unlocked {
					continue
				}
				fmt.Fprintf(out, "- %s %s\n", ui.Gold.Render(st.Name), ui.Muted.Render(st.Description))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Locked"))
			if earned == len(list) {
				fmt.Fprintln(out, ui.Good.Render("All badges earned!"))
			}
			for _, st := range list {
				if st.Unlocked {
					continue
				}
				fmt.Fprintf(out, "- %s %s\n", st.Name, ui.Muted.Render(fmt.Sprintf("%s (+%d XP)", st.Description, st.XP)))
			}

			return nil
		},
	}

	return cmd
}
