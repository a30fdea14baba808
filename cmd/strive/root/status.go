package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"strive/internal/engine"
	"strive/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP and daily stats",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", ov.Level))
			bar := ui.ProgressBar(ov.Next.Into, ov.Next.Needed, 30)
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s %d/%d to next", ov.XP, bar, ov.Next.Into, ov.Next.Needed)))
			fmt.Fprintln(out, ui.LabelValue("Day streak", fmt.Sprintf("%s %d", ui.IconFire, ov.ConsecutiveDays)))
			fmt.Fprintln(out, ui.LabelValue("Freezes", fmt.Sprintf("%s %d", ui.IconFreeze, ov.StreakFreezes)))
			fmt.Fprintln(out, ui.LabelValue("Badges", fmt.Sprintf("%s %d/%d", ui.IconTrophy, ov.AchievementsEarned, ov.AchievementsTotal)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Today"))
			fmt.Fprintf(out, "- tasks completed: %d\n", ov.TasksCompletedToday)
			fmt.Fprintf(out, "- habits checked: %d\n", ov.HabitsCheckedToday)
			focus := engine.FocusScore(ov.TasksCompletedToday, ov.TotalFocusMinutes, ov.HabitsCheckedToday)
			fmt.Fprintf(out, "- focus score: %d/100\n", focus)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📈 Lifetime"))
			fmt.Fprintf(out, "- tasks completed: %d\n", ov.TotalTasksCompleted)
			fmt.Fprintf(out, "- focus time: %d min\n", ov.TotalFocusMinutes)

			return nil
		},
	}

	return cmd
}
