package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newInsightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyze completion, overdue pressure and focus areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ins, err := svc.ProductivityInsights(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBulb, "Productivity Insights"))
			fmt.Fprintln(out, ui.LabelValue("Tasks", fmt.Sprintf("%d total, %d completed, %d overdue",
				ins.TotalTasks, ins.CompletedTasks, ins.OverdueTasks)))
			fmt.Fprintln(out, ui.LabelValue("Completion rate", fmt.Sprintf("%.0f%%", ins.CompletionRate)))
			fmt.Fprintln(out, ui.LabelValue("Procrastination", fmt.Sprintf("%.0f/100", ins.ProcrastinationScore)))
			if len(ins.FocusAreas) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Focus areas", strings.Join(ins.FocusAreas, ", ")))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTarget+" Recommendations"))
			for _, r := range ins.Recommendations {
				fmt.Fprintf(out, "- %s\n", r)
			}

			return nil
		},
	}

	return cmd
}
