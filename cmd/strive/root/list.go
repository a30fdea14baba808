package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"strive/internal/engine"
	"strive/internal/storage"
	"strive/internal/ui"
)

func newListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, hottest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Keep stored labels in step with deadlines that moved closer.
			if _, err := svc.RescorePriorities(ctx); err != nil {
				return err
			}

			var tasks []storage.Task
			if date != "" {
				tasks, err = svc.TasksOnDate(ctx, date)
			} else {
				tasks, err = svc.ListTasks(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks."))
				return nil
			}

			now := time.Now()
			scores := make(map[int64]int, len(tasks))
			for _, t := range tasks {
				scores[t.ID], _ = engine.ScoreTask(t, now)
			}
			sort.SliceStable(tasks, func(i, j int) bool {
				if scores[tasks[i].ID] != scores[tasks[j].ID] {
					return scores[tasks[i].ID] > scores[tasks[j].ID]
				}
				return tasks[i].ID < tasks[j].ID
			})

			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			for _, t := range tasks {
				line := fmt.Sprintf("- #%d %s [%s %d]", t.ID, t.Title, ui.PriorityText(t.Priority), scores[t.ID])
				line += " " + ui.Muted.Render(fmt.Sprintf("~%dm", engine.EstimateMinutes(t.Title)))
				if t.Deadline != nil {
					line += " " + ui.Muted.Render("due "+*t.Deadline)
				}
				if t.ReminderTime != nil {
					line += " " + ui.Muted.Render(ui.IconBell+" "+*t.ReminderTime)
				}
				if t.Repeat != "none" {
					line += " " + ui.IconHabit
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only tasks due on this date (YYYY-MM-DD)")

	return cmd
}
