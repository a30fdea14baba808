package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"strive/internal/engine"
	"strive/internal/ui"
)

func newAddCmd() *cobra.Command {
	var deadline string
	var remind string
	var repeat string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			res, err := svc.AddTask(ctx, engine.AddTaskInput{
				Title:        args[0],
				Deadline:     deadline,
				ReminderTime: remind,
				Repeat:       repeat,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s #%d %s %s\n",
				ui.Good.Render(ui.IconTask+" Added"), res.TaskID, args[0],
				ui.Muted.Render(fmt.Sprintf("(score %d)", res.Score)))
			fmt.Fprintln(out, ui.LabelValue("Priority", ui.PriorityText(string(res.Priority))))
			fmt.Fprintln(out, ui.LabelValue("Estimate", fmt.Sprintf("~%d min", res.EstimatedMinutes)))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("+%d (total %d)", res.XP.XPGained, res.XP.TotalXP)))
			if res.XP.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("Level %d", res.XP.Level)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&remind, "remind", "r", "", "Reminder (HH:MM or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&repeat, "repeat", "none", "Repeat (none|daily|weekly)")

	return cmd
}
