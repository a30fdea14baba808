package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s #%d %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), res.TaskID, res.Title,
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XP.XPGained)))
			if res.XP.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("Level %d", res.XP.Level)))
			}
			for _, u := range res.Unlocked {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Gold.Render(ui.IconTrophy+" Unlocked"), u.Achievement.Name,
					ui.Muted.Render(fmt.Sprintf("(+%d XP)", u.XP.XPGained)))
			}
			if res.NextTaskID != 0 {
				fmt.Fprintf(out, "%s #%d due %s\n",
					ui.H2.Render(ui.IconHabit+" Next occurrence"), res.NextTaskID, res.NextDeadline)
			}
			return nil
		},
	}

	return cmd
}
