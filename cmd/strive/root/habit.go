package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"strive/internal/engine"
	"strive/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitListCmd(),
		newHabitCheckCmd(),
		newHabitCoachCmd(),
		newHabitRenameCmd(),
		newHabitResetCmd(),
		newHabitRmCmd(),
	)

	return cmd
}

func habitIDArg(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, errors.New("habit id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.New("habit id must be an integer")
	}
	return id, nil
}

func newHabitAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			id, err := svc.AddHabit(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render(ui.IconHabit+" Added"), id, args[0])
			return nil
		},
	}
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.ListHabits(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No habits."))
				return nil
			}

			today := engine.FormatDate(engine.DateOf(time.Now()))
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			for _, h := range habits {
				mark := " "
				if h.LastChecked != nil && *h.LastChecked == today {
					mark = "✓"
				}
				fmt.Fprintf(out, "- [%s] #%d %s %s\n", mark, h.ID, h.Name,
					ui.Warn.Render(fmt.Sprintf("%s %d", ui.IconFire, h.Streak)))
			}
			return nil
		},
	}
}

func newHabitCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>",
		Short: "Check a habit for today",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := habitIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := habitIDArg(args)
			res, err := svc.CheckHabit(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyChecked {
				fmt.Fprintf(out, "%s %s already checked today.\n", ui.Warn.Render(ui.IconInfo), res.Name)
				return nil
			}
			fmt.Fprintf(out, "%s %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Checked"), res.Name,
				ui.Warn.Render(fmt.Sprintf("%s %d", ui.IconFire, res.Streak)),
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XP.XPGained)))
			if res.XP.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("Level %d", res.XP.Level)))
			}
			for _, u := range res.Unlocked {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Gold.Render(ui.IconTrophy+" Unlocked"), u.Achievement.Name,
					ui.Muted.Render(fmt.Sprintf("(+%d XP)", u.XP.XPGained)))
			}
			return nil
		},
	}
}

func newHabitCoachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coach <id>",
		Short: "Streak status, motivation and tips for a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := habitIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := habitIDArg(args)
			h, err := svc.HabitRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if h == nil {
				return engine.NotFoundError{Kind: "habit", ID: id}
			}

			ins := engine.InsightForHabit(h.Name, h.Streak)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBulb, h.Name))
			fmt.Fprintln(out, ui.LabelValue("Status", ins.Status))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (next milestone %d)", ui.IconFire, h.Streak, ins.NextMilestone)))
			fmt.Fprintln(out, ui.LabelValue("Coach", ins.Motivation))
			if len(ins.Tips) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconTarget+" Tips"))
				for _, tip := range ins.Tips {
					fmt.Fprintf(out, "- %s\n", tip)
				}
			}
			return nil
		},
	}
}

func newHabitRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and name are required")
			}
			_, err := habitIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := habitIDArg(args)
			if err := svc.RenameHabit(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d → %s\n", ui.Good.Render(ui.IconDone+" Renamed"), id, args[1])
			return nil
		},
	}
}

func newHabitResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Reset a habit's streak to zero",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := habitIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := habitIDArg(args)
			if err := svc.ResetHabitStreak(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d streak reset.\n", ui.Warn.Render(ui.IconWarn), id)
			return nil
		},
	}
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := habitIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := habitIDArg(args)
			if err := svc.DeleteHabit(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render(ui.IconTrash+" Removed"), id)
			return nil
		},
	}
}
