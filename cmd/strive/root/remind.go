package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show reminders due this minute",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			due, err := svc.DueNow(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(due) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing due right now."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconBell, "Due now"))
			for _, t := range due {
				fmt.Fprintf(out, "- #%d %s\n", t.ID, t.Title)
			}
			return nil
		},
	}

	return cmd
}
