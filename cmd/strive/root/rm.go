package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"strive/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete tasks",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one id is required")
			}
			for _, a := range args {
				if _, err := strconv.ParseInt(a, 10, 64); err != nil {
					return fmt.Errorf("id %q must be an integer", a)
				}
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

			out := cmd.OutOrStdout()
			for _, a := range args {
				id, _ := strconv.ParseInt(a, 10, 64)
				if err := svc.DeleteTask(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s #%d\n", ui.Warn.Render(ui.IconTrash+" Removed"), id)
			}
			return nil
		},
	}

	return cmd
}
